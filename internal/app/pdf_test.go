package app

import (
    "bytes"
    "os"
    "path/filepath"
    "testing"
)

func TestWriteOutlinePDF_WritesDocument(t *testing.T) {
    out := filepath.Join(t.TempDir(), "outline.pdf")
    slides := []GeneratedSlide{
        {Ordinal: 1, Title: "Learning Objectives", File: "slide01.html"},
        {Ordinal: 2, Title: "Café", File: "slide02.html"},
        // Runes outside cp1252 are replaced rather than failing the write.
        {Ordinal: 3, Title: "기초 이론", File: "slide03.html"},
    }
    if err := writeOutlinePDF("WGS 기초 이론", slides, out); err != nil {
        t.Fatalf("writeOutlinePDF: %v", err)
    }
    b, err := os.ReadFile(out)
    if err != nil {
        t.Fatalf("read: %v", err)
    }
    if !bytes.HasPrefix(b, []byte("%PDF-")) {
        t.Fatalf("not a PDF: %q", b[:min(len(b), 16)])
    }
}

func TestWriteOutlinePDF_BadPath(t *testing.T) {
    out := filepath.Join(t.TempDir(), "missing", "outline.pdf")
    if err := writeOutlinePDF("Deck", nil, out); err == nil {
        t.Fatalf("expected error for missing directory")
    }
}
