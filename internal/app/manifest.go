package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const manifestFilename = "manifest.json"

// manifestEntry is a compact record of one generated slide page.
type manifestEntry struct {
	Ordinal int    `json:"ordinal"`
	File    string `json:"file"`
	Title   string `json:"title"`
	SHA256  string `json:"sha256"`
	Bytes   int    `json:"bytes"`
}

// manifestMeta captures run details that aid reproducibility. It carries no
// timestamp so that reruns on the same input stay byte-identical.
type manifestMeta struct {
	Input       string `json:"input"`
	InputSHA256 string `json:"input_sha256"`
	Profile     string `json:"profile"`
	Strategy    string `json:"strategy"`
	SlideCount  int    `json:"slide_count"`
	Version     string `json:"version"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the given text.
func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

func buildManifestEntries(slides []GeneratedSlide) []manifestEntry {
	out := make([]manifestEntry, 0, len(slides))
	for _, s := range slides {
		out = append(out, manifestEntry{
			Ordinal: s.Ordinal,
			File:    s.File,
			Title:   s.Title,
			SHA256:  s.SHA256,
			Bytes:   s.Bytes,
		})
	}
	return out
}

// marshalManifestJSON encodes the machine-readable manifest.
func marshalManifestJSON(meta manifestMeta, entries []manifestEntry) ([]byte, error) {
	payload := struct {
		Meta   manifestMeta    `json:"meta"`
		Slides []manifestEntry `json:"slides"`
	}{Meta: meta, Slides: entries}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// writeManifest writes manifest.json and a SHA256SUMS file covering every
// generated page into the output directory.
func (a *App) writeManifest(res Result) error {
	strategy := a.cfg.Strategy
	if strategy == "" {
		strategy = "tree"
	}
	meta := manifestMeta{
		Input:       filepath.Base(a.cfg.InputPath),
		InputSHA256: res.InputSHA256,
		Profile:     string(a.profile.Type),
		Strategy:    strategy,
		SlideCount:  len(res.Slides),
		Version:     BuildVersion,
	}
	data, err := marshalManifestJSON(meta, buildManifestEntries(res.Slides))
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	path := filepath.Join(a.cfg.OutputDir, manifestFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	files := make([]string, 0, len(res.Slides)+1)
	for _, s := range res.Slides {
		files = append(files, s.File)
	}
	files = append(files, manifestFilename)
	if err := writeSHA256SUMS(a.cfg.OutputDir, files); err != nil {
		return fmt.Errorf("write checksums: %w", err)
	}
	log.Info().Str("out", path).Msg("wrote manifest")
	return nil
}
