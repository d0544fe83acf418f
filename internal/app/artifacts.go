package app

import (
    "crypto/sha256"
    "encoding/hex"
    "io"
    "os"
    "path/filepath"
    "sort"
    "strings"
)

const sumsFilename = "SHA256SUMS"

// writeSHA256SUMS writes a sha256sum-compatible listing of the named files
// in dir, sorted by name.
func writeSHA256SUMS(dir string, names []string) error {
    sorted := append([]string(nil), names...)
    sort.Strings(sorted)
    var b strings.Builder
    for _, name := range sorted {
        sum, err := sha256File(filepath.Join(dir, name))
        if err != nil { return err }
        b.WriteString(sum)
        b.WriteString("  ")
        b.WriteString(name)
        b.WriteString("\n")
    }
    return os.WriteFile(filepath.Join(dir, sumsFilename), []byte(b.String()), 0o644)
}

func sha256File(path string) (string, error) {
    f, err := os.Open(path)
    if err != nil { return "", err }
    defer f.Close()
    h := sha256.New()
    if _, err := io.Copy(h, f); err != nil { return "", err }
    return hex.EncodeToString(h.Sum(nil)), nil
}
