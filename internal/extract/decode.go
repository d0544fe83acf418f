package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// EncodingAuto sniffs the encoding from a BOM or <meta charset> declaration.
const EncodingAuto = "auto"

// ErrInvalidUTF8 is returned when UTF-8 input contains invalid byte sequences.
var ErrInvalidUTF8 = errors.New("input is not valid utf-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw document bytes into UTF-8. label names the source
// encoding ("utf-8" when empty); EncodingAuto defers to the HTML sniffing
// rules, falling back to windows-1252 for undeclared non-UTF-8 input.
func Decode(raw []byte, label string) ([]byte, error) {
	var (
		enc  encoding.Encoding
		name string
	)
	switch l := strings.ToLower(strings.TrimSpace(label)); l {
	case "":
		name = "utf-8"
	case EncodingAuto:
		enc, name, _ = charset.DetermineEncoding(raw, "text/html")
	default:
		enc, name = charset.Lookup(l)
		if enc == nil {
			return nil, fmt.Errorf("unknown encoding %q", label)
		}
	}

	if name == "utf-8" {
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(raw) {
			return nil, ErrInvalidUTF8
		}
		return raw, nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}
