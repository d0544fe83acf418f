package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Extractor splits a deck document into its slide sections.
// Implementations must be deterministic and number slides from 1 in
// discovery order.
type Extractor interface {
	Extract(src []byte) []Slide
}

// Strategy names accepted by ForStrategy.
const (
	StrategyTree    = "tree"
	StrategyPattern = "pattern"
)

// ForStrategy returns the extractor registered under name. An empty name
// selects the tree extractor.
func ForStrategy(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyTree:
		return TreeExtractor{}, nil
	case StrategyPattern, "regex":
		return PatternExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy: %s", name)
	}
}

// TreeExtractor walks the token stream, pairs each marker comment with the
// element that immediately follows it and captures that element's inner
// markup by tracking the nesting depth of same-named tags. Slide bodies may
// therefore contain nested containers of the same element type.
type TreeExtractor struct{}

type capture struct {
	slide     Slide
	tag       string
	depth     int
	bodyStart int
}

func (TreeExtractor) Extract(src []byte) []Slide {
	z := html.NewTokenizer(bytes.NewReader(src))
	var (
		slides  []Slide
		pending *Slide
		cur     *capture
		offset  int
	)
	for {
		tt := z.Next()
		// Raw tokens tile the input, so offsets index straight into src.
		start := offset
		offset += len(z.Raw())
		if tt == html.ErrorToken {
			break
		}

		if cur != nil {
			switch tt {
			case html.StartTagToken:
				if name, _ := z.TagName(); string(name) == cur.tag {
					cur.depth++
				}
			case html.EndTagToken:
				if name, _ := z.TagName(); string(name) == cur.tag {
					cur.depth--
					if cur.depth == 0 {
						cur.slide.Body = string(src[cur.bodyStart:start])
						slides = append(slides, cur.slide)
						cur = nil
					}
				}
			}
			continue
		}

		switch tt {
		case html.CommentToken:
			pending = nil
			if s, ok := parseMarker(string(z.Text())); ok {
				pending = &s
			}
		case html.TextToken:
			if pending != nil && len(bytes.TrimSpace(z.Raw())) > 0 {
				pending = nil
			}
		case html.StartTagToken:
			if pending != nil {
				name, hasAttr := z.TagName()
				tag := string(name)
				if hasAttr && hasSlideClass(z) {
					s := *pending
					s.Ordinal = len(slides) + 1
					cur = &capture{slide: s, tag: tag, depth: 1, bodyStart: offset}
				}
			}
			pending = nil
		default:
			pending = nil
		}
	}

	// Unterminated container: take everything to the end of input.
	if cur != nil {
		cur.slide.Body = string(src[cur.bodyStart:])
		slides = append(slides, cur.slide)
	}
	return slides
}

// PatternExtractor matches slides by marker plus terminator text instead
// of parsing: a body ends at the first "</div>" that is followed,
// after optional whitespace, by another marker, the navigation container or
// the end of input. Nested <div> elements inside a slide can end it early.
type PatternExtractor struct{}

var (
	patternStartRe  = regexp.MustCompile(`(?s)<!-- Slide (\d+): (.*?) -->\s*<div class="` + SlideClass + `[^"]*">`)
	patternCloseTag = "</div>"
)

func (PatternExtractor) Extract(src []byte) []Slide {
	text := string(src)
	var slides []Slide
	pos := 0
	for pos < len(text) {
		m := patternStartRe.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		bodyStart := pos + m[1]
		end, next, ok := findTerminator(text, bodyStart)
		if !ok {
			pos += m[0] + 1
			continue
		}
		slides = append(slides, Slide{
			Ordinal: len(slides) + 1,
			Label:   text[pos+m[2] : pos+m[3]],
			Marker:  text[pos+m[4] : pos+m[5]],
			Body:    text[bodyStart:end],
		})
		pos = next
	}
	return slides
}

// findTerminator locates the first closing tag at or after from that is
// followed by whitespace and then a marker, the navigation container or the
// end of input. It returns the body end and the position to resume from.
func findTerminator(text string, from int) (end, next int, ok bool) {
	i := from
	for {
		j := strings.Index(text[i:], patternCloseTag)
		if j < 0 {
			return 0, 0, false
		}
		end = i + j
		after := end + len(patternCloseTag)
		rest := strings.TrimLeft(text[after:], " \t\r\n\f\v")
		if rest == "" || strings.HasPrefix(rest, "<!-- Slide") || strings.HasPrefix(rest, `<div class="navigation">`) {
			return end, len(text) - len(rest), true
		}
		i = after
	}
}
