package extract

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// SlideClass is the class prefix that marks a slide container element.
const SlideClass = "slide"

// Slide is one slide section discovered in a deck.
type Slide struct {
	// Ordinal is the 1-based position in discovery order.
	Ordinal int
	// Label is the number written in the marker comment, kept verbatim.
	Label string
	// Marker is the title text written in the marker comment.
	Marker string
	// Body is the inner markup of the slide container.
	Body string
}

var markerRe = regexp.MustCompile(`(?s)^\s*Slide (\d+): (.*?)\s*$`)

// parseMarker reports whether comment text looks like "Slide <N>: <Title>".
func parseMarker(comment string) (Slide, bool) {
	m := markerRe.FindStringSubmatch(comment)
	if m == nil {
		return Slide{}, false
	}
	return Slide{Label: m[1], Marker: strings.TrimSpace(m[2])}, true
}

// Styles returns the raw text of the first <style> element in src, or an
// empty string when the document has none.
func Styles(src []byte) string {
	z := html.NewTokenizer(bytes.NewReader(src))
	inStyle := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			inStyle = string(name) == "style"
		case html.TextToken:
			if inStyle {
				return string(z.Raw())
			}
		case html.EndTagToken:
			if inStyle {
				// <style></style>
				return ""
			}
		}
	}
}

var slideRuleRe = regexp.MustCompile(`\.` + SlideClass + ` \{[^}]*\}`)

// ShowSlides rewrites the "display: none" declaration of the first
// ".slide {" rule to "display: block" so a single extracted slide renders
// without the deck's switching logic. The match is exact: a rule written
// with different spacing is left untouched.
func ShowSlides(css string) string {
	loc := slideRuleRe.FindStringIndex(css)
	if loc == nil {
		return css
	}
	rule := css[loc[0]:loc[1]]
	fixed := strings.Replace(rule, "display: none", "display: block", 1)
	return css[:loc[0]] + fixed + css[loc[1]:]
}

// NormalizeAssetPaths rewrites "./<dir>/" and "../<dir>/" prefixes to a
// plain "<dir>/" so every generated page sits at the same depth relative to
// the shared asset directory.
func NormalizeAssetPaths(body, dir string) string {
	dir = strings.Trim(strings.TrimSpace(dir), "/")
	if dir == "" {
		return body
	}
	r := strings.NewReplacer("../"+dir+"/", dir+"/", "./"+dir+"/", dir+"/")
	for {
		next := r.Replace(body)
		if next == body {
			return next
		}
		body = next
	}
}

// hasSlideClass reports whether the current start tag carries a class
// attribute beginning with SlideClass.
func hasSlideClass(z *html.Tokenizer) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "class" {
			return strings.HasPrefix(string(val), SlideClass)
		}
		if !more {
			return false
		}
	}
}
