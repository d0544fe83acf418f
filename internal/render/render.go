package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	profiles "github.com/hyperifyio/slidesplit/internal/template"
)

//go:embed page.html.tmpl
var pageSource string

//go:embed index.html.tmpl
var indexSource string

var (
	pageTmpl  = template.Must(template.New("page").Parse(pageSource))
	indexTmpl = template.Must(template.New("index").Parse(indexSource))
)

// FilenameFor returns the output filename for a 1-based slide ordinal.
func FilenameFor(ordinal int) string {
	return fmt.Sprintf("slide%02d.html", ordinal)
}

// Page is the input for one standalone slide document.
type Page struct {
	Ordinal int
	// Total is the number of slides in the deck; the last ordinal has its
	// next control disabled.
	Total   int
	Title   string
	Body    string
	Styles  string
	Profile profiles.Profile
}

func (p Page) HasPrev() bool     { return p.Ordinal > 1 }
func (p Page) HasNext() bool     { return p.Ordinal < p.Total }
func (p Page) PrevFile() string  { return FilenameFor(p.Ordinal - 1) }
func (p Page) NextFile() string  { return FilenameFor(p.Ordinal + 1) }
func (p Page) FirstFile() string { return FilenameFor(1) }

func (p Page) Lang() string            { return p.Profile.Lang }
func (p Page) Labels() profiles.Labels { return p.Profile.Labels }

// DocumentTitle is the <title> text: "<deck> - <slide>", or just the slide
// title when the profile has no deck title.
func (p Page) DocumentTitle() string {
	if strings.TrimSpace(p.Profile.DeckTitle) == "" {
		return p.Title
	}
	return p.Profile.DeckTitle + " - " + p.Title
}

// Render produces the complete HTML document for p.
func Render(p Page) ([]byte, error) {
	if p.Ordinal < 1 {
		return nil, fmt.Errorf("render: ordinal must be positive, got %d", p.Ordinal)
	}
	if p.Total < p.Ordinal {
		p.Total = p.Ordinal
	}
	p.Body = strings.TrimSpace(p.Body)
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render slide %d: %w", p.Ordinal, err)
	}
	return buf.Bytes(), nil
}

// IndexEntry is one line of the deck overview page.
type IndexEntry struct {
	Ordinal int
	Title   string
	File    string
}

// IndexPage is the input for the deck overview document.
type IndexPage struct {
	Title  string
	Lang   string
	Styles string
	// Intro is trusted HTML placed above the slide list.
	Intro   string
	Entries []IndexEntry
}

// RenderIndex produces the overview document linking every slide.
func RenderIndex(p IndexPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}
