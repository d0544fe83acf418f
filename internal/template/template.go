package template

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Type identifies a built-in deck profile.
type Type string

const (
	// WGSClass1 is the sequencing-basics lecture deck the extractor was built for.
	WGSClass1 Type = "wgs-class1"
	// Plain carries no title catalog; every slide is titled "Slide N".
	Plain Type = "plain"
	// Default selects WGSClass1.
	Default Type = ""
)

// Labels are the UI strings embedded in every generated page.
type Labels struct {
	First      string
	Prev       string
	Next       string
	Fullscreen string
	Indicator  string
}

// Profile bundles what a deck needs besides its markup: the document title
// prefix, the page language, the navigation labels and the title catalog.
type Profile struct {
	Type        Type
	Name        string
	Description string
	DeckTitle   string
	Lang        string
	Labels      Labels
	// Titles is indexed by ordinal-1.
	Titles []string
}

// GetProfile returns the profile for the given name.
func GetProfile(name string) Profile {
	switch Type(normalizeType(name)) {
	case Plain:
		return plainProfile()
	default:
		return wgsClass1Profile()
	}
}

// normalizeType converts string input to canonical Type value
func normalizeType(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "wgs-class1", "wgs_class1", "wgs class1", "wgs class 1", "class1", "wgs":
		return string(WGSClass1)
	case "plain", "none", "generic", "untitled":
		return string(Plain)
	default:
		if strings.Contains(v, "wgs") {
			return string(WGSClass1)
		}
		return string(Default)
	}
}

// TitleFor returns the catalog title for a 1-based ordinal, or "Slide N"
// when the catalog has no entry for it.
func (p Profile) TitleFor(ordinal int) string {
	if ordinal >= 1 && ordinal <= len(p.Titles) {
		if t := strings.TrimSpace(p.Titles[ordinal-1]); t != "" {
			return norm.NFC.String(t)
		}
	}
	return "Slide " + strconv.Itoa(ordinal)
}

// WithTitles returns a copy of p using titles as its catalog.
func (p Profile) WithTitles(titles []string) Profile {
	p.Titles = append([]string(nil), titles...)
	return p
}

// CanonicalLang validates a BCP 47 tag and returns its canonical form.
func CanonicalLang(tag string) (string, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	return t.String(), nil
}

var koreanLabels = Labels{
	First:      "🏠 처음",
	Prev:       "◀ 이전",
	Next:       "다음 ▶",
	Fullscreen: "⛶ 전체화면",
	Indicator:  "슬라이드",
}

func wgsClass1Profile() Profile {
	return Profile{
		Type:        WGSClass1,
		Name:        "WGS Class 1",
		Description: "Whole-genome sequencing basics, lecture 1",
		DeckTitle:   "WGS 기초 이론",
		Lang:        "ko",
		Labels:      koreanLabels,
		Titles: []string{
			"Title Page",
			"Learning Objectives",
			"NGS Technology Overview",
			"Sanger Sequencing Detail",
			"Sanger Technology Advantages",
			"Illumina NGS Technology",
			"MGI Sequencing Technology",
			"Long-read Overview",
			"PacBio SMRT Technology",
			"Oxford Nanopore Technology",
			"Long-read Applications",
			"NGS Library Preparation",
			"Sanger vs NGS Comparison",
			"Platform Comparison",
			"WGS Data Characteristics",
			"Coverage and Read Depth",
			"Sequencing Errors",
			"Real Data Examples",
			"FastQC Report Analysis",
			"Quality Assessment Guidelines",
			"Summary",
		},
	}
}

func plainProfile() Profile {
	return Profile{
		Type:        Plain,
		Name:        "Plain",
		Description: "No title catalog",
		Lang:        "ko",
		Labels:      koreanLabels,
	}
}
