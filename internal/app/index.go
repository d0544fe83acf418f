package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"

	"github.com/hyperifyio/slidesplit/internal/render"
)

const indexFilename = "index.html"

// renderIntro converts the Markdown intro shown above the slide list.
func renderIntro(markdown []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// writeIndex writes index.html linking every generated slide.
func (a *App) writeIndex(res Result) error {
	page := render.IndexPage{
		Title:  a.deckTitle(),
		Lang:   a.profile.Lang,
		Styles: res.Styles,
	}
	if p := strings.TrimSpace(a.cfg.IndexIntroPath); p != "" {
		md, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read index intro: %w", err)
		}
		intro, err := renderIntro(md)
		if err != nil {
			return fmt.Errorf("render index intro: %w", err)
		}
		page.Intro = intro
	}
	for _, s := range res.Slides {
		page.Entries = append(page.Entries, render.IndexEntry{Ordinal: s.Ordinal, Title: s.Title, File: s.File})
	}
	out, err := render.RenderIndex(page)
	if err != nil {
		return err
	}
	path := filepath.Join(a.cfg.OutputDir, indexFilename)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	log.Info().Str("out", path).Int("slides", len(page.Entries)).Msg("wrote index")
	return nil
}
