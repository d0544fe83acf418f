package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/slidesplit/internal/extract"
	"github.com/hyperifyio/slidesplit/internal/render"
	profiles "github.com/hyperifyio/slidesplit/internal/template"
)

// Errors surfaced by Extract. Callers match them with errors.Is.
var (
	ErrRead   = errors.New("read input")
	ErrDecode = errors.New("decode input")
	ErrWrite  = errors.New("write slide")
)

type App struct {
	cfg       Config
	profile   profiles.Profile
	extractor extract.Extractor
}

// GeneratedSlide describes one page produced by Extract.
type GeneratedSlide struct {
	Ordinal int
	Title   string
	File    string
	Path    string
	SHA256  string
	Bytes   int
}

// Result summarises one Extract call.
type Result struct {
	// InputMissing is set when the input file does not exist; nothing is
	// written in that case.
	InputMissing bool
	// Styles is the shared style block after the visibility fix.
	Styles string
	// InputSHA256 is the digest of the raw input bytes.
	InputSHA256 string
	Slides      []GeneratedSlide
	// Written counts files written to disk; zero on a dry run.
	Written int
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	ex, err := extract.ForStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	p := profiles.GetProfile(cfg.Profile)
	if len(cfg.Titles) > 0 {
		p = p.WithTitles(cfg.Titles)
	}
	if strings.TrimSpace(cfg.Lang) != "" {
		lang, err := profiles.CanonicalLang(cfg.Lang)
		if err != nil {
			return nil, err
		}
		p.Lang = lang
	}
	if strings.TrimSpace(cfg.AssetDir) == "" {
		cfg.AssetDir = DefaultAssetDir
	}
	return &App{cfg: cfg, profile: p, extractor: ex}, nil
}

// Run extracts the configured deck, writes the optional artifacts and, when
// a serve address is configured, serves the output until ctx is done.
func (a *App) Run(ctx context.Context) error {
	res, err := a.Extract(a.cfg.InputPath, a.cfg.OutputDir)
	if err != nil {
		return err
	}
	if res.InputMissing || a.cfg.DryRun {
		return nil
	}

	if a.cfg.Index {
		if err := a.writeIndex(res); err != nil {
			return err
		}
	}
	if a.cfg.Manifest {
		if err := a.writeManifest(res); err != nil {
			return err
		}
	}
	if strings.TrimSpace(a.cfg.OutlinePDFPath) != "" {
		if err := writeOutlinePDF(a.deckTitle(), res.Slides, a.cfg.OutlinePDFPath); err != nil {
			return fmt.Errorf("write outline pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutlinePDFPath).Msg("wrote outline pdf")
	}

	log.Info().Int("count", res.Written).Str("dir", a.cfg.OutputDir).Msg("all slides extracted successfully")
	if a.cfg.Index {
		log.Info().Str("file", filepath.Join(a.cfg.OutputDir, indexFilename)).Msg("open the index page to browse the slides")
	}

	if strings.TrimSpace(a.cfg.ServeAddr) != "" {
		return Serve(ctx, a.cfg.ServeAddr, a.cfg.OutputDir)
	}
	return nil
}

// Extract splits the deck at inputPath into one standalone page per slide
// and writes them to outputDir, which must already exist. A missing input
// is reported and yields an empty Result without error. The first failed
// write aborts the run; pages written before it are left in place.
func (a *App) Extract(inputPath, outputDir string) (Result, error) {
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("input", inputPath).Msg("input file not found")
		return Result{InputMissing: true}, nil
	}
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	src, err := extract.Decode(raw, a.cfg.Encoding)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrDecode, inputPath, err)
	}

	res := Result{
		Styles:      extract.ShowSlides(extract.Styles(src)),
		InputSHA256: computeSHA256Hex(string(raw)),
	}
	slides := a.extractor.Extract(src)
	log.Info().Int("count", len(slides)).Msg("found slides")

	profile := a.profile
	if a.cfg.TitlesFromMarkers {
		titles := make([]string, len(slides))
		for i, s := range slides {
			titles[i] = s.Marker
		}
		profile = profile.WithTitles(titles)
	}

	for _, s := range slides {
		title := profile.TitleFor(s.Ordinal)
		out, err := render.Render(render.Page{
			Ordinal: s.Ordinal,
			Total:   len(slides),
			Title:   title,
			Body:    extract.NormalizeAssetPaths(s.Body, a.cfg.AssetDir),
			Styles:  res.Styles,
			Profile: profile,
		})
		if err != nil {
			return res, err
		}
		file := render.FilenameFor(s.Ordinal)
		gen := GeneratedSlide{
			Ordinal: s.Ordinal,
			Title:   title,
			File:    file,
			Path:    filepath.Join(outputDir, file),
			SHA256:  computeSHA256Hex(string(out)),
			Bytes:   len(out),
		}

		if a.cfg.DryRun {
			res.Slides = append(res.Slides, gen)
			log.Info().Str("file", gen.Path).Str("title", title).Msg("dry run: would create slide")
			continue
		}
		if err := os.WriteFile(gen.Path, out, 0o644); err != nil {
			return res, fmt.Errorf("%w %d: %w", ErrWrite, s.Ordinal, err)
		}
		res.Slides = append(res.Slides, gen)
		res.Written++
		log.Info().Str("file", gen.Path).Str("title", title).Msg("created slide")
	}
	return res, nil
}

func (a *App) deckTitle() string {
	if t := strings.TrimSpace(a.profile.DeckTitle); t != "" {
		return t
	}
	base := filepath.Base(a.cfg.InputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
