package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/slidesplit/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputDir   string
		configPath  string
		envFiles    string
		profile     string
		language    string
		titles      string
		fromMarkers bool
		assetDir    string
		strategy    string
		encoding    string
		index       bool
		indexIntro  string
		manifest    bool
		outlinePDF  string
		serveAddr   string
		dryRun      bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&inputPath, "input", app.DefaultInputPath, "Path to the presentation HTML to split")
	flag.StringVar(&outputDir, "out", app.DefaultOutputDir, "Existing directory to write slideNN.html pages into")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files loaded before reading the environment")
	flag.StringVar(&profile, "profile", "", "Deck profile: wgs-class1 (default) or plain")
	flag.StringVar(&language, "lang", "", "Override the page language, e.g. 'ko' or 'en'")
	flag.StringVar(&titles, "titles", "", "Comma-separated slide titles replacing the profile catalog")
	flag.BoolVar(&fromMarkers, "titles.fromMarkers", false, "Take each slide title from its <!-- Slide N: Title --> marker")
	flag.StringVar(&assetDir, "assets", app.DefaultAssetDir, "Asset directory whose ./ and ../ prefixes are stripped")
	flag.StringVar(&strategy, "strategy", "", "Slide boundary strategy: tree (default) or pattern")
	flag.StringVar(&encoding, "encoding", "", "Source encoding label; 'auto' sniffs, empty means strict UTF-8")
	flag.BoolVar(&index, "index", false, "Also write index.html linking every slide")
	flag.StringVar(&indexIntro, "index.intro", "", "Markdown file rendered above the index slide list")
	flag.BoolVar(&manifest, "manifest", false, "Also write manifest.json and SHA256SUMS")
	flag.StringVar(&outlinePDF, "outline.pdf", "", "Write a PDF outline of slide titles to this path")
	flag.StringVar(&serveAddr, "serve", "", "Serve the output directory on this address after extraction, e.g. ':8080'")
	flag.BoolVar(&dryRun, "dry-run", false, "Report the pages that would be written without writing them")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("slidesplit %s (commit %s, built %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if err := app.LoadEnvFiles(splitList(envFiles)...); err != nil {
		log.Warn().Err(err).Msg("env files")
	}

	cfg := app.Config{
		InputPath:         inputPath,
		OutputDir:         outputDir,
		Profile:           profile,
		Lang:              language,
		Titles:            splitList(titles),
		TitlesFromMarkers: fromMarkers,
		AssetDir:          assetDir,
		Strategy:          strategy,
		Encoding:          encoding,
		Index:             index,
		IndexIntroPath:    indexIntro,
		Manifest:          manifest,
		OutlinePDFPath:    outlinePDF,
		ServeAddr:         serveAddr,
		DryRun:            dryRun,
		Verbose:           verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
