package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/slidesplit/internal/extract"
    profiles "github.com/hyperifyio/slidesplit/internal/template"
)

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags/env.
type FileConfig struct {
    Input  string `yaml:"input" json:"input"`
    Output string `yaml:"output" json:"output"`

    Deck struct {
        Profile           string   `yaml:"profile" json:"profile"`
        Lang              string   `yaml:"lang" json:"lang"`
        Titles            []string `yaml:"titles" json:"titles"`
        TitlesFromMarkers bool     `yaml:"titlesFromMarkers" json:"titlesFromMarkers"`
        AssetDir          string   `yaml:"assetDir" json:"assetDir"`
    } `yaml:"deck" json:"deck"`

    Extract struct {
        Strategy string `yaml:"strategy" json:"strategy"`
        Encoding string `yaml:"encoding" json:"encoding"`
    } `yaml:"extract" json:"extract"`

    Artifacts struct {
        Index      bool   `yaml:"index" json:"index"`
        IndexIntro string `yaml:"indexIntro" json:"indexIntro"`
        Manifest   bool   `yaml:"manifest" json:"manifest"`
        OutlinePDF string `yaml:"outlinePDF" json:"outlinePDF"`
    } `yaml:"artifacts" json:"artifacts"`

    Serve   string `yaml:"serve" json:"serve"`
    DryRun  bool   `yaml:"dryRun" json:"dryRun"`
    Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default. Flags should already
// have been parsed; explicit flags win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if (cfg.InputPath == "" || cfg.InputPath == DefaultInputPath) && fc.Input != "" { cfg.InputPath = fc.Input }
    if (cfg.OutputDir == "" || cfg.OutputDir == DefaultOutputDir) && fc.Output != "" { cfg.OutputDir = fc.Output }

    if cfg.Profile == "" && fc.Deck.Profile != "" { cfg.Profile = fc.Deck.Profile }
    if cfg.Lang == "" && fc.Deck.Lang != "" { cfg.Lang = fc.Deck.Lang }
    if len(cfg.Titles) == 0 && len(fc.Deck.Titles) > 0 { cfg.Titles = append([]string{}, fc.Deck.Titles...) }
    if !cfg.TitlesFromMarkers && fc.Deck.TitlesFromMarkers { cfg.TitlesFromMarkers = true }
    if (cfg.AssetDir == "" || cfg.AssetDir == DefaultAssetDir) && fc.Deck.AssetDir != "" { cfg.AssetDir = fc.Deck.AssetDir }

    if cfg.Strategy == "" && fc.Extract.Strategy != "" { cfg.Strategy = fc.Extract.Strategy }
    if cfg.Encoding == "" && fc.Extract.Encoding != "" { cfg.Encoding = fc.Extract.Encoding }

    if !cfg.Index && fc.Artifacts.Index { cfg.Index = true }
    if cfg.IndexIntroPath == "" && fc.Artifacts.IndexIntro != "" { cfg.IndexIntroPath = fc.Artifacts.IndexIntro }
    if !cfg.Manifest && fc.Artifacts.Manifest { cfg.Manifest = true }
    if cfg.OutlinePDFPath == "" && fc.Artifacts.OutlinePDF != "" { cfg.OutlinePDFPath = fc.Artifacts.OutlinePDF }

    if cfg.ServeAddr == "" && fc.Serve != "" { cfg.ServeAddr = fc.Serve }
    if !cfg.DryRun && fc.DryRun { cfg.DryRun = true }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.InputPath) == "" {
        return errors.New("config: input path is required")
    }
    if strings.TrimSpace(cfg.OutputDir) == "" {
        return errors.New("config: output directory is required")
    }
    if _, err := extract.ForStrategy(cfg.Strategy); err != nil {
        return fmt.Errorf("config: %w", err)
    }
    if strings.TrimSpace(cfg.Lang) != "" {
        if _, err := profiles.CanonicalLang(cfg.Lang); err != nil {
            return fmt.Errorf("config: %w", err)
        }
    }
    if cfg.TitlesFromMarkers && len(cfg.Titles) > 0 {
        return errors.New("config: titles and titlesFromMarkers are mutually exclusive")
    }
    return nil
}
