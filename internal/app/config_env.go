package app

import (
    "os"
    "strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env; fields still at their flag
// default count as unset.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.InputPath == "" || cfg.InputPath == DefaultInputPath {
        if v := strings.TrimSpace(os.Getenv("SLIDES_INPUT")); v != "" { cfg.InputPath = v }
    }
    if cfg.OutputDir == "" || cfg.OutputDir == DefaultOutputDir {
        if v := strings.TrimSpace(os.Getenv("SLIDES_OUT")); v != "" { cfg.OutputDir = v }
    }
    if cfg.Profile == "" {
        cfg.Profile = os.Getenv("SLIDES_PROFILE")
    }
    if cfg.Lang == "" {
        cfg.Lang = os.Getenv("SLIDES_LANG")
    }
    if cfg.Strategy == "" {
        cfg.Strategy = os.Getenv("SLIDES_STRATEGY")
    }
    if cfg.Encoding == "" {
        cfg.Encoding = os.Getenv("SLIDES_ENCODING")
    }
    if cfg.ServeAddr == "" {
        cfg.ServeAddr = os.Getenv("SLIDES_SERVE")
    }

    // Booleans
    setBool := func(dst *bool, envKey string) {
        if *dst { return }
        if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
            if s == "1" || s == "true" || s == "yes" || s == "on" {
                *dst = true
            }
        }
    }
    setBool(&cfg.DryRun, "DRY_RUN")
    setBool(&cfg.Verbose, "VERBOSE")
    setBool(&cfg.Index, "SLIDES_INDEX")
    setBool(&cfg.Manifest, "SLIDES_MANIFEST")
}
