package config

import (
	"os"
	"strings"
	"time"

	"namecorruptor/internal/errors"
)

// Load resolves configuration with precedence defaults < file < environment
// < overrides.
func Load(opts ...Option) (RuntimeConfig, Metadata, error) {
	options := loadOptions{
		envLookup: DefaultEnvLookup,
		readFile:  os.ReadFile,
		homeDir:   os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(&options)
	}

	meta := Metadata{sources: map[string]ValueSource{}, loadedAt: time.Now()}
	cfg := Defaults()

	if err := applyFile(&cfg, &meta, options); err != nil {
		return RuntimeConfig{}, Metadata{}, err
	}
	if err := applyEnv(&cfg, &meta, options); err != nil {
		return RuntimeConfig{}, Metadata{}, err
	}
	applyOverrides(&cfg, &meta, options.overrides)

	normalizeRuntimeConfig(&cfg)
	if err := Validate(cfg); err != nil {
		return RuntimeConfig{}, Metadata{}, err
	}
	return cfg, meta, nil
}

func normalizeRuntimeConfig(cfg *RuntimeConfig) {
	cfg.LinkDelimiter = strings.TrimSpace(cfg.LinkDelimiter)
	cfg.NameList = strings.TrimSpace(cfg.NameList)
	cfg.ReportPath = strings.TrimSpace(cfg.ReportPath)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(string(cfg.Color))))
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
}

// Validate rejects values the CLI cannot work with.
func Validate(cfg RuntimeConfig) error {
	if cfg.LinkDelimiter == "" {
		return errors.NewInvalidConfiguration("link_delimiter", "must not be empty")
	}
	if strings.Contains(cfg.LinkDelimiter, ";") {
		return errors.NewInvalidConfiguration("link_delimiter", "must not contain the chain delimiter %q", ";")
	}
	if cfg.Steps < 0 {
		return errors.NewInvalidConfiguration("steps", "must be >= 0, got %d", cfg.Steps)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.NewInvalidConfiguration("color", "unknown mode %q (want auto, always or never)", cfg.Color)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewInvalidConfiguration("log_level", "unknown level %q", cfg.LogLevel)
	}
	return nil
}

func applyOverrides(cfg *RuntimeConfig, meta *Metadata, overrides Overrides) {
	if overrides.Grammar != nil {
		cfg.Grammar = *overrides.Grammar
		meta.sources["grammar"] = SourceOverride
	}
	if overrides.LinkDelimiter != nil {
		cfg.LinkDelimiter = *overrides.LinkDelimiter
		meta.sources["link_delimiter"] = SourceOverride
	}
	if overrides.NameList != nil {
		cfg.NameList = *overrides.NameList
		meta.sources["name_list"] = SourceOverride
	}
	if overrides.Steps != nil {
		cfg.Steps = *overrides.Steps
		meta.sources["steps"] = SourceOverride
	}
	if overrides.Relax != nil {
		cfg.Relax = *overrides.Relax
		meta.sources["relax"] = SourceOverride
	}
	if overrides.Color != nil {
		cfg.Color = *overrides.Color
		meta.sources["color"] = SourceOverride
	}
	if overrides.ReportPath != nil {
		cfg.ReportPath = *overrides.ReportPath
		meta.sources["report_path"] = SourceOverride
	}
	if overrides.LogLevel != nil {
		cfg.LogLevel = *overrides.LogLevel
		meta.sources["log_level"] = SourceOverride
	}
}
