package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	cerrors "namecorruptor/internal/errors"
)

const (
	envConfigPath     = "CORRUPTOR_CONFIG"
	defaultConfigFile = ".corruptor.yaml"
)

// fileConfig mirrors RuntimeConfig for YAML decoding. Pointers distinguish
// "absent" from zero values.
type fileConfig struct {
	Grammar       *string `yaml:"grammar"`
	LinkDelimiter *string `yaml:"link_delimiter"`
	NameList      *string `yaml:"name_list"`
	Steps         *int    `yaml:"steps"`
	Relax         *bool   `yaml:"relax"`
	Color         *string `yaml:"color"`
	ReportPath    *string `yaml:"report_path"`
	LogLevel      *string `yaml:"log_level"`
}

// ResolveConfigPath returns the config file to read and whether it was named
// explicitly (through CORRUPTOR_CONFIG) rather than discovered.
func ResolveConfigPath(lookup EnvLookup, homeDir func() (string, error)) (string, bool) {
	if lookup != nil {
		if value, ok := lookup(envConfigPath); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), true
		}
	}
	if homeDir == nil {
		return "", false
	}
	home, err := homeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, defaultConfigFile), false
}

func applyFile(cfg *RuntimeConfig, meta *Metadata, opts loadOptions) error {
	configPath := strings.TrimSpace(opts.configPath)
	explicit := configPath != ""
	if !explicit {
		configPath, explicit = ResolveConfigPath(opts.envLookup, opts.homeDir)
	}
	if configPath == "" {
		return nil
	}

	data, err := opts.readFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	meta.path = configPath

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cerrors.WrapInvalidConfiguration("config_file", fmt.Errorf("parse %s: %w", configPath, err))
	}

	if parsed.Grammar != nil {
		cfg.Grammar = *parsed.Grammar
		meta.sources["grammar"] = SourceFile
	}
	if parsed.LinkDelimiter != nil {
		cfg.LinkDelimiter = *parsed.LinkDelimiter
		meta.sources["link_delimiter"] = SourceFile
	}
	if parsed.NameList != nil {
		cfg.NameList = expandHome(*parsed.NameList, opts.homeDir)
		meta.sources["name_list"] = SourceFile
	}
	if parsed.Steps != nil {
		cfg.Steps = *parsed.Steps
		meta.sources["steps"] = SourceFile
	}
	if parsed.Relax != nil {
		cfg.Relax = *parsed.Relax
		meta.sources["relax"] = SourceFile
	}
	if parsed.Color != nil {
		cfg.Color = ColorMode(*parsed.Color)
		meta.sources["color"] = SourceFile
	}
	if parsed.ReportPath != nil {
		cfg.ReportPath = expandHome(*parsed.ReportPath, opts.homeDir)
		meta.sources["report_path"] = SourceFile
	}
	if parsed.LogLevel != nil {
		cfg.LogLevel = *parsed.LogLevel
		meta.sources["log_level"] = SourceFile
	}
	return nil
}

func expandHome(path string, homeDir func() (string, error)) string {
	path = strings.TrimSpace(path)
	if homeDir == nil || (path != "~" && !strings.HasPrefix(path, "~/")) {
		return path
	}
	home, err := homeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
