package config

import (
	"strconv"
	"strings"

	"namecorruptor/internal/errors"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "CORRUPTOR_"

func applyEnv(cfg *RuntimeConfig, meta *Metadata, opts loadOptions) error {
	lookup := opts.envLookup
	if lookup == nil {
		lookup = DefaultEnvLookup
	}
	get := func(key string) (string, bool) {
		value, ok := lookup(EnvPrefix + key)
		if !ok {
			return "", false
		}
		return value, true
	}

	if value, ok := get("GRAMMAR"); ok && strings.TrimSpace(value) != "" {
		cfg.Grammar = value
		meta.sources["grammar"] = SourceEnv
	}
	if value, ok := get("LINK_DELIMITER"); ok && strings.TrimSpace(value) != "" {
		cfg.LinkDelimiter = value
		meta.sources["link_delimiter"] = SourceEnv
	}
	if value, ok := get("NAME_LIST"); ok {
		cfg.NameList = value
		meta.sources["name_list"] = SourceEnv
	}
	if value, ok := get("STEPS"); ok && strings.TrimSpace(value) != "" {
		steps, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.NewInvalidConfiguration("steps", "%s%s=%q is not an integer", EnvPrefix, "STEPS", value)
		}
		cfg.Steps = steps
		meta.sources["steps"] = SourceEnv
	}
	if value, ok := get("RELAX"); ok && strings.TrimSpace(value) != "" {
		relax, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return errors.NewInvalidConfiguration("relax", "%s%s=%q is not a boolean", EnvPrefix, "RELAX", value)
		}
		cfg.Relax = relax
		meta.sources["relax"] = SourceEnv
	}
	if value, ok := get("COLOR"); ok && strings.TrimSpace(value) != "" {
		cfg.Color = ColorMode(value)
		meta.sources["color"] = SourceEnv
	}
	if value, ok := get("REPORT_PATH"); ok {
		cfg.ReportPath = value
		meta.sources["report_path"] = SourceEnv
	}
	if value, ok := get("LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		cfg.LogLevel = value
		meta.sources["log_level"] = SourceEnv
	}
	return nil
}
