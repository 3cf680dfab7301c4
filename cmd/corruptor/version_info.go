package main

import (
	"runtime/debug"
	"strings"
	"sync"

	"namecorruptor/internal/config"
)

var (
	versionOnce   sync.Once
	cachedVersion string
)

// appVersion returns CORRUPTOR_VERSION, the module version from build info,
// or "dev".
func appVersion() string {
	versionOnce.Do(func() {
		cachedVersion = detectVersion()
	})
	return cachedVersion
}

func detectVersion() string {
	if v, ok := config.DefaultEnvLookup("CORRUPTOR_VERSION"); ok {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
