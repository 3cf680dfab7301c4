package config

import (
	"maps"
	"time"

	"namecorruptor/internal/patterns"
)

// ValueSource describes where a configuration value originated from.
type ValueSource string

const (
	SourceDefault  ValueSource = "default"
	SourceFile     ValueSource = "file"
	SourceEnv      ValueSource = "environment"
	SourceOverride ValueSource = "override"
)

// ColorMode controls ANSI coloring of CLI output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	DefaultSteps    = 4
	DefaultLogLevel = "warn"
)

// DefaultGrammar is the sound-shift grammar used when none is configured.
const DefaultGrammar = `
pir => per;
ie => iey;
sa => za => tsa => tzah;
th => dd => t;
gnu => gnae;
cel => ciel => sel => tzel;
lot => lod;
ric => rick => rik => rijk;
ph => ff => f => v => vh;
na => ne;
er => aer;
dwa => dva => tva => cha;
ao => ai => aiwa => awa => a;
d => t;
tta => tva;
lle => lla => llya;
in => en => un => um => ium;
i => ih => y;
por => pro;
b => p => f;
co => ko => kho;
an => in => ain;
zu => tzu;
ace => ache => eiche;
tt => t;
ys => iz => it => itz => its => itsa => itsah;
ia => aya;
ena => ina => iyna;
era => ira => idra;
ick => ich => ech => eckh`

// RuntimeConfig is the resolved configuration used by the CLI.
type RuntimeConfig struct {
	Grammar       string    `json:"grammar" yaml:"grammar"`
	LinkDelimiter string    `json:"link_delimiter" yaml:"link_delimiter"`
	NameList      string    `json:"name_list" yaml:"name_list"`
	Steps         int       `json:"steps" yaml:"steps"`
	Relax         bool      `json:"relax" yaml:"relax"`
	Color         ColorMode `json:"color" yaml:"color"`
	ReportPath    string    `json:"report_path" yaml:"report_path"`
	LogLevel      string    `json:"log_level" yaml:"log_level"`
}

// Overrides holds explicit values, typically from CLI flags. Nil fields
// leave the underlying value untouched.
type Overrides struct {
	Grammar       *string    `json:"grammar,omitempty" yaml:"grammar,omitempty"`
	LinkDelimiter *string    `json:"link_delimiter,omitempty" yaml:"link_delimiter,omitempty"`
	NameList      *string    `json:"name_list,omitempty" yaml:"name_list,omitempty"`
	Steps         *int       `json:"steps,omitempty" yaml:"steps,omitempty"`
	Relax         *bool      `json:"relax,omitempty" yaml:"relax,omitempty"`
	Color         *ColorMode `json:"color,omitempty" yaml:"color,omitempty"`
	ReportPath    *string    `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	LogLevel      *string    `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() RuntimeConfig {
	return RuntimeConfig{
		Grammar:       DefaultGrammar,
		LinkDelimiter: patterns.DefaultLinkDelimiter,
		Steps:         DefaultSteps,
		Color:         ColorAuto,
		LogLevel:      DefaultLogLevel,
	}
}

// Parser builds a pattern parser honouring the configured link delimiter.
func (c RuntimeConfig) Parser() *patterns.Parser {
	return patterns.NewParser(patterns.WithLinkDelimiter(c.LinkDelimiter))
}

// Metadata records provenance for each configuration field.
type Metadata struct {
	sources  map[string]ValueSource
	loadedAt time.Time
	path     string
}

// Sources returns a copy of the provenance map.
func (m Metadata) Sources() map[string]ValueSource {
	if m.sources == nil {
		return map[string]ValueSource{}
	}
	return maps.Clone(m.sources)
}

// Source returns the origin for the given configuration field.
func (m Metadata) Source(field string) ValueSource {
	if m.sources == nil {
		return SourceDefault
	}
	if src, ok := m.sources[field]; ok {
		return src
	}
	return SourceDefault
}

// LoadedAt reports when the configuration snapshot was created.
func (m Metadata) LoadedAt() time.Time {
	return m.loadedAt
}

// Path is the config file that was read, if any.
func (m Metadata) Path() string {
	return m.path
}
