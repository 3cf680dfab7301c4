package patterns

import (
	"fmt"
	"strings"
)

// Pattern is a literal substitution: every occurrence of Match is replaced
// by Replacement.
type Pattern struct {
	Match       string `json:"match" yaml:"match"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// New builds a Pattern.
func New(match, replacement string) Pattern {
	return Pattern{Match: match, Replacement: replacement}
}

func (p Pattern) String() string {
	return fmt.Sprintf("%s => %s", p.Match, p.Replacement)
}

// Apply replaces every non-overlapping occurrence of p.Match in name.
func (p Pattern) Apply(name string) string {
	return strings.ReplaceAll(name, p.Match, p.Replacement)
}

// Format renders one pattern per line.
func Format(patterns []Pattern) string {
	var b strings.Builder
	for _, p := range patterns {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}
