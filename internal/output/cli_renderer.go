package output

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"namecorruptor/internal/config"
	"namecorruptor/internal/runner"
)

// CLIRenderer prints one chain per line, green when the name changed and red
// when it survived every step.
type CLIRenderer struct {
	changed   *color.Color
	unchanged *color.Color
	summary   *color.Color
}

// NewCLIRenderer creates a terminal renderer. colorEnabled toggles ANSI codes.
func NewCLIRenderer(colorEnabled bool) *CLIRenderer {
	r := &CLIRenderer{
		changed:   color.New(color.FgGreen),
		unchanged: color.New(color.FgRed),
		summary:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{r.changed, r.unchanged, r.summary} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *CLIRenderer) Target() OutputTarget {
	return TargetCLI
}

// RenderEntry renders a single chain line without a trailing newline.
func (r *CLIRenderer) RenderEntry(entry runner.Entry) string {
	line := "    " + FormatChain(entry.Chain)
	if entry.Corrupted() {
		return r.changed.Sprint(line)
	}
	return r.unchanged.Sprint(line)
}

func (r *CLIRenderer) RenderReport(report runner.Report) string {
	var b strings.Builder
	for _, entry := range report.Entries {
		b.WriteString(r.RenderEntry(entry))
		b.WriteByte('\n')
	}
	b.WriteString(r.summary.Sprintf("%d names, %d steps, %d unchanged", len(report.Entries), report.Steps, report.Remaining()))
	b.WriteByte('\n')
	return b.String()
}

// ColorEnabled resolves a color mode against the output writer.
func ColorEnabled(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

var _ Renderer = (*CLIRenderer)(nil)
