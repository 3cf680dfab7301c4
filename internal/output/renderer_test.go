package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecorruptor/internal/config"
	"namecorruptor/internal/runner"
)

func sampleReport() runner.Report {
	return runner.Report{
		Steps: 2,
		Entries: []runner.Entry{
			{Name: "agatha", Chain: []string{"agatha", "agaffa", "agaffa"}},
			{Name: "susan", Chain: []string{"susan", "susan", "susan"}},
		},
	}
}

func TestFormatChain(t *testing.T) {
	assert.Equal(t, "", FormatChain(nil))
	assert.Equal(t, "david        => tavit       ", FormatChain([]string{"david", "tavit"}))
}

func TestCLIRenderer_Plain(t *testing.T) {
	out := NewCLIRenderer(false).RenderReport(sampleReport())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "    agatha       => agaffa"))
	assert.Equal(t, "2 names, 2 steps, 1 unchanged", lines[2])
	assert.NotContains(t, out, "\x1b[")
}

func TestCLIRenderer_Colored(t *testing.T) {
	r := NewCLIRenderer(true)
	report := sampleReport()

	assert.Contains(t, r.RenderEntry(report.Entries[0]), "\x1b[32m")
	assert.Contains(t, r.RenderEntry(report.Entries[1]), "\x1b[31m")
}

func TestMarkdownRenderer(t *testing.T) {
	out := MarkdownRenderer{}.RenderReport(sampleReport())

	assert.True(t, strings.HasPrefix(out, "# Name Corruptor\n\n```\n"))
	assert.Contains(t, out, "    susan        => susan        => susan       \n")
	assert.True(t, strings.HasSuffix(out, "```\n"))
}

func TestOutputManager(t *testing.T) {
	m := NewOutputManager(NewCLIRenderer(false), MarkdownRenderer{Title: "Names"})

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, TargetMarkdown, sampleReport()))
	assert.True(t, strings.HasPrefix(buf.String(), "# Names\n"))

	assert.Error(t, NewOutputManager().Write(&buf, TargetCLI, sampleReport()))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf))
}
