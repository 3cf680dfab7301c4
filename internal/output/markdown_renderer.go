package output

import (
	"strings"

	"namecorruptor/internal/runner"
)

// MarkdownRenderer produces the README report: a heading followed by every
// chain in an indented code block.
type MarkdownRenderer struct {
	Title string
}

func (r MarkdownRenderer) Target() OutputTarget {
	return TargetMarkdown
}

func (r MarkdownRenderer) RenderReport(report runner.Report) string {
	title := r.Title
	if title == "" {
		title = "Name Corruptor"
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("```\n")
	for _, entry := range report.Entries {
		b.WriteString("    " + FormatChain(entry.Chain) + "\n")
	}
	b.WriteString("```\n")
	return b.String()
}

var _ Renderer = MarkdownRenderer{}
