package output

import (
	"fmt"
	"io"

	"namecorruptor/internal/runner"
)

// OutputTarget represents different output destinations
type OutputTarget string

const (
	TargetCLI      OutputTarget = "cli"      // Terminal display, optionally colored
	TargetMarkdown OutputTarget = "markdown" // README-style report
)

// Renderer turns a run report into text for one target.
type Renderer interface {
	Target() OutputTarget
	RenderReport(report runner.Report) string
}

// OutputManager manages different renderers for different targets
type OutputManager struct {
	renderers map[OutputTarget]Renderer
}

// NewOutputManager creates a new output manager
func NewOutputManager(renderers ...Renderer) *OutputManager {
	m := &OutputManager{renderers: make(map[OutputTarget]Renderer)}
	for _, r := range renderers {
		m.RegisterRenderer(r)
	}
	return m
}

// RegisterRenderer registers a renderer for a target
func (m *OutputManager) RegisterRenderer(renderer Renderer) {
	m.renderers[renderer.Target()] = renderer
}

// Write renders report for target into w.
func (m *OutputManager) Write(w io.Writer, target OutputTarget, report runner.Report) error {
	renderer, ok := m.renderers[target]
	if !ok {
		return fmt.Errorf("no renderer registered for target %q", target)
	}
	_, err := io.WriteString(w, renderer.RenderReport(report))
	return err
}

// FormatChain lays out a chain as fixed-width columns joined by arrows.
func FormatChain(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	line := fmt.Sprintf("%-12s", chain[0])
	for _, name := range chain[1:] {
		line += fmt.Sprintf(" => %-12s", name)
	}
	return line
}
