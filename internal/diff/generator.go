// Package diff describes how a name changed between two corruption steps.
package diff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change is a character-level comparison of two names.
type Change struct {
	Before   string
	After    string
	Removed  []string
	Inserted []string
	diffs    []diffmatchpatch.Diff
}

// Changed reports whether the names differ.
func (c Change) Changed() bool {
	return c.Before != c.After
}

// Generator renders character diffs between names.
type Generator struct {
	colorEnabled bool
	dmp          *diffmatchpatch.DiffMatchPatch
}

// NewGenerator creates a generator; colorEnabled toggles ANSI output.
func NewGenerator(colorEnabled bool) *Generator {
	return &Generator{
		colorEnabled: colorEnabled,
		dmp:          diffmatchpatch.New(),
	}
}

// Describe compares before and after character by character.
func (g *Generator) Describe(before, after string) Change {
	change := Change{Before: before, After: after}
	if before == after {
		return change
	}

	diffs := g.dmp.DiffMain(before, after, false)
	diffs = g.dmp.DiffCleanupSemantic(diffs)
	change.diffs = diffs

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			change.Removed = append(change.Removed, d.Text)
		case diffmatchpatch.DiffInsert:
			change.Inserted = append(change.Inserted, d.Text)
		}
	}
	return change
}

// Render shows deletions as [-x-] and insertions as {+y+}, colored red and
// green when enabled.
func (g *Generator) Render(change Change) string {
	if !change.Changed() {
		return change.After
	}

	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	if g.colorEnabled {
		red.EnableColor()
		green.EnableColor()
	} else {
		red.DisableColor()
		green.DisableColor()
	}

	var b strings.Builder
	for _, d := range change.diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString(red.Sprint("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			b.WriteString(green.Sprint("{+" + d.Text + "+}"))
		}
	}
	return b.String()
}
