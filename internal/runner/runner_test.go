package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecorruptor/internal/config"
	"namecorruptor/internal/corruptor"
	"namecorruptor/internal/patterns"
)

func newRunner(t *testing.T, grammar string) *Runner {
	t.Helper()
	c, err := corruptor.New(patterns.Parse(grammar))
	require.NoError(t, err)
	return New(c, nil)
}

func TestEvolve(t *testing.T) {
	r := newRunner(t, "d => t => th")
	entry := r.Evolve("david", 3)

	// "t => th" keeps firing once every d has become t.
	assert.Equal(t, []string{"david", "tavit", "thavith", "thhavithh"}, entry.Chain)
	assert.Equal(t, "thhavithh", entry.Final())
	assert.True(t, entry.Corrupted())
}

func TestEvolveReachesFixedPoint(t *testing.T) {
	r := newRunner(t, "dh => d => t")
	entry := r.Evolve("david", 3)

	assert.Equal(t, []string{"david", "tavit", "tavit", "tavit"}, entry.Chain)
	assert.Equal(t, "tavit", entry.Final())
}

func TestEvolveZeroSteps(t *testing.T) {
	entry := newRunner(t, "d => t").Evolve("david", 0)
	assert.Equal(t, []string{"david"}, entry.Chain)
	assert.False(t, entry.Corrupted())
}

func TestRunCountsRemaining(t *testing.T) {
	r := newRunner(t, "th => ff; d => t")
	report := r.Run([]string{"agatha", "susan", "david"}, 2)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, 2, report.Steps)
	assert.Equal(t, "agaffa", report.Entries[0].Final())
	assert.Equal(t, "susan", report.Entries[1].Final())
	assert.Equal(t, "tavit", report.Entries[2].Final())
	assert.Equal(t, 1, report.Remaining())
}

func TestRunSharesCursorAcrossNames(t *testing.T) {
	r := newRunner(t, "a => e; n => m")
	report := r.Run([]string{"anna", "anna"}, 1)

	// The second name resumes after the pattern that won for the first.
	assert.Equal(t, "amma", report.Entries[0].Final())
	assert.Equal(t, "enne", report.Entries[1].Final())
}

func TestRunDefaultGrammarCorruptsSampleNames(t *testing.T) {
	c, err := corruptor.New(config.Defaults().Parser().Parse(config.DefaultGrammar))
	require.NoError(t, err)

	names := []string{"agatha", "david", "alfonzo", "beatrice", "catherine", "richard"}
	report := New(c, nil).Run(names, config.DefaultSteps)
	assert.Zero(t, report.Remaining())
	for _, e := range report.Entries {
		assert.Len(t, e.Chain, config.DefaultSteps+1)
	}
}

func TestEntryFinalWithoutChain(t *testing.T) {
	assert.Equal(t, "x", Entry{Name: "x"}.Final())
}
