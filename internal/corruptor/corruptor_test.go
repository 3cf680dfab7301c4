package corruptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecorruptor/internal/errors"
	"namecorruptor/internal/patterns"
)

type probeRecorder struct {
	probes    []int
	corrupted []int
	exhausted []string
}

func (r *probeRecorder) Probed(index int) { r.probes = append(r.probes, index) }
func (r *probeRecorder) Corrupted(index int, before, after string) {
	r.corrupted = append(r.corrupted, index)
}
func (r *probeRecorder) Exhausted(name string) { r.exhausted = append(r.exhausted, name) }

func mustNew(t *testing.T, grammar string, opts ...Option) *Corruptor {
	t.Helper()
	c, err := New(patterns.Parse(grammar), opts...)
	require.NoError(t, err)
	return c
}

func TestCorruptOnce_Agatha(t *testing.T) {
	c := mustNew(t, "th => ff")
	assert.Equal(t, "agaffa", c.CorruptOnce("agatha"))
	assert.Equal(t, 0, c.Cursor())
}

func TestCorruptOnce_David(t *testing.T) {
	c := mustNew(t, "d => t")
	assert.Equal(t, "tavit", c.CorruptOnce("david"))
}

func TestCorrupt_Iterations(t *testing.T) {
	c := mustNew(t, "th => ff")
	assert.Equal(t, "agaffa", c.Corrupt("agatha", 1))

	c = mustNew(t, "d => t => th")
	assert.Equal(t, "david", c.Corrupt("david", 0))
	assert.Equal(t, "david", c.Corrupt("david", -3))
	// d=>t fires first, then t=>th.
	assert.Equal(t, "thavith", c.Corrupt("david", 2))
}

func TestNew_EmptyPatternsIsInvalidConfiguration(t *testing.T) {
	c, err := New(nil)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.IsInvalidConfiguration(err))

	_, err = New(patterns.Parse(""))
	assert.True(t, errors.IsInvalidConfiguration(err))
}

func TestCorruptOnce_ZeroValueDoesNotPanic(t *testing.T) {
	var c Corruptor
	assert.NotPanics(t, func() {
		assert.Equal(t, "name", c.CorruptOnce("name"))
	})
}

func TestCorruptOnce_NoMatchLeavesCursor(t *testing.T) {
	c := mustNew(t, "x => y; q => k")
	before := c.Cursor()

	assert.Equal(t, "susan", c.CorruptOnce("susan"))
	assert.Equal(t, before, c.Cursor())

	// Idempotence boundary: same state, same answer.
	assert.Equal(t, "susan", c.CorruptOnce("susan"))
	assert.Equal(t, before, c.Cursor())
}

func TestCorruptOnce_NoMatchAfterSuccessLeavesCursor(t *testing.T) {
	c := mustNew(t, "a => b; c => d; e => f")
	assert.Equal(t, "xd", c.CorruptOnce("xc"))
	require.Equal(t, 1, c.Cursor())

	assert.Equal(t, "zzz", c.CorruptOnce("zzz"))
	assert.Equal(t, 1, c.Cursor())
}

func TestCorruptOnce_ProbesEachPatternOnce(t *testing.T) {
	rec := &probeRecorder{}
	c := mustNew(t, "a => b; c => d; e => f; g => h", WithObserver(rec))

	c.CorruptOnce("zzz")
	assert.Equal(t, []int{1, 2, 3, 0}, rec.probes)
	assert.Equal(t, []string{"zzz"}, rec.exhausted)
	assert.Equal(t, 4, c.Cursor())

	// After a win at index 2 the next search wraps from 3 back to 2.
	rec.probes = nil
	assert.Equal(t, "f", c.CorruptOnce("e"))
	assert.Equal(t, []int{1, 2}, rec.probes)
	assert.Equal(t, 2, c.Cursor())

	rec.probes = nil
	c.CorruptOnce("zzz")
	assert.Equal(t, []int{3, 0, 1, 2}, rec.probes)
}

func TestCorruptOnce_InitialSearchStartsAfterSentinel(t *testing.T) {
	grammars := []string{
		"a => b",
		"a => b; c => d",
		"a => b; c => d; e => f",
		"a => b; c => d; e => f; g => h; i => j",
	}
	for _, g := range grammars {
		rec := &probeRecorder{}
		c := mustNew(t, g, WithObserver(rec))
		n := c.Len()
		require.Equal(t, n, c.Cursor())

		c.CorruptOnce("zzz")
		require.Len(t, rec.probes, n, "grammar %q", g)
		assert.Equal(t, (n+1)%n, rec.probes[0], "grammar %q", g)
	}

	// With "a => e; n => m" the first corruption of "anna" comes from index 1.
	c := mustNew(t, "a => e; n => m")
	assert.Equal(t, "amma", c.CorruptOnce("anna"))
}

func TestCorruptOnce_SinglePatternAlwaysProbed(t *testing.T) {
	c := mustNew(t, "a => o")
	assert.Equal(t, "bob", c.CorruptOnce("bab"))
	// The entry cursor itself is probed as the last step of the circle.
	assert.Equal(t, "tom", c.CorruptOnce("tam"))
	assert.Equal(t, 0, c.Cursor())
}

func TestCorruptOnce_RoundRobin(t *testing.T) {
	rec := &probeRecorder{}
	c := mustNew(t, "a => e; n => m; z => s", WithObserver(rec))

	// Both "a => e" and "n => m" apply to "anna"; they alternate, starting
	// with index 1 because a fresh cursor sits at len.
	assert.Equal(t, "amma", c.CorruptOnce("anna"))
	assert.Equal(t, "enne", c.CorruptOnce("anna"))
	assert.Equal(t, "amma", c.CorruptOnce("anna"))
	assert.Equal(t, []int{1, 0, 1}, rec.corrupted)
}

func TestCorruptOnce_ReplacesAllNonOverlapping(t *testing.T) {
	c := mustNew(t, "aa => b")
	assert.Equal(t, "bba", c.CorruptOnce("aaaaa"))
}

func TestCorruptOnce_IsLiteralNotRegex(t *testing.T) {
	c := mustNew(t, ".* => x")
	assert.Equal(t, "abc", c.CorruptOnce("abc"))
	assert.Equal(t, "axc", c.CorruptOnce("a.*c"))
}

func TestCorruptOnce_IndependentInstances(t *testing.T) {
	seq := patterns.Parse("a => e; n => m")
	first, err := New(seq)
	require.NoError(t, err)
	second, err := New(seq)
	require.NoError(t, err)

	assert.Equal(t, "amma", first.CorruptOnce("anna"))
	assert.Equal(t, "amma", second.CorruptOnce("anna"))
	assert.Equal(t, "enne", first.CorruptOnce("anna"))
}

func TestReset(t *testing.T) {
	c := mustNew(t, "a => e; n => m")
	assert.Equal(t, "amma", c.CorruptOnce("anna"))
	require.Equal(t, 1, c.Cursor())

	c.Reset()
	assert.Equal(t, c.Len(), c.Cursor())
	assert.Equal(t, "amma", c.CorruptOnce("anna"))
	assert.Equal(t, 1, c.Cursor())
}

func TestPatternsReturnsCopy(t *testing.T) {
	c := mustNew(t, "a => e")
	got := c.Patterns()
	got[0] = patterns.New("z", "z")
	assert.Equal(t, "bet", c.CorruptOnce("bat"))
}

func TestWithRelax(t *testing.T) {
	c := mustNew(t, "ph => ff", WithRelax())
	assert.Equal(t, "alffonzo", c.CorruptOnce("alfphonzo"))

	plain := mustNew(t, "ph => ff")
	assert.Equal(t, "alfffonzo", plain.CorruptOnce("alfphonzo"))
}

func TestRelax(t *testing.T) {
	assert.Equal(t, "aa", Relax("aaa"))
	assert.Equal(t, "zz", Relax("zzzz"))
	assert.Equal(t, "alffonzo", Relax("alffffffffonzo"))
	assert.Equal(t, "abba", Relax("abba"))
	assert.Equal(t, "AAA", Relax("AAA"))
}
