// Package corruptor evolves names by applying literal substitution patterns
// in a rotating order.
//
// A Corruptor is not safe for concurrent use. Callers must serialize access
// or keep one instance per goroutine.
package corruptor

import (
	"slices"

	"namecorruptor/internal/errors"
	"namecorruptor/internal/logging"
	"namecorruptor/internal/patterns"
)

// Observer is notified of every probe the search performs.
type Observer interface {
	Probed(index int)
	Corrupted(index int, before, after string)
	Exhausted(name string)
}

type nopObserver struct{}

func (nopObserver) Probed(int)                    {}
func (nopObserver) Corrupted(int, string, string) {}
func (nopObserver) Exhausted(string)              {}

// Option configures a Corruptor.
type Option func(*Corruptor)

// WithRelax collapses runs of three or more identical lowercase letters
// after each successful substitution ("alfffonzo" becomes "alffonzo").
// Collapsing repeats until no triple remains and covers 'z' as well, so
// "ffffff" relaxes all the way to "ff" in a single step.
func WithRelax() Option {
	return func(c *Corruptor) {
		c.relax = true
	}
}

// WithObserver registers an observer for probe and result events.
func WithObserver(observer Observer) Option {
	return func(c *Corruptor) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logging.Logger) Option {
	return func(c *Corruptor) {
		c.logger = logging.OrNop(logger)
	}
}

// Corruptor holds an ordered pattern sequence and the index of the pattern
// that last changed a name. Each search resumes right after that index, so
// applicable patterns take turns instead of pattern 0 always winning.
type Corruptor struct {
	patterns []patterns.Pattern
	// cursor is len(patterns) until the first successful substitution, so
	// the first search starts at (len+1) mod len.
	cursor   int
	relax    bool
	observer Observer
	logger   logging.Logger
}

// New returns a Corruptor over seq. The slice is retained, not copied, and
// must not be modified afterwards. An empty seq is rejected with an
// invalid configuration error.
func New(seq []patterns.Pattern, opts ...Option) (*Corruptor, error) {
	if len(seq) == 0 {
		return nil, errors.NewInvalidConfiguration("patterns", "at least one pattern is required")
	}

	c := &Corruptor{
		patterns: seq,
		cursor:   len(seq),
		observer: nopObserver{},
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CorruptOnce applies the first pattern, searching circularly from the one
// after the cursor, that changes name. It probes each pattern at most once
// and returns name unchanged, leaving the cursor in place, when none apply.
func (c *Corruptor) CorruptOnce(name string) string {
	n := len(c.patterns)
	if n == 0 {
		return name
	}

	index := c.start()
	for probe := 0; probe < n; probe++ {
		c.observer.Probed(index)

		pattern := c.patterns[index]
		if corrupted := pattern.Apply(name); corrupted != name {
			c.cursor = index
			if c.relax {
				corrupted = Relax(corrupted)
			}
			c.logger.Debug("pattern %d (%s) turned %q into %q", index, pattern, name, corrupted)
			c.observer.Corrupted(index, name, corrupted)
			return corrupted
		}

		index = (index + 1) % n
	}

	c.observer.Exhausted(name)
	return name
}

// Corrupt applies CorruptOnce iterations times, feeding each result back in.
func (c *Corruptor) Corrupt(name string, iterations int) string {
	for remaining := iterations; remaining > 0; remaining-- {
		name = c.CorruptOnce(name)
	}
	return name
}

// start is the first index probed by the next search.
func (c *Corruptor) start() int {
	return (c.cursor + 1) % len(c.patterns)
}

// Cursor returns the index of the last pattern that fired, or Len() when
// none has fired yet.
func (c *Corruptor) Cursor() int {
	return c.cursor
}

// Len is the number of patterns.
func (c *Corruptor) Len() int {
	return len(c.patterns)
}

// Patterns returns a copy of the pattern sequence.
func (c *Corruptor) Patterns() []patterns.Pattern {
	return slices.Clone(c.patterns)
}

// Reset restores the initial cursor of len(patterns). The next search then
// starts at (len+1) mod len, exactly as for a fresh Corruptor.
func (c *Corruptor) Reset() {
	c.cursor = len(c.patterns)
}
