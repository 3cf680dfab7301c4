// Package runner drives a corruptor over a list of names, the way a caller
// would explore how a set of names drifts across successive sound shifts.
package runner

import (
	"namecorruptor/internal/corruptor"
	"namecorruptor/internal/logging"
)

// Entry is the evolution of one name.
type Entry struct {
	Name string
	// Chain starts with Name and holds one element per step after it.
	Chain []string
}

// Final is the last name in the chain.
func (e Entry) Final() string {
	if len(e.Chain) == 0 {
		return e.Name
	}
	return e.Chain[len(e.Chain)-1]
}

// Corrupted reports whether the final name differs from the original.
func (e Entry) Corrupted() bool {
	return e.Final() != e.Name
}

// Report collects the entries of a run.
type Report struct {
	Steps   int
	Entries []Entry
}

// Remaining counts names that ended the run unchanged.
func (r Report) Remaining() int {
	remaining := 0
	for _, e := range r.Entries {
		if !e.Corrupted() {
			remaining++
		}
	}
	return remaining
}

// Runner applies a corruptor to names. The corruptor is shared by every
// name, so its cursor carries over from one name to the next.
type Runner struct {
	corruptor *corruptor.Corruptor
	logger    logging.Logger
}

// New creates a Runner.
func New(c *corruptor.Corruptor, logger logging.Logger) *Runner {
	return &Runner{corruptor: c, logger: logging.OrNop(logger)}
}

// Evolve corrupts name steps times, returning every intermediate form.
func (r *Runner) Evolve(name string, steps int) Entry {
	entry := Entry{Name: name, Chain: make([]string, 0, max(steps, 0)+1)}
	entry.Chain = append(entry.Chain, name)

	current := name
	for i := 0; i < steps; i++ {
		current = r.corruptor.CorruptOnce(current)
		entry.Chain = append(entry.Chain, current)
	}
	return entry
}

// Run evolves every name in order.
func (r *Runner) Run(names []string, steps int) Report {
	report := Report{Steps: steps, Entries: make([]Entry, 0, len(names))}
	for _, name := range names {
		entry := r.Evolve(name, steps)
		if !entry.Corrupted() {
			r.logger.Warn("name %q unchanged after %d steps", name, steps)
		}
		report.Entries = append(report.Entries, entry)
	}
	r.logger.Info("evolved %d names, %d unchanged", len(report.Entries), report.Remaining())
	return report
}
