package tracer

import "github.com/katalvlaran/circuittrace/trace"

// Collector keeps every completed state of minimal length seen so far.
// The zero value is ready to use.
type Collector struct {
	best      int
	paths     []*trace.State
	discarded int
}

// Offer considers a completed state:
//   - no best yet, or equal length: appended;
//   - strictly shorter: replaces the whole collection;
//   - strictly longer: dropped.
//
// It reports whether s was kept.
func (c *Collector) Offer(s *trace.State) bool {
	switch n := s.Len(); {
	case len(c.paths) == 0 || n == c.best:
		c.best = n
		c.paths = append(c.paths, s)
	case n < c.best:
		c.discarded += len(c.paths)
		c.best = n
		c.paths = append(c.paths[:0:0], s)
	default:
		c.discarded++
		return false
	}
	return true
}

// Best returns the current minimal length and whether any state was kept.
func (c *Collector) Best() (int, bool) {
	return c.best, len(c.paths) > 0
}

// Paths returns the kept states in the order they were offered.
func (c *Collector) Paths() []*trace.State {
	return c.paths
}

// Len returns the number of kept states.
func (c *Collector) Len() int { return len(c.paths) }

// Discarded returns how many offered states were dropped or superseded.
func (c *Collector) Discarded() int { return c.discarded }
