package tracer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/circuittrace/frontier"
	"github.com/katalvlaran/circuittrace/trace"
)

// Sentinel errors for trace search.
var (
	// ErrBoardNil is returned when a nil board is passed to Trace.
	ErrBoardNil = errors.New("tracer: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tracer: invalid option supplied")

	// ErrStateLimit is returned when more states than WithMaxStates allows
	// were retrieved from the frontier.
	ErrStateLimit = errors.New("tracer: explored state limit exceeded")

	// ErrExpand wraps an unexpected failure while branching a state.
	ErrExpand = errors.New("tracer: expansion failed")
)

// Option configures Trace via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a trace search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per retrieved state.
	Ctx context.Context

	// Discipline selects depth-first (Stack) or breadth-first (Queue) order.
	Discipline frontier.Discipline

	// MaxStates, if > 0, aborts with ErrStateLimit once more states were retrieved.
	MaxStates int

	// BoundPruning skips expanding states that cannot beat the current best.
	BoundPruning bool

	// ReachabilityCheck returns an empty result without searching when no
	// open route joins the terminals.
	ReachabilityCheck bool

	// Logger receives run-level records. Defaults to a discarding logger.
	Logger *slog.Logger

	// OnExpand is called for every incomplete state before it is branched.
	// Returning an error aborts the search.
	OnExpand func(s *trace.State) error

	// OnComplete is called for every completed state before it is collected.
	OnComplete func(s *trace.State)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Stack discipline
//   - no state limit, no pruning, no reachability pre-check
//   - a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Discipline: frontier.Stack,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:   func(*trace.State) error { return nil },
		OnComplete: func(*trace.State) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiscipline selects the frontier discipline.
func WithDiscipline(d frontier.Discipline) Option {
	return func(o *Options) {
		switch d {
		case frontier.Stack, frontier.Queue:
			o.Discipline = d
		default:
			o.err = fmt.Errorf("%w: %w: %v", ErrOptionViolation, frontier.ErrUnknownDiscipline, d)
		}
	}
}

// WithMaxStates bounds the number of states retrieved from the frontier.
//
//	n > 0: abort with ErrStateLimit past n states
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithBoundPruning stops expanding states whose length already reaches the
// best completion found so far. Results are unchanged.
func WithBoundPruning() Option {
	return func(o *Options) {
		o.BoundPruning = true
	}
}

// WithReachabilityCheck skips the search when no open route joins the terminals.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithLogger sets the logger for run-level records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run before an incomplete state is branched.
func WithOnExpand(fn func(s *trace.State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnComplete registers a callback run for every completed state.
func WithOnComplete(fn func(s *trace.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// Stats describes the work done by one search.
type Stats struct {
	Explored     int           // states retrieved from the frontier
	Completed    int           // completed states offered to the collector
	Discarded    int           // completions rejected or superseded
	Pruned       int           // states not expanded because of BoundPruning
	PeakFrontier int           // largest frontier size observed
	Duration     time.Duration // wall time of the search
}

// Result is the outcome of Trace.
type Result struct {
	// Paths holds every shortest completed trace, in completion order.
	Paths []*trace.State
	// Best is the common length of Paths, or 0 when none was found.
	Best int
	// Discipline is the frontier order used.
	Discipline frontier.Discipline
	Stats      Stats
}

// Found reports whether at least one trace joins the terminals.
func (r *Result) Found() bool { return len(r.Paths) > 0 }
