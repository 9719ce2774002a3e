package tracer

import (
	"fmt"
	"time"

	"github.com/katalvlaran/circuittrace/board"
	"github.com/katalvlaran/circuittrace/frontier"
	"github.com/katalvlaran/circuittrace/gridgraph"
	"github.com/katalvlaran/circuittrace/trace"
)

// walker encapsulates mutable search state.
type walker struct {
	opts     Options
	frontier frontier.Frontier[*trace.State]
	best     Collector
	stats    Stats
}

// Trace enumerates every simple 4-connected trace from the start terminal to
// the end terminal of b and returns all those of minimal length.
// b itself is never modified.
//
// Returns ErrBoardNil, ErrOptionViolation, ErrStateLimit, the context error
// on cancellation, an OnExpand hook error, or ErrExpand if branching fails.
func Trace(b *board.Board, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	f, err := frontier.New[*trace.State](o.Discipline)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	w := &walker{opts: o, frontier: f}
	began := time.Now()
	log := o.Logger.With("discipline", o.Discipline.String())
	log.Debug("trace started",
		"rows", b.Rows(),
		"cols", b.Cols(),
		"start", b.Start().String(),
		"end", b.End().String(),
	)

	if o.ReachabilityCheck && !gridgraph.FromBoard(b).Connects() {
		log.Info("terminals not connected, search skipped")
		return w.result(began), nil
	}

	if err := w.seed(b); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		log.Warn("trace aborted", "explored", w.stats.Explored, "err", err)
		return nil, err
	}

	res := w.result(began)
	log.Info("trace finished",
		"best", res.Best,
		"paths", len(res.Paths),
		"explored", res.Stats.Explored,
		"completed", res.Stats.Completed,
		"pruned", res.Stats.Pruned,
		"peak_frontier", res.Stats.PeakFrontier,
		"dur", res.Stats.Duration,
	)
	return res, nil
}

// seed stores a state for every open neighbor of the start terminal,
// in board.Directions order. An end terminal next to the start is stored
// as a complete state of length 1.
func (w *walker) seed(b *board.Board) error {
	start := b.Start()
	for _, d := range board.Directions {
		p := start.Add(d)
		var (
			s   *trace.State
			err error
		)
		switch {
		case p == b.End():
			s, err = trace.Direct(b)
		case b.IsOpen(p.Row, p.Col):
			s, err = trace.New(b, p)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExpand, err)
		}
		w.store(s)
	}
	return nil
}

// loop drains the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.frontier.IsEmpty() {
		// cancellation check (once per state)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		s := w.frontier.Retrieve()
		w.stats.Explored++
		if w.opts.MaxStates > 0 && w.stats.Explored > w.opts.MaxStates {
			return fmt.Errorf("%w: %d", ErrStateLimit, w.opts.MaxStates)
		}

		if s.IsComplete() {
			w.stats.Completed++
			w.opts.OnComplete(s)
			w.best.Offer(s)
			continue
		}
		if w.opts.BoundPruning {
			if best, ok := w.best.Best(); ok && s.Len() >= best {
				w.stats.Pruned++
				continue
			}
		}
		if err := w.opts.OnExpand(s); err != nil {
			return fmt.Errorf("tracer: OnExpand error at %v: %w", s.Head(), err)
		}
		if err := w.expand(s); err != nil {
			return err
		}
	}
	return nil
}

// expand stores a successor for every neighbor of the head that is open on
// s's own snapshot, and a completed successor when the neighbor is the end
// terminal. Closed, traced, start and out-of-bounds neighbors are skipped
// here, so a failed step means a broken invariant.
func (w *walker) expand(s *trace.State) error {
	head, end := s.Head(), s.End()
	for _, d := range board.Directions {
		p := head.Add(d)
		var (
			next *trace.State
			err  error
		)
		switch {
		case p == end:
			next, err = s.Finish()
		case s.IsOpen(p.Row, p.Col):
			next, err = s.Extend(p)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExpand, err)
		}
		w.store(next)
	}
	return nil
}

func (w *walker) store(s *trace.State) {
	w.frontier.Store(s)
	if n := w.frontier.Len(); n > w.stats.PeakFrontier {
		w.stats.PeakFrontier = n
	}
}

func (w *walker) result(began time.Time) *Result {
	best, _ := w.best.Best()
	w.stats.Discarded = w.best.Discarded()
	w.stats.Duration = time.Since(began)
	return &Result{
		Paths:      w.best.Paths(),
		Best:       best,
		Discipline: w.opts.Discipline,
		Stats:      w.stats,
	}
}
