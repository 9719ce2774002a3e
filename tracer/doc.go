// Package tracer finds every shortest trace joining the two terminals of a
// circuit board.
//
// What
//
//   - Seeds a frontier with a trace state for each open neighbor of the start
//     terminal, probed up, left, down, right. An end terminal among those
//     neighbors seeds a complete state of length 1.
//   - Repeatedly retrieves a state. A state whose head is the end terminal
//     goes to the Collector; any other state is branched, in the same fixed
//     order, into each neighbor open on its own snapshot and onto the end
//     terminal when the head touches it.
//   - Stops when the frontier is empty. The Collector then holds every
//     completed state of minimal length.
//
// Every candidate neighbor is validated before branching, so a failed step
// is never part of normal control flow: it is wrapped in ErrExpand and
// returned.
//
// Discipline
//
//	WithDiscipline(frontier.Stack) explores depth-first, frontier.Queue
//	breadth-first. The search is exhaustive and the Collector tracks the
//	minimum across all completions, so both report the same set of traces;
//	only memory profile and completion order differ.
//
// Complexity
//
//   - Time:   exponential in the number of open cells in the worst case
//     (all simple paths are enumerated).
//   - Memory: O(frontier × ROWS × COLS); each pending state owns a full grid.
//
// Usage
//
//	res, err := tracer.Trace(b,
//	    tracer.WithDiscipline(frontier.Queue),
//	    tracer.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrBoardNil, ErrOptionViolation, ErrStateLimit, ErrExpand, ctx errors
//	}
//	for _, s := range res.Paths {
//	    fmt.Println(s)
//	}
//
// Options
//
//   - WithContext(ctx)          cancellation / deadline.
//   - WithDiscipline(d)         Stack (default) or Queue.
//   - WithMaxStates(n)          abort with ErrStateLimit after n states.
//   - WithBoundPruning()        do not expand states that cannot beat the best.
//   - WithReachabilityCheck()   skip the search when no open route exists.
//   - WithLogger(l)             slog logger for run-level records.
//   - WithOnExpand(fn)          hook before branching; an error aborts.
//   - WithOnComplete(fn)        hook for each completion.
package tracer
