package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/circuittrace/board"
)

var (
	// ErrNotAdjacent is returned when a completing step is requested from a
	// position that does not touch the end terminal.
	ErrNotAdjacent = errors.New("trace: end terminal not adjacent")

	// ErrComplete is returned when branching a state that already reached the end.
	ErrComplete = errors.New("trace: state already complete")
)

// State is one candidate trace. It is never mutated after construction.
type State struct {
	grid   *board.Board
	head   board.Point
	length int
}

// New starts a trace on a private copy of b at p, which must be open.
// The caller is expected to probe p with b.IsOpen first; otherwise the
// board.ErrOccupiedPosition from marking is returned.
func New(b *board.Board, p board.Point) (*State, error) {
	grid := b.Clone()
	if err := grid.MarkTrace(p.Row, p.Col); err != nil {
		return nil, fmt.Errorf("trace: start at %v: %w", p, err)
	}
	return &State{grid: grid, head: p, length: 1}, nil
}

// Direct returns the complete state of a board whose terminals touch.
// No cell is traced; the head is the end terminal and the length is 1.
func Direct(b *board.Board) (*State, error) {
	if !b.Start().Adjacent(b.End()) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrNotAdjacent, b.Start(), b.End())
	}
	return &State{grid: b.Clone(), head: b.End(), length: 1}, nil
}

// Extend returns a successor of s whose head moves to p.
// p must be open on s's own snapshot; a traced, closed or terminal cell
// yields board.ErrOccupiedPosition and s is left unchanged.
func (s *State) Extend(p board.Point) (*State, error) {
	if s.IsComplete() {
		return nil, fmt.Errorf("%w: cannot extend to %v", ErrComplete, p)
	}
	grid := s.grid.Clone()
	if err := grid.MarkTrace(p.Row, p.Col); err != nil {
		return nil, fmt.Errorf("trace: extend %v to %v: %w", s.head, p, err)
	}
	return &State{grid: grid, head: p, length: s.length + 1}, nil
}

// Finish returns the successor of s that steps from the head onto the end
// terminal. The end cell keeps its '2' symbol on the snapshot.
func (s *State) Finish() (*State, error) {
	if s.IsComplete() {
		return nil, ErrComplete
	}
	end := s.grid.End()
	if !s.head.Adjacent(end) {
		return nil, fmt.Errorf("%w: head %v, end %v", ErrNotAdjacent, s.head, end)
	}
	return &State{grid: s.grid.Clone(), head: end, length: s.length + 1}, nil
}

// IsComplete reports whether the head is the end terminal.
func (s *State) IsComplete() bool {
	return s.head == s.grid.End()
}

// Len returns the number of steps taken from the start terminal: the trace
// cells, plus one once the trace has reached the end.
func (s *State) Len() int { return s.length }

// Row returns the head row.
func (s *State) Row() int { return s.head.Row }

// Col returns the head column.
func (s *State) Col() int { return s.head.Col }

// Head returns the head coordinate.
func (s *State) Head() board.Point { return s.head }

// Start returns the start terminal of the underlying board.
func (s *State) Start() board.Point { return s.grid.Start() }

// End returns the end terminal of the underlying board.
func (s *State) End() board.Point { return s.grid.End() }

// IsOpen probes the state's own snapshot, so cells already on this trace
// report false.
func (s *State) IsOpen(row, col int) bool {
	return s.grid.IsOpen(row, col)
}

// CellAt returns the cell kind on the snapshot.
func (s *State) CellAt(row, col int) (board.Cell, error) {
	return s.grid.CellAt(row, col)
}

// Rows returns the board height.
func (s *State) Rows() int { return s.grid.Rows() }

// Cols returns the board width.
func (s *State) Cols() int { return s.grid.Cols() }

// Cells returns a copy of the snapshot grid.
func (s *State) Cells() [][]board.Cell { return s.grid.Cells() }

// RowString renders one snapshot row, e.g. "1 T O".
func (s *State) RowString(row int) string { return s.grid.RowString(row) }

// String renders the snapshot; see board.Board.String.
func (s *State) String() string { return s.grid.String() }
