package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and mutation.
var (
	// ErrMalformedInput is wrapped by every error that rejects a board description.
	ErrMalformedInput = errors.New("board: malformed input")

	// ErrBadDimensions indicates a missing, non-numeric, non-positive or
	// oversized "ROWS COLS" header (see MaxSide, MaxCells), or an empty grid
	// passed to New.
	ErrBadDimensions = errors.New("board: invalid dimensions")

	// ErrRowWidth indicates a row whose cell count differs from COLS, or a
	// line too long to read.
	ErrRowWidth = errors.New("board: row width does not match column count")

	// ErrRowCount indicates fewer or more rows than declared.
	ErrRowCount = errors.New("board: row count does not match declared rows")

	// ErrInvalidSymbol indicates a cell symbol outside "OX12".
	ErrInvalidSymbol = errors.New("board: invalid cell symbol")

	// ErrDuplicateTerminal indicates a second '1' or '2'.
	ErrDuplicateTerminal = errors.New("board: duplicate terminal")

	// ErrMissingTerminal indicates that '1' or '2' never appears.
	ErrMissingTerminal = errors.New("board: missing terminal")

	// ErrOccupiedPosition is returned by MarkTrace when the target cell is not open.
	ErrOccupiedPosition = errors.New("board: occupied position")

	// ErrOutOfBounds is returned by CellAt for coordinates outside the grid.
	ErrOutOfBounds = errors.New("board: position out of bounds")
)

// Size limits enforced by Parse. A header beyond them is ErrBadDimensions.
const (
	// MaxSide bounds ROWS and COLS.
	MaxSide = 4096
	// MaxCells bounds ROWS×COLS.
	MaxCells = 1 << 20
)

// Cell is the kind of a single board position, stored as its file symbol.
type Cell byte

const (
	// Open is a free position a trace may pass through.
	Open Cell = 'O'
	// Closed is an occupied, unavailable position.
	Closed Cell = 'X'
	// Trace marks a position used by a path state.
	Trace Cell = 'T'
	// Start is the first terminal.
	Start Cell = '1'
	// End is the second terminal.
	End Cell = '2'
)

// Valid reports whether c is one of the five cell kinds.
func (c Cell) Valid() bool {
	switch c {
	case Open, Closed, Trace, Start, End:
		return true
	}
	return false
}

// String returns the single-character symbol of c.
func (c Cell) String() string {
	return string(rune(c))
}

// Point is a (row, col) board coordinate.
type Point struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Adjacent reports whether q is an orthogonal neighbor of p.
func (p Point) Adjacent(q Point) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Directions lists the four orthogonal offsets in expansion order:
// up, left, down, right. The order fixes the order of results.
var Directions = [4]Point{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
}
