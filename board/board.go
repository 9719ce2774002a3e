package board

import (
	"fmt"
	"strings"
)

// Board is a ROWS×COLS grid of cells with one Start and one End terminal.
// Its dimensions never change; only MarkTrace mutates cell contents.
type Board struct {
	rows, cols int
	cells      [][]Cell
	start, end Point
}

// New builds a Board from a non-empty rectangular grid of cells.
// It deep-copies the input. Trace cells are rejected, as are unknown kinds,
// duplicated or missing terminals. Every error wraps ErrMalformedInput.
// Complexity: O(ROWS×COLS).
func New(cells [][]Cell) (*Board, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, malformed(ErrBadDimensions, "grid must have at least one row and one column")
	}
	rows, cols := len(cells), len(cells[0])
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	var hasStart, hasEnd bool
	for r, row := range cells {
		if len(row) != cols {
			return nil, malformed(ErrRowWidth, "row %d has %d cells, want %d", r, len(row), cols)
		}
		b.cells[r] = make([]Cell, cols)
		for c, cell := range row {
			switch cell {
			case Open, Closed:
			case Start:
				if hasStart {
					return nil, malformed(ErrDuplicateTerminal, "second %q at %v", cell, Point{r, c})
				}
				hasStart, b.start = true, Point{r, c}
			case End:
				if hasEnd {
					return nil, malformed(ErrDuplicateTerminal, "second %q at %v", cell, Point{r, c})
				}
				hasEnd, b.end = true, Point{r, c}
			default:
				return nil, malformed(ErrInvalidSymbol, "%q at %v", cell, Point{r, c})
			}
			b.cells[r][c] = cell
		}
	}
	if !hasStart {
		return nil, malformed(ErrMissingTerminal, "no %q found", Start)
	}
	if !hasEnd {
		return nil, malformed(ErrMissingTerminal, "no %q found", End)
	}

	return b, nil
}

func malformed(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedInput, kind, fmt.Sprintf(format, args...))
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Start returns the coordinate of the '1' terminal.
func (b *Board) Start() Point { return b.start }

// End returns the coordinate of the '2' terminal.
func (b *Board) End() Point { return b.end }

// InBounds reports whether (row, col) lies within the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsOpen reports whether (row, col) is inside the grid and Open.
// It never fails, so neighbor probing needs no separate bounds check.
func (b *Board) IsOpen(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row][col] == Open
}

// CellAt returns the kind of cell at (row, col), or ErrOutOfBounds.
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	return b.cells[row][col], nil
}

// MarkTrace turns the Open cell at (row, col) into Trace.
// Any other cell, including one already traced or out of bounds,
// yields ErrOccupiedPosition and leaves the board untouched.
func (b *Board) MarkTrace(row, col int) error {
	if !b.IsOpen(row, col) {
		if !b.InBounds(row, col) {
			return fmt.Errorf("%w: (%d,%d) is outside the board", ErrOccupiedPosition, row, col)
		}
		return fmt.Errorf("%w: (%d,%d) contains %q", ErrOccupiedPosition, row, col, b.cells[row][col])
	}
	b.cells[row][col] = Trace
	return nil
}

// Clone returns an independent deep copy of b.
// Complexity: O(ROWS×COLS).
func (b *Board) Clone() *Board {
	cp := &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: make([][]Cell, b.rows),
		start: b.start,
		end:   b.end,
	}
	for r := range b.cells {
		cp.cells[r] = make([]Cell, b.cols)
		copy(cp.cells[r], b.cells[r])
	}
	return cp
}

// Cells returns a copy of the grid, row-major.
func (b *Board) Cells() [][]Cell {
	return b.Clone().cells
}

// RowString renders a single row as space-separated symbols without a
// trailing separator, e.g. "1 T O".
func (b *Board) RowString(row int) string {
	var sb strings.Builder
	for c, cell := range b.cells[row] {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(cell))
	}
	return sb.String()
}

// String renders the grid row-major: every symbol is followed by a space and
// every row by a newline.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (2*b.cols + 1))
	for _, row := range b.cells {
		for _, cell := range row {
			sb.WriteByte(byte(cell))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
