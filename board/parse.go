package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a board description from r.
//
// The first line holds exactly two positive integers, ROWS and COLS, at most
// MaxSide each and MaxCells in product. Each of
// the next ROWS lines holds COLS symbols from "OX12"; whitespace between
// symbols is ignored. Trailing blank lines are allowed, any other extra line
// is ErrRowCount. A line longer than the scanner buffer is ErrRowWidth. All
// format errors wrap ErrMalformedInput; other read errors from r are
// returned as is.
func Parse(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, readErr(err, "header")
		}
		return nil, malformed(ErrBadDimensions, "empty input")
	}
	rows, cols, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	cells := make([][]Cell, 0, rows)
	for len(cells) < rows {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, readErr(err, fmt.Sprintf("row %d", len(cells)))
			}
			return nil, malformed(ErrRowCount, "got %d rows, want %d", len(cells), rows)
		}
		row := stripSpace(sc.Text())
		if len(row) != cols {
			return nil, malformed(ErrRowWidth, "row %d has %d cells, want %d", len(cells), len(row), cols)
		}
		line := make([]Cell, cols)
		for c := 0; c < cols; c++ {
			line[c] = Cell(row[c])
			if !line[c].Valid() || line[c] == Trace {
				return nil, malformed(ErrInvalidSymbol, "%q at %v", row[c], Point{len(cells), c})
			}
		}
		cells = append(cells, line)
	}
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, malformed(ErrRowCount, "more than %d rows", rows)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, readErr(err, "trailer")
	}

	return New(cells)
}

// ParseString is Parse over an in-memory description.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses it. A missing or unreadable file surfaces
// the os error, which does not wrap ErrMalformedInput.
func ParseFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// readErr maps a scanner failure: an over-long line is malformed input,
// anything else is an I/O error.
func readErr(err error, what string) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return malformed(ErrRowWidth, "%s: line exceeds %d bytes", what, bufio.MaxScanTokenSize)
	}
	return fmt.Errorf("board: read %s: %w", what, err)
}

// parseHeader accepts exactly two positive integers within MaxSide whose
// product is within MaxCells.
func parseHeader(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, malformed(ErrBadDimensions, "header %q must hold ROWS and COLS", line)
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil || rows <= 0 {
		return 0, 0, malformed(ErrBadDimensions, "rows %q", fields[0])
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil || cols <= 0 {
		return 0, 0, malformed(ErrBadDimensions, "cols %q", fields[1])
	}
	if rows > MaxSide || cols > MaxSide || rows*cols > MaxCells {
		return 0, 0, malformed(ErrBadDimensions, "%dx%d exceeds %d per side or %d cells", rows, cols, MaxSide, MaxCells)
	}
	return rows, cols, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
