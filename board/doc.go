// Package board models a rectangular circuit board: a grid of cells plus the
// two terminals ('1' and '2') a trace has to connect.
//
// What:
//
//   - Board holds ROWS×COLS cells of kind Open 'O', Closed 'X', Trace 'T',
//     Start '1' and End '2', with exactly one Start and one End.
//   - IsOpen answers occupancy queries defensively: out-of-bounds is simply
//     "not open", so callers never pre-validate coordinates.
//   - MarkTrace turns an Open cell into Trace and refuses everything else with
//     ErrOccupiedPosition.
//   - Parse/ParseFile read the textual board format:
//
//     3 4
//     O O 1 O
//     O X X O
//     2 O O O
//
// Dimensions are fixed at construction. A Board handed to the search is never
// mutated by it; every path state works on its own Clone.
//
// Errors:
//
//   - ErrMalformedInput      wraps every loader/constructor violation:
//     ErrBadDimensions, ErrRowWidth, ErrRowCount, ErrInvalidSymbol,
//     ErrDuplicateTerminal, ErrMissingTerminal.
//   - ErrOccupiedPosition    MarkTrace on a non-open cell.
//   - ErrOutOfBounds         CellAt outside the grid.
//
// Complexity: New, Clone and String are O(ROWS×COLS); all queries are O(1).
package board
