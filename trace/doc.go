// Package trace holds State, an immutable snapshot of one candidate trace on
// a circuit board.
//
// A State owns a private copy of the board in which every cell of its trace
// is marked 'T', plus the head (the most recently marked cell) and the trace
// length. States are created by New (a cell next to the start terminal), by
// Extend (one open neighbor of a previous head), or by the completing steps
// Finish and Direct, which move the head onto the end terminal without
// marking it. Every constructor copies the board first, so sibling branches
// never share a grid.
//
// A State is complete once its head is the end terminal. Its length counts
// steps: the trace cells plus the final step onto the end, so terminals that
// touch give a complete State of length 1.
//
// Memory: O(ROWS×COLS) per State.
package trace
