package gridgraph

import (
	"errors"

	"github.com/katalvlaran/circuittrace/board"
)

// ErrNoPath indicates no open route connects the start and end terminals.
var ErrNoPath = errors.New("gridgraph: no open path between terminals")

// GridGraph is a read-only view of a board's open cells as a graph.
// Width and Height define dimensions; open[idx] marks vertices, row-major.
// neighborOffsets holds the four orthogonal moves in board.Directions order.
type GridGraph struct {
	Width, Height   int
	start, end      board.Point
	open            []bool
	neighborOffsets [4]board.Point
}
