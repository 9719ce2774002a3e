package gridgraph

import "github.com/katalvlaran/circuittrace/board"

// FromBoard snapshots the open cells of b.
// Later changes to b are not observed.
// Complexity: O(W×H) time and memory.
func FromBoard(b *board.Board) *GridGraph {
	gg := &GridGraph{
		Width:           b.Cols(),
		Height:          b.Rows(),
		start:           b.Start(),
		end:             b.End(),
		open:            make([]bool, b.Rows()*b.Cols()),
		neighborOffsets: board.Directions,
	}
	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			gg.open[gg.index(row, col)] = b.IsOpen(row, col)
		}
	}

	return gg
}

// InBounds reports whether (row,col) lies within the grid boundaries.
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// IsOpen reports whether (row,col) is an open vertex.
func (gg *GridGraph) IsOpen(row, col int) bool {
	return gg.InBounds(row, col) && gg.open[gg.index(row, col)]
}

// index maps (row,col) to a row-major index: row*Width + col.
func (gg *GridGraph) index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row-major index back to a board point.
func (gg *GridGraph) Coordinate(idx int) board.Point {
	return board.Point{Row: idx / gg.Width, Col: idx % gg.Width}
}

// openAround returns the indices of open cells orthogonally adjacent to p,
// in direction order.
func (gg *GridGraph) openAround(p board.Point) []int {
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		q := p.Add(d)
		if gg.IsOpen(q.Row, q.Col) {
			out = append(out, gg.index(q.Row, q.Col))
		}
	}
	return out
}
