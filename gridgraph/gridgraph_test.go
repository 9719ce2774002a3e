package gridgraph_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/circuittrace/board"
	"github.com/katalvlaran/circuittrace/gridgraph"
)

func fromString(t *testing.T, src string) *gridgraph.GridGraph {
	t.Helper()
	b, err := board.ParseString(src)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	return gridgraph.FromBoard(b)
}

//----------------------------------------------------------------------------//
// FromBoard and InBounds Tests
//----------------------------------------------------------------------------//

// TestFromBoard_OpenCells checks that only 'O' cells become vertices.
func TestFromBoard_OpenCells(t *testing.T) {
	gg := fromString(t, "2 3\n1 O X\nO X 2\n")
	if gg.Width != 3 || gg.Height != 2 {
		t.Fatalf("dims = %dx%d; want 3x2", gg.Width, gg.Height)
	}
	want := map[board.Point]bool{{Row: 0, Col: 1}: true, {Row: 1, Col: 0}: true}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			p := board.Point{Row: row, Col: col}
			if got := gg.IsOpen(row, col); got != want[p] {
				t.Errorf("IsOpen%v = %v; want %v", p, got, want[p])
			}
		}
	}
	if gg.InBounds(2, 0) || gg.InBounds(0, -1) || !gg.InBounds(1, 2) {
		t.Error("InBounds disagrees with 2x3 dimensions")
	}
	if got := gg.Coordinate(5); got != (board.Point{Row: 1, Col: 2}) {
		t.Errorf("Coordinate(5) = %v; want (1,2)", got)
	}
}

//----------------------------------------------------------------------------//
// ConnectedComponents and Connects Tests
//----------------------------------------------------------------------------//

// TestConnectedComponents splits the open cells by a closed column.
//
//	1 O X O
//	O O X O
//	X X X 2
func TestConnectedComponents(t *testing.T) {
	gg := fromString(t, "3 4\n1 O X O\nO O X O\nX X X 2\n")
	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	got := make([][]board.Point, len(comps))
	for i, comp := range comps {
		sort.Ints(comp)
		for _, idx := range comp {
			got[i] = append(got[i], gg.Coordinate(idx))
		}
	}
	want := [][]board.Point{
		{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
		{{Row: 0, Col: 3}, {Row: 1, Col: 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
	// start touches the left region, end the right one
	if gg.Connects() {
		t.Error("Connects() = true; want false across the closed column")
	}
}

func TestConnects(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"Open3x3", "3 3\n1 O O\nO O O\nO O 2\n", true},
		{"SharedCell", "1 3\n1 O 2\n", true},
		{"WalledEnd", "3 3\n1 O O\nO O X\nO X 2\n", false},
		{"AdjacentTerminals", "1 2\n1 2\n", true},
		{"NoOpenCells", "1 3\n1 X 2\n", false},
		{"StartBoxed", "2 3\n1 X O\nX O 2\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fromString(t, tc.src).Connects(); got != tc.want {
				t.Errorf("Connects() = %v; want %v", got, tc.want)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// MinTraceLength Tests
//----------------------------------------------------------------------------//

func TestMinTraceLength(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int
		err  error
	}{
		{"Corner3x3", "3 3\n1 O O\nO O O\nO O 2\n", 4, nil},
		{"SingleCell", "1 3\n1 O 2\n", 2, nil},
		{"AdjacentTerminals", "2 2\n1 2\nO O\n", 1, nil},
		{"AdjacentTerminalsOnly", "1 2\n1 2\n", 1, nil},
		{"Detour", "3 3\n1 X 2\nO X O\nO O O\n", 6, nil},
		{"Walled", "3 3\n1 O O\nO O X\nO X 2\n", 0, gridgraph.ErrNoPath},
		{"NoOpen", "1 3\n1 X 2\n", 0, gridgraph.ErrNoPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fromString(t, tc.src).MinTraceLength()
			if !errors.Is(err, tc.err) {
				t.Fatalf("MinTraceLength() error = %v; want %v", err, tc.err)
			}
			if got != tc.want {
				t.Errorf("MinTraceLength() = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestFromBoard_Snapshot verifies later board mutation is not observed.
func TestFromBoard_Snapshot(t *testing.T) {
	b, err := board.ParseString("1 3\n1 O 2\n")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	gg := gridgraph.FromBoard(b)
	if err := b.MarkTrace(0, 1); err != nil {
		t.Fatalf("MarkTrace error: %v", err)
	}
	if !gg.IsOpen(0, 1) {
		t.Error("GridGraph observed a mutation made after FromBoard")
	}
}
