package tracer_test

import (
	"fmt"

	"github.com/katalvlaran/circuittrace/board"
	"github.com/katalvlaran/circuittrace/frontier"
	"github.com/katalvlaran/circuittrace/tracer"
)

// ExampleTrace finds all shortest traces on a 2×3 board breadth-first.
//
//	1 O O
//	O O 2
//
// Three traces of two cells reach the end terminal in three steps.
func ExampleTrace() {
	b, err := board.ParseString("2 3\n1 O O\nO O 2\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := tracer.Trace(b, tracer.WithDiscipline(frontier.Queue))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("best:", res.Best, "paths:", len(res.Paths))
	for _, s := range res.Paths {
		for r := 0; r < s.Rows(); r++ {
			fmt.Println(s.RowString(r))
		}
		fmt.Println("--")
	}
	// Output:
	// best: 3 paths: 3
	// 1 O O
	// T T 2
	// --
	// 1 T O
	// O T 2
	// --
	// 1 T T
	// O O 2
	// --
}

// ExampleTrace_walledIn shows that an enclosed end terminal yields no traces.
func ExampleTrace_walledIn() {
	b, _ := board.ParseString("3 3\n1 O O\nO O X\nO X 2\n")
	res, _ := tracer.Trace(b, tracer.WithReachabilityCheck())
	fmt.Println("found:", res.Found(), "explored:", res.Stats.Explored)
	// Output:
	// found: false explored: 0
}
