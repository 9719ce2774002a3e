// Package circuittrace finds every shortest trace joining two terminals on a
// circuit board, exploring candidate traces depth-first or breadth-first.
//
// What is circuittrace?
//
//	A small, dependency-light toolkit organised in focused subpackages:
//		• board      – grid of cells, terminals, occupancy queries, file loader
//		• trace      – immutable trace snapshots branched cell by cell
//		• frontier   – LIFO / FIFO storage selecting the exploration order
//		• tracer     – exhaustive search + collector of the shortest traces
//		• gridgraph  – open-cell connectivity and BFS length bound
//		• present    – text, JSON and YAML output
//		• config     – HCL run configuration for the command
//
// Board file format:
//
//	3 3
//	1 O O
//	O X O
//	O O 2
//
// 'O' open, 'X' closed, '1' start, '2' end. Traces are marked 'T'.
//
// Quick start:
//
//	b, _ := board.ParseFile("grid.dat")
//	res, _ := tracer.Trace(b, tracer.WithDiscipline(frontier.Queue))
//	for _, s := range res.Paths {
//		fmt.Println(s)
//	}
//
// Or from the command line:
//
//	go run ./cmd/circuittrace -q -c grid.dat
package circuittrace
