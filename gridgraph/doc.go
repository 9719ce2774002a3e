// Package gridgraph treats the open cells of a circuit board as a 4-connected
// graph, answering reachability and distance questions without enumerating
// traces.
//
// What:
//
//   - FromBoard indexes the board row-major; only Open cells are vertices.
//   - ConnectedComponents groups open cells into 4-connected regions.
//   - Connects reports whether some open cell next to the start terminal and
//     some open cell next to the end terminal lie in the same region, or the
//     terminals touch, i.e. whether any trace can exist at all.
//   - MinTraceLength runs a multi-source BFS from the start-adjacent cells to
//     the nearest end-adjacent cell and returns the shortest trace length,
//     counted in steps from the start terminal to the end terminal.
//
// Why:
//
//   - A cheap O(W×H) pre-check before an exponential trace enumeration.
//   - An independent oracle for the minimal length the enumeration reports.
//
// Complexity:
//
//   - ConnectedComponents, Connects, MinTraceLength: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrNoPath: no open route joins the two terminals.
package gridgraph
