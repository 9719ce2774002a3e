// Package frontier provides the working set of a state-space search: a
// container of pending states whose removal order is chosen once, at
// construction, by a Discipline.
//
//   - Stack: last in, first out. The search goes depth-first and keeps a
//     frontier proportional to depth × branching.
//   - Queue: first in, first out. The search goes breadth-first and visits
//     states in non-decreasing length.
//
// The discipline changes exploration order only. An exhaustive search that
// tracks the minimum over all completions reports the same answer either way.
//
// Retrieve on an empty frontier is a programmer error and panics with ErrEmpty;
// callers check IsEmpty first.
//
// Complexity: Store, Retrieve, IsEmpty and Len are amortized O(1).
package frontier
