package gridgraph

// MinTraceLength returns the length, in steps from the start terminal to the
// end terminal, of the shortest trace joining them, or ErrNoPath.
//
// Behavior:
//  1. Terminals that touch give 1.
//  2. Seed a BFS with every open cell adjacent to the start at distance 1.
//  3. Expand through open cells only.
//  4. Stop at the first dequeued cell adjacent to the end terminal; one more
//     step reaches the end.
//
// The result equals the common length of the best traces an exhaustive
// enumeration finds.
//
// Complexity: O(W·H·4). Memory: O(W·H).
func (gg *GridGraph) MinTraceLength() (int, error) {
	if gg.start.Adjacent(gg.end) {
		return 1, nil
	}
	dist := make([]int, len(gg.open))
	queue := make([]int, 0, len(gg.open))
	for _, i := range gg.openAround(gg.start) {
		if dist[i] == 0 {
			dist[i] = 1
			queue = append(queue, i)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		p := gg.Coordinate(u)
		if p.Adjacent(gg.end) {
			return dist[u] + 1, nil
		}
		for _, v := range gg.openAround(p) {
			if dist[v] == 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, ErrNoPath
}
