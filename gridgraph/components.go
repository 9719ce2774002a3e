package gridgraph

// ConnectedComponents finds all 4-connected regions of open cells.
// Components appear in row-major order of their first cell; each component
// lists cell indices in BFS discovery order. Use Coordinate to map back.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()
	return comps
}

// Connects reports whether any trace can join the two terminals: they touch,
// or some open cell next to the start and some open cell next to the end
// share a component.
func (gg *GridGraph) Connects() bool {
	if gg.start.Adjacent(gg.end) {
		return true
	}
	labels, _ := gg.label()
	reach := make(map[int]struct{}, 4)
	for _, i := range gg.openAround(gg.start) {
		reach[labels[i]] = struct{}{}
	}
	for _, i := range gg.openAround(gg.end) {
		if _, ok := reach[labels[i]]; ok {
			return true
		}
	}
	return false
}

// label assigns every open cell its component number (-1 for closed cells).
func (gg *GridGraph) label() ([]int, [][]int) {
	labels := make([]int, len(gg.open))
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for i0, ok := range gg.open {
		if !ok || labels[i0] >= 0 {
			continue
		}
		id := len(comps)
		// BFS to collect component
		queue := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.openAround(gg.Coordinate(queue[qi])) {
				if labels[v] < 0 {
					labels[v] = id
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return labels, comps
}
