package gridworld

// Components finds all contiguous regions of passable cells, according to
// gg.Conn connectivity. Returns a slice of components; each component is a
// slice of cell-indices (row-major) in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d) on first call, where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *Grid) Components() [][]int {
	gg.label()
	seeds := make([]int, gg.ncomp)
	for i := range seeds {
		seeds[i] = -1
	}
	for idx, l := range gg.labels {
		if l >= 0 && seeds[l] < 0 {
			seeds[l] = idx
		}
	}
	comps := make([][]int, gg.ncomp)
	for l, seed := range seeds {
		comps[l] = gg.flood(seed, nil)
	}
	return comps
}

// Connected reports whether a and b lie in the same component. A search
// between disconnected cells always ends unreachable.
func (gg *Grid) Connected(a, b Cell) bool {
	if a.grid != gg || b.grid != gg {
		return false
	}
	gg.label()
	return gg.labels[gg.index(a.X, a.Y)] == gg.labels[gg.index(b.X, b.Y)]
}

// label computes component labels once.
func (gg *Grid) label() {
	gg.labelsOnce.Do(func() {
		total := gg.Width * gg.Height
		gg.labels = make([]int, total)
		for i := range gg.labels {
			gg.labels[i] = -1
		}
		for y := 0; y < gg.Height; y++ {
			for x := 0; x < gg.Width; x++ {
				if !gg.IsPassable(x, y) {
					continue // wall
				}
				i0 := gg.index(x, y)
				if gg.labels[i0] >= 0 {
					continue
				}
				gg.flood(i0, func(idx int) { gg.labels[idx] = gg.ncomp })
				gg.ncomp++
			}
		}
	})
}

// flood runs BFS over passable cells from seed and returns the visit order.
// mark, when non-nil, is called for every visited index.
func (gg *Grid) flood(seed int, mark func(idx int)) []int {
	seen := map[int]bool{seed: true}
	queue := []int{seed}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if mark != nil {
			mark(u)
		}
		ux, uy := gg.Coordinate(u)
		for _, m := range gg.moves {
			dx, dy := m.Delta()
			vx, vy := ux+dx, uy+dy
			if !gg.IsPassable(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
