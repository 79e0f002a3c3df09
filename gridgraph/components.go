package gridgraph

import "github.com/katalvlaran/aoclib/point"

// ConnectedComponents finds all contiguous regions of open cells according
// to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order; the cells
// of each component are listed in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]point.Pt[int] {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]point.Pt[int]

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p0 := point.New(x, y)
			if !gg.IsOpen(p0) || seen[gg.index(p0)] {
				continue
			}
			// BFS to collect component
			seen[gg.index(p0)] = true
			comp := []point.Pt[int]{p0}
			for qi := 0; qi < len(comp); qi++ {
				for v := range gg.Neighbors(comp[qi]) {
					if vi := gg.index(v); !seen[vi] {
						seen[vi] = true
						comp = append(comp, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
