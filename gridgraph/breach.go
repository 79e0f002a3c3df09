package gridgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aoclib/astar"
	"github.com/katalvlaran/aoclib/point"
)

// Breach finds a route from `from` to `to` that passes through as few wall
// cells as possible, as if walls could be knocked down at a cost of 1 each.
// Stepping onto an open cell is free. It returns the route (both ends
// included) and the number of walls on it, counting `to` but not `from`.
//
// This is a 0–1 weighted search: A* with a zero heuristic over edge costs
// {0, 1}.
//
// Errors: ErrOutOfBounds if either endpoint lies outside the grid.
func (gg *GridGraph) Breach(from, to point.Pt[int]) (path []point.Pt[int], walls int, err error) {
	for _, p := range [...]point.Pt[int]{from, to} {
		if !gg.InBounds(p) {
			return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	g := astar.Func[point.Pt[int]]{NeighborsFunc: gg.breachNeighbors}
	res, err := astar.Search[point.Pt[int]](g, from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v→%v", ErrNoPath, from, to)
	}

	return res.Path, res.Cost, nil
}

// breachNeighbors yields every in-bounds neighbour of p, walls at cost 1.
func (gg *GridGraph) breachNeighbors(p point.Pt[int]) iter.Seq2[point.Pt[int], int] {
	return func(yield func(point.Pt[int], int) bool) {
		for _, d := range gg.neighborOffsets {
			q := p.Add(d)
			if !gg.InBounds(q) {
				continue
			}
			step := 0
			if gg.isWall(gg.CellValues[q.Y][q.X]) {
				step = 1
			}
			if !yield(q, step) {
				return
			}
		}
	}
}
