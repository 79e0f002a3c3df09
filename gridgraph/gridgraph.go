package gridgraph

import (
	"encoding/binary"
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/aoclib/astar"
	"github.com/katalvlaran/aoclib/point"
)

var (
	offsets4 = []point.Pt[int]{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	offsets8 = []point.Pt[int]{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
//
// Preconditions (in order):
//  1. At least one row and one column (ErrEmptyGrid).
//  2. Every row as long as the first (ErrNonRectangular, wrapped with the row).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	// 1) Validate dimensions
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	// 2) Validate rectangular shape
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// 3) Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// 4) Pick neighbor offsets once; Neighbors never branches on Conn.
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: offsets,
	}, nil
}

// Parse builds a GridGraph from text rows, one rune per cell, translating
// each rune through mapping. Rows are measured in runes, not bytes.
func Parse(lines []string, mapping func(rune) int, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, utf8.RuneCountInString(line))
		for _, r := range line {
			row = append(row, mapping(r))
		}
		values[y] = row
	}

	return NewGridGraph(values, opts)
}

// Walls returns a mapping for Parse that turns every rune in walls into 1
// and everything else into 0. Use it with DefaultGridOptions.
func Walls(walls string) func(rune) int {
	set := make(map[rune]struct{}, len(walls))
	for _, r := range walls {
		set[r] = struct{}{}
	}

	return func(r rune) int {
		if _, ok := set[r]; ok {
			return 1
		}

		return 0
	}
}

// FindRune returns the position of the first r in lines, scanning row-major.
func FindRune(lines []string, r rune) (point.Pt[int], error) {
	for y, line := range lines {
		x := 0
		for _, c := range line {
			if c == r {
				return point.New(x, y), nil
			}
			x++
		}
	}

	return point.Pt[int]{}, fmt.Errorf("%w: %q", ErrRuneNotFound, r)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p point.Pt[int]) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// At returns the cell value at p, or ErrOutOfBounds.
func (gg *GridGraph) At(p point.Pt[int]) (int, error) {
	if !gg.InBounds(p) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}

	return gg.CellValues[p.Y][p.X], nil
}

// IsOpen reports whether p is in bounds and not a wall.
func (gg *GridGraph) IsOpen(p point.Pt[int]) bool {
	return gg.InBounds(p) && !gg.isWall(gg.CellValues[p.Y][p.X])
}

func (gg *GridGraph) isWall(v int) bool {
	return gg.WallThreshold > 0 && v >= gg.WallThreshold
}

// Neighbors yields every open cell adjacent to p under gg.Conn, each at cost 1.
// It makes *GridGraph an astar.Graph[point.Pt[int]].
func (gg *GridGraph) Neighbors(p point.Pt[int]) iter.Seq2[point.Pt[int], int] {
	return func(yield func(point.Pt[int], int) bool) {
		for _, d := range gg.neighborOffsets {
			q := p.Add(d)
			if gg.IsOpen(q) && !yield(q, 1) {
				return
			}
		}
	}
}

// Heuristic is the Manhattan distance under Conn4 and the Chebyshev distance
// under Conn8; both are exact on an empty grid.
func (gg *GridGraph) Heuristic(from, to point.Pt[int]) int {
	if gg.Conn == Conn8 {
		return from.Chebyshev(to)
	}

	return from.Manhattan(to)
}

// ShortestPath runs A* between two open cells and returns the route (both
// ends included) and its length in steps.
//
// Errors (in order of detection):
//  1. ErrOutOfBounds if an endpoint lies outside the grid.
//  2. ErrBlocked if an endpoint is a wall.
//  3. ErrNoPath if the cells are not connected.
//
// Complexity: O(W×H×d × log(W×H)) time, O(W×H) memory.
func (gg *GridGraph) ShortestPath(from, to point.Pt[int]) ([]point.Pt[int], int, error) {
	// 1) Validate both endpoints
	for _, p := range [...]point.Pt[int]{from, to} {
		if !gg.InBounds(p) {
			return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if !gg.IsOpen(p) {
			return nil, 0, fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}

	// 2) Search. Unit costs and an exact-on-empty-grid heuristic keep A* optimal.
	res, err := astar.Search[point.Pt[int]](gg, from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v→%v", ErrNoPath, from, to)
	}

	return res.Path, res.Cost, nil
}

// Fingerprint hashes the dimensions and every cell value with xxhash.
// Equal grids always share a fingerprint, so a simulation can use it as a
// map key to detect a repeated state.
func (gg *GridGraph) Fingerprint() uint64 {
	// 1) Header: dimensions, so a 2×2 and a 1×4 grid of equal cells differ.
	d := xxhash.New()
	buf := make([]byte, 0, 8*(gg.Width+2))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(gg.Width))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(gg.Height))
	_, _ = d.Write(buf)

	// 2) Body: one little-endian word per cell, row by row.
	for _, row := range gg.CellValues {
		buf = buf[:0]
		for _, v := range row {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		}
		_, _ = d.Write(buf)
	}

	return d.Sum64()
}

// index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(p point.Pt[int]) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row‑major index back to a point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) point.Pt[int] {
	return point.New(idx%gg.Width, idx/gg.Width)
}
