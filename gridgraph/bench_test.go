package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoclib/gridgraph"
	"github.com/katalvlaran/aoclib/point"
)

// randomGrid returns an n×n grid where roughly one cell in five is a wall.
func randomGrid(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			if rng.Intn(5) == 0 {
				row[x] = 1
			}
		}
		grid[y] = row
	}
	grid[0][0], grid[n-1][n-1] = 0, 0

	return grid
}

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomGrid(1000, 42), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkShortestPath measures corner-to-corner A* on a 300×300 grid.
func BenchmarkShortestPath(b *testing.B) {
	const n = 300
	gg, err := gridgraph.NewGridGraph(randomGrid(n, 7), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	from, to := point.New(0, 0), point.New(n-1, n-1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.ShortestPath(from, to)
	}
}

// BenchmarkBreach measures a 0-1 search across a grid that is all walls.
func BenchmarkBreach(b *testing.B) {
	const n = 200
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = 1
		}
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{WallThreshold: 1, Conn: gridgraph.Conn8})
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.Breach(point.New(0, 0), point.New(n-1, n-1))
	}
}

// BenchmarkFingerprint hashes a 1000×1000 grid.
func BenchmarkFingerprint(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomGrid(1000, 1), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Fingerprint()
	}
}
