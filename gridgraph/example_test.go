// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoclib/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ShortestPath
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ShortestPath parses a small maze and walks from S to E.
func ExampleGridGraph_ShortestPath() {
	lines := []string{
		"S.#...",
		".##.#.",
		"....#E",
	}
	gg, _ := gridgraph.Parse(lines, gridgraph.Walls("#"), gridgraph.DefaultGridOptions())
	s, _ := gridgraph.FindRune(lines, 'S')
	e, _ := gridgraph.FindRune(lines, 'E')

	path, steps, err := gg.ShortestPath(s, e)
	fmt.Println(steps, err)
	fmt.Println(path[0], path[len(path)-1])

	// Output:
	// 11 <nil>
	// (0, 0) (5, 2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous regions of open cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = open, 1 = wall
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect two regions, listed in breadth-first order.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{1, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 2
	// component 0: [(1, 0) (2, 0) (1, 1) (0, 1) (0, 2)]
	// component 1: [(4, 0) (4, 1) (3, 1) (3, 2) (2, 2)]
}
