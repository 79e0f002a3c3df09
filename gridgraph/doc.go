// Package gridgraph treats a rectangular 2D grid of cells as a graph, enabling
// shortest paths, component analysis and minimal wall breaches.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable WallThreshold.
//   - Parse builds one from puzzle text through a rune→value mapping.
//   - *GridGraph implements astar.Graph[point.Pt[int]], so ShortestPath is a
//     thin wrapper around astar.Search.
//   - Identifies connected components of open cells.
//   - Breach computes a route crossing the fewest walls (0-1 costs).
//   - Fingerprint hashes the grid for cycle detection in simulations.
//
// Complexity:
//
//   - ShortestPath, Breach: O(W×H×d × log(W×H)), Memory: O(W×H)  (d = 4 or 8).
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//   - Fingerprint:          O(W×H).
//
// Options:
//
//   - GridOptions.WallThreshold: minimum value considered a wall; ≤ 0 means none.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
//   - ErrBlocked: a ShortestPath endpoint is a wall.
//   - ErrNoPath: the endpoints are not connected.
//   - ErrRuneNotFound: FindRune found no match.
package gridgraph
