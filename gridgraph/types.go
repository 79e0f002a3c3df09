// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/aoclib.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/aoclib/point"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBlocked indicates a search endpoint sits on a wall.
	ErrBlocked = errors.New("gridgraph: endpoint is a wall")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrRuneNotFound indicates FindRune found no matching cell.
	ErrRuneNotFound = errors.New("gridgraph: rune not found")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// WallThreshold specifies the minimum cell value considered a wall.
	// A threshold ≤ 0 disables walls entirely.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (values ≥1 are walls), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Row 0 is the top row, matching point.Pt's y-down convention.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallThreshold   int
	neighborOffsets []point.Pt[int]
}
