package point

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for parsing points and directions.
var (
	// ErrMissingComma indicates point text without a comma separator.
	ErrMissingComma = errors.New("point: missing comma")
	// ErrComponentCount indicates 3D point text that does not split into three parts.
	ErrComponentCount = errors.New("point: expected exactly three components")
	// ErrBadComponent indicates a coordinate that does not parse as the scalar type.
	ErrBadComponent = errors.New("point: invalid component")
	// ErrInvalidDir indicates a token other than N, S, E or W.
	ErrInvalidDir = errors.New("point: invalid Dir")
	// ErrInvalidTurn indicates a token other than L or R.
	ErrInvalidTurn = errors.New("point: invalid Turn")
	// ErrInvalidDir2 indicates a token other than U, D, L or R.
	ErrInvalidDir2 = errors.New("point: invalid Dir2")
)

// Number is the scalar constraint for coordinates.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pt is a 2D coordinate. The zero value is the origin.
type Pt[T Number] struct {
	X, Y T
}

// Pt3 is a 3D coordinate. The zero value is the origin.
type Pt3[T Number] struct {
	X, Y, Z T
}
