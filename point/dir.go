package point

import (
	"fmt"
	"iter"
)

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	N Dir = iota
	S
	E
	W
)

// dirs fixes the iteration order used by Dirs and Pt.Neighbors.
var dirs = [...]Dir{N, S, E, W}

// Dirs yields N, S, E, W in that order.
func Dirs() iter.Seq[Dir] {
	return func(yield func(Dir) bool) {
		for _, d := range dirs {
			if !yield(d) {
				return
			}
		}
	}
}

// ParseDir accepts "N", "S", "E" or "W".
func ParseDir(s string) (Dir, error) {
	switch s {
	case "N":
		return N, nil
	case "S":
		return S, nil
	case "E":
		return E, nil
	case "W":
		return W, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDir, s)
}

// Delta returns the unit offset for d, with Y growing downward.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case N:
		return 0, -1
	case S:
		return 0, 1
	case E:
		return 1, 0
	case W:
		return -1, 0
	}

	return 0, 0
}

// Turn returns the direction faced after turning left or right.
func (d Dir) Turn(t Turn) Dir {
	switch {
	case d == N && t == L, d == S && t == R:
		return W
	case d == N && t == R, d == S && t == L:
		return E
	case d == W && t == R, d == E && t == L:
		return N
	default: // W+L, E+R
		return S
	}
}

// Opposite returns the direction rotated by 180°.
func (d Dir) Opposite() Dir {
	switch d {
	case N:
		return S
	case S:
		return N
	case E:
		return W
	}

	return E
}

func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case S:
		return "S"
	case E:
		return "E"
	case W:
		return "W"
	}

	return fmt.Sprintf("Dir(%d)", uint8(d))
}

// Turn is a quarter rotation, left or right.
type Turn uint8

const (
	L Turn = iota
	R
)

// ParseTurn accepts "L" or "R".
func ParseTurn(s string) (Turn, error) {
	switch s {
	case "L":
		return L, nil
	case "R":
		return R, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
}

func (t Turn) String() string {
	if t == L {
		return "L"
	}

	return "R"
}

// Dir2 is the up/down/left/right vocabulary found in textual puzzle input.
// It is independent of Dir; use Dir2.Dir to convert.
type Dir2 uint8

const (
	U Dir2 = iota
	D
	Left
	Right
)

// ParseDir2 accepts "U", "D", "L" or "R"; anything else yields ErrInvalidDir2.
func ParseDir2(s string) (Dir2, error) {
	switch s {
	case "U":
		return U, nil
	case "D":
		return D, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDir2, s)
}

// Dir maps U→N, D→S, L→W, R→E.
func (d Dir2) Dir() Dir {
	switch d {
	case U:
		return N
	case D:
		return S
	case Left:
		return W
	}

	return E
}

func (d Dir2) String() string {
	switch d {
	case U:
		return "U"
	case D:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}

	return fmt.Sprintf("Dir2(%d)", uint8(d))
}
