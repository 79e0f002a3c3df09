// Package point provides small generic coordinate types for grid puzzles:
// Pt (2D) and Pt3 (3D), plus the direction enums used to walk a grid.
//
// Coordinates follow the row-major screen convention: X grows to the east,
// Y grows downward, so N decreases Y and S increases it.
//
//	        N (0,-1)
//	W (-1,0)   ·   E (+1,0)
//	        S (0,+1)
//
// What:
//
//   - Pt[T] / Pt3[T]: comparable value types, usable as map keys.
//   - Parse / Parse3 read "(x, y)" and "<x, y, z>" (brackets optional);
//     String writes the same forms back.
//   - Add, Sub, Scale: componentwise arithmetic with T's native overflow.
//   - Step(d): unchecked one-unit move. CheckedStep(d): reports false instead
//     of wrapping at the edge of T's range.
//   - Neighbors: lazy iter.Seq of the up-to-four in-range orthogonal
//     neighbours, tried in N, S, E, W order.
//   - CheckedAddSigned: move an unsigned point by a signed offset safely.
//   - Manhattan, Normalize, Neighbors26 (3D).
//   - Dir {N,S,E,W} with Turn {L,R}; Dir2 {U,D,L,R} for textual input.
//
// Errors (sentinel, wrapped with the offending input):
//
//   - ErrMissingComma:   no comma separates the components.
//   - ErrComponentCount: Parse3 did not find exactly three components.
//   - ErrBadComponent:   a component does not parse as T.
//   - ErrInvalidDir, ErrInvalidTurn, ErrInvalidDir2: unknown direction token.
package point
