// Package aoclib is a small toolbox of helpers shared across puzzle
// solutions: grid points, number theory, digit iteration and A* search.
//
// What is in the box?
//
//	point/       Pt[T] and Pt3[T] value types, compass Dir with quarter Turns,
//	             and the U/D/L/R Dir2 vocabulary found in puzzle input
//	euclid/      Gcd, Egcd, Lcm, ModInverse, overflow-free ModPow and a CRT
//	             solver for non-coprime moduli
//	digits/      most-significant-first decimal digits of any integer type
//	astar/       A* over any comparable node type that implements Graph[N]
//	gridgraph/   a rectangular text grid as an astar.Graph, with components,
//	             wall breaching and state fingerprints
//
// The cmd/aoctool command wraps these packages for use from a shell.
//
// Conventions:
//
//   - Y grows downward: N is (0, -1), S is (0, +1).
//   - Every package reports bad input through sentinel errors declared in its
//     types.go, checked with errors.Is.
//   - Library packages never log; only cmd/aoctool does.
package aoclib
