package euclid

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the euclid package.
var (
	// ErrNotInvertible indicates that a has no inverse modulo n because gcd(a, n) > 1.
	ErrNotInvertible = errors.New("euclid: value is not invertible")

	// ErrNonPositiveModulus indicates a modulus that is zero or negative.
	ErrNonPositiveModulus = errors.New("euclid: modulus must be positive")

	// ErrLengthMismatch indicates that CRT received remainder and modulus
	// slices of different lengths.
	ErrLengthMismatch = errors.New("euclid: remainders and moduli differ in length")

	// ErrOverflow indicates that CRT's combined modulus does not fit in the
	// integer type.
	ErrOverflow = errors.New("euclid: combined modulus overflows")
)

// Integer is any built-in integer type, signed or unsigned.
type Integer = constraints.Integer

// Signed is any built-in signed integer type. Operations that produce
// Bézout coefficients or negative intermediates require it.
type Signed = constraints.Signed
