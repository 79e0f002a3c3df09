package euclid

import (
	"fmt"
	"math/bits"
)

// abs returns |a|. For unsigned T it is the identity.
// abs of the most negative value of a signed type overflows back to itself.
func abs[T Integer](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// RemEuclid returns the Euclidean remainder of a divided by b, which is
// always in [0, |b|). It panics if b == 0, like the built-in operator.
func RemEuclid[T Integer](a, b T) T {
	r := a % b
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}

	return r
}

// DivEuclid returns the Euclidean quotient q such that a == q*b + RemEuclid(a, b).
// It panics if b == 0.
func DivEuclid[T Integer](a, b T) T {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}

	return q
}

// Gcd returns the greatest common divisor of |a| and |b|.
// The result is never negative and Gcd(0, 0) == 0.
//
// Complexity: O(log min(|a|, |b|)).
func Gcd[T Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, RemEuclid(a, b)
	}

	return a
}

// Egcd runs the iterative extended Euclidean algorithm and returns
// (g, s, t) such that s*a + t*b == g.
//
// Division and remainder truncate toward zero, so g carries the sign that
// falls out of the recurrence: Egcd(-4, 6) returns g == -2. Callers that need
// the non-negative gcd should use Gcd.
func Egcd[T Signed](a, b T) (g, s, t T) {
	sa, ta, sb, tb := T(1), T(0), T(0), T(1)
	for b != 0 {
		q, r := a/b, a%b
		sa, ta, sb, tb = sb, tb, sa-q*sb, ta-q*tb
		a, b = b, r
	}

	return a, sa, ta
}

// Sgcd is the textbook recursive gcd using the truncating % operator.
// It matches Gcd for non-negative inputs only; with negative operands the
// result may be negative (see package documentation).
func Sgcd[T Integer](x, y T) T {
	if y == 0 {
		return x
	}

	return Sgcd(y, x%y)
}

// Lcm returns the non-negative least common multiple of a and b.
// Lcm(0, x) == 0. The product is divided before multiplying to keep
// intermediates small.
func Lcm[T Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return abs(a / Gcd(a, b) * b)
}

// ModInverse returns x in [0, n) such that a*x ≡ 1 (mod n).
//
// a is first reduced into [0, n), so negative and oversized values are
// accepted. ModInverse(a, 1) == 0.
//
// Errors:
//   - ErrNonPositiveModulus if n ≤ 0.
//   - ErrNotInvertible if gcd(a, n) > 1.
func ModInverse[T Signed](a, n T) (T, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNonPositiveModulus, n)
	}

	t, newT := T(0), T(1)
	r, newR := n, RemEuclid(a, n)
	for newR != 0 {
		q := DivEuclid(r, newR)
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r > 1 {
		return 0, fmt.Errorf("%w: %d mod %d", ErrNotInvertible, a, n)
	}
	if t < 0 {
		t += n
	}

	return t, nil
}

// MustModInverse is like ModInverse but panics on error. Use it where a
// non-invertible input means the caller has a bug.
func MustModInverse[T Signed](a, n T) T {
	x, err := ModInverse(a, n)
	if err != nil {
		panic(err)
	}

	return x
}

// ModPow returns base^exp mod m by repeated squaring.
//
// Contract:
//   - m == 1 returns 0 immediately.
//   - Remainders truncate toward zero: a negative base yields a non-positive
//     result. Reduce base with RemEuclid first if a canonical residue is needed.
//   - exp must be non-negative; exp ≤ 0 performs no multiplication and
//     returns 1 (for m > 1).
//   - m == 0 panics with a division by zero.
//
// Each product is formed with a 128-bit intermediate, so the result is exact
// for any modulus representable in T.
func ModPow[T Integer](base, exp, m T) T {
	if m == 1 {
		return 0
	}
	result := T(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		exp >>= 1
		base = mulMod(base, base, m)
	}

	return result
}

// mulMod returns (a*b) % m with the sign rules of the truncating operator,
// computing the product in 128 bits.
func mulMod[T Integer](a, b, m T) T {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	r := T(bits.Rem64(hi, lo, magnitude(m)))
	if neg {
		return -r
	}

	return r
}

// magnitude returns |v| as a uint64 without overflowing for the most
// negative signed value.
func magnitude[T Integer](v T) uint64 {
	if v < 0 {
		return uint64(-(int64(v) + 1)) + 1
	}

	return uint64(v)
}

// CRT solves the system x ≡ rems[i] (mod mods[i]) using the generalized
// Chinese Remainder Theorem, so moduli do not have to be pairwise coprime.
//
// Congruences are folded in one at a time into a running (x, M) pair. For
// each new (r, m) the step is solvable only if g = gcd(M, m) divides r − x;
// the combined modulus becomes lcm(M, m) = M/g·m.
//
// Every intermediate stays below the combined modulus: the Bézout multiplier
// is reduced mod m/g and multiplied through 128 bits, so any system whose
// lcm fits in T is solved exactly.
//
// Returns:
//   - x in [0, lcm(mods...)) and ok == true on success.
//   - ok == false (and nil error) when the system has no solution.
//   - ErrLengthMismatch if len(rems) != len(mods).
//   - ErrNonPositiveModulus if any modulus is ≤ 0.
//   - ErrOverflow if the combined modulus does not fit in T.
//
// An empty system is trivially satisfied by 0.
func CRT[T Signed](rems, mods []T) (x T, ok bool, err error) {
	if len(rems) != len(mods) {
		return 0, false, fmt.Errorf("%w: %d remainders, %d moduli", ErrLengthMismatch, len(rems), len(mods))
	}

	var m T = 1
	for i, mi := range mods {
		if mi <= 0 {
			return 0, false, fmt.Errorf("%w: mods[%d]=%d", ErrNonPositiveModulus, i, mi)
		}

		// 1) diff = r − x with r reduced first, so |diff| < max(M, m).
		diff := RemEuclid(rems[i], mi) - x
		g, s, _ := Egcd(m, mi)
		if diff%g != 0 {
			return 0, false, nil
		}

		// 2) k = s·diff/g mod step, both factors reduced, product in 128 bits.
		step := mi / g
		k := mulMod(RemEuclid(s, step), RemEuclid(diff/g, step), step)

		// 3) New modulus M/g·m, rejected if it wraps.
		next := m / g * mi
		if next/mi != m/g {
			return 0, false, fmt.Errorf("%w: lcm of mods[:%d]", ErrOverflow, i+1)
		}

		// 4) x + M·k < M + M·(step − 1) = next, so the sum cannot overflow.
		x += m * k
		m = next
	}

	return x, true, nil
}
