// Package euclid provides generic number-theory helpers built around the
// Euclidean algorithm: gcd and lcm, Bézout coefficients, modular inverse,
// modular exponentiation and a Chinese Remainder Theorem solver.
//
// Overview:
//
//   - Gcd:        greatest common divisor of |a| and |b|; Gcd(0, 0) == 0.
//   - Egcd:       extended Euclid returning (g, s, t) with s·a + t·b == g.
//   - Sgcd:       recursive gcd with Go's truncating remainder (see caveat below).
//   - Lcm:        least common multiple, always non-negative.
//   - ModInverse: x in [0, n) with a·x ≡ 1 (mod n).
//   - ModPow:     base^exp mod m by repeated squaring.
//   - CRT:        smallest non-negative x satisfying x ≡ rᵢ (mod mᵢ) for every i,
//     moduli need not be pairwise coprime.
//
// Remainder conventions:
//
//   - Go's % operator truncates toward zero, so -7 % 3 == -1.
//   - RemEuclid and DivEuclid implement Euclidean division, where the remainder
//     is always in [0, |b|): RemEuclid(-7, 3) == 2.
//   - Gcd, ModInverse and CRT work in Euclidean terms; Egcd, Sgcd and ModPow use
//     the truncating operator, exactly like the built-in arithmetic.
//
// Caveat on Sgcd:
//
//	Sgcd(x, y) is only guaranteed to agree with Gcd for non-negative inputs.
//	With negative operands it may return a negative value, e.g. Sgcd(-4, 6) == 2
//	but Sgcd(4, -6) == -2. Prefer Gcd unless the sign-preserving behaviour is wanted.
//
// Errors (sentinel):
//
//   - ErrNotInvertible:       ModInverse called with gcd(a, n) > 1.
//   - ErrNonPositiveModulus:  a modulus ≤ 0 passed to ModInverse or CRT.
//   - ErrLengthMismatch:      CRT called with remainder and modulus slices of different length.
//   - ErrOverflow:            CRT combined modulus does not fit in the integer type.
//
// An unsatisfiable congruence system is not an error: CRT reports it with ok == false.
//
// Complexity:
//
//   - Gcd, Egcd, Sgcd, ModInverse: O(log min(a, b)) divisions.
//   - ModPow: O(log exp) multiplications; products are formed in 128 bits so no
//     intermediate overflow occurs for any 64-bit modulus.
//   - CRT: O(k · log M) for k congruences with combined modulus M.
package euclid
