package euclid_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoclib/euclid"
)

// TestRemDivEuclid checks the Euclidean identity a == q*b + r with 0 ≤ r < |b|.
func TestRemDivEuclid(t *testing.T) {
	cases := []struct{ a, b, q, r int }{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -2, 1},
		{-7, -3, 3, 2},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.r, euclid.RemEuclid(tc.a, tc.b), "RemEuclid(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.q, euclid.DivEuclid(tc.a, tc.b), "DivEuclid(%d,%d)", tc.a, tc.b)
	}
}

// TestGcd_Properties sweeps a small square and checks symmetry, divisibility
// and non-negativity.
func TestGcd_Properties(t *testing.T) {
	for a := -30; a <= 30; a++ {
		for b := -30; b <= 30; b++ {
			g := euclid.Gcd(a, b)
			require.Equal(t, g, euclid.Gcd(b, a), "symmetry (%d,%d)", a, b)
			require.GreaterOrEqual(t, g, 0)
			if a == 0 && b == 0 {
				require.Zero(t, g)
				continue
			}
			require.Zero(t, a%g, "gcd(%d,%d)=%d must divide a", a, b, g)
			require.Zero(t, b%g, "gcd(%d,%d)=%d must divide b", a, b, g)
		}
	}
}

func TestGcd_Unsigned(t *testing.T) {
	assert.Equal(t, uint8(18), euclid.Gcd(uint8(252), uint8(198)))
	assert.Equal(t, uint64(0), euclid.Gcd(uint64(0), uint64(0)))
	assert.Equal(t, uint64(7), euclid.Gcd(uint64(0), uint64(7)))
}

// TestEgcd_Bezout verifies s*a + t*b == g over a sweep of signed inputs.
func TestEgcd_Bezout(t *testing.T) {
	for a := int64(-25); a <= 25; a++ {
		for b := int64(-25); b <= 25; b++ {
			g, s, tt := euclid.Egcd(a, b)
			require.Equal(t, g, s*a+tt*b, "Egcd(%d,%d)", a, b)
			if a != 0 || b != 0 {
				require.Equal(t, euclid.Gcd(a, b), euclid.Gcd(g, 0), "|g| must be the gcd of (%d,%d)", a, b)
			}
		}
	}
	g, s, tt := euclid.Egcd(240, 46)
	assert.Equal(t, []int{2, -9, 47}, []int{g, s, tt})
}

// TestSgcd_DivergesOnNegative pins the documented sign behaviour.
func TestSgcd_DivergesOnNegative(t *testing.T) {
	for a := 0; a <= 40; a++ {
		for b := 0; b <= 40; b++ {
			require.Equal(t, euclid.Gcd(a, b), euclid.Sgcd(a, b))
		}
	}
	assert.Equal(t, 2, euclid.Sgcd(-4, 6))
	assert.Equal(t, -2, euclid.Sgcd(4, -6))
	assert.Equal(t, 2, euclid.Gcd(4, -6))
}

func TestLcm(t *testing.T) {
	assert.Equal(t, 12, euclid.Lcm(4, 6))
	assert.Equal(t, 12, euclid.Lcm(-4, 6))
	assert.Equal(t, 0, euclid.Lcm(0, 6))
	assert.Equal(t, int64(3)<<40, euclid.Lcm(int64(1)<<40, int64(3)<<20))
}

// TestModInverse_Coprime checks (a * inv) % n == 1 for every coprime pair.
func TestModInverse_Coprime(t *testing.T) {
	for n := int64(2); n <= 60; n++ {
		for a := -n; a <= 2*n; a++ {
			if euclid.Gcd(a, n) != 1 {
				continue
			}
			inv, err := euclid.ModInverse(a, n)
			require.NoError(t, err)
			require.True(t, inv >= 0 && inv < n, "inverse %d out of range for n=%d", inv, n)
			require.Equal(t, int64(1), euclid.RemEuclid(a*inv, n), "a=%d n=%d inv=%d", a, n, inv)
		}
	}
}

func TestModInverse_Errors(t *testing.T) {
	_, err := euclid.ModInverse(6, 9)
	require.ErrorIs(t, err, euclid.ErrNotInvertible)
	assert.Contains(t, err.Error(), "6 mod 9")

	_, err = euclid.ModInverse(0, 7)
	require.ErrorIs(t, err, euclid.ErrNotInvertible)

	_, err = euclid.ModInverse(3, 0)
	require.ErrorIs(t, err, euclid.ErrNonPositiveModulus)

	inv, err := euclid.ModInverse(5, 1)
	require.NoError(t, err)
	assert.Zero(t, inv)
}

func TestMustModInverse_Panics(t *testing.T) {
	assert.Equal(t, 4, euclid.MustModInverse(3, 11))
	assert.PanicsWithError(t, "euclid: value is not invertible: 4 mod 8", func() {
		euclid.MustModInverse(4, 8)
	})
}

// naivePow multiplies step by step, reducing after each multiplication.
func naivePow(base, exp, m int64) int64 {
	r := int64(1) % m
	for i := int64(0); i < exp; i++ {
		r = r * (base % m) % m
	}

	return r
}

func TestModPow_MatchesRepeatedMultiplication(t *testing.T) {
	for m := int64(1); m <= 23; m++ {
		for base := int64(0); base <= 30; base++ {
			for exp := int64(0); exp <= 12; exp++ {
				require.Equal(t, naivePow(base, exp, m), euclid.ModPow(base, exp, m), "ModPow(%d,%d,%d)", base, exp, m)
			}
		}
	}
	assert.Equal(t, naivePow(7, 2020, 2021), euclid.ModPow(int64(7), 2020, 2021))
}

func TestModPow_EdgeCases(t *testing.T) {
	assert.Zero(t, euclid.ModPow(12345, 678, 1))
	assert.Equal(t, 1, euclid.ModPow(5, 0, 7))
	assert.Equal(t, 1, euclid.ModPow(5, -3, 7))
	// Truncating remainder: (-2)^3 = -8, -8 % 5 == -3.
	assert.Equal(t, -3, euclid.ModPow(-2, 3, 5))
}

// TestModPow_NoOverflow uses a modulus close to 2^63 where a naive product
// would overflow int64.
func TestModPow_NoOverflow(t *testing.T) {
	const p = int64(math.MaxInt64)
	b := p - 2
	// (p-2)^2 ≡ 4 (mod p)
	assert.Equal(t, int64(4), euclid.ModPow(b, 2, p))
	// Fermat: 3^(q-1) ≡ 1 (mod q) for the prime q = 2^61-1.
	const q = uint64(1)<<61 - 1
	assert.Equal(t, uint64(1), euclid.ModPow(uint64(3), q-1, q))
}

func TestCRT_Basic(t *testing.T) {
	x, ok, err := euclid.CRT([]int{2, 3, 2}, []int{3, 5, 7})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 23, x)
}

// busSystem turns a schedule such as "17,x,13,19" (given as ids with 0 for x)
// into congruences x ≡ -i (mod id).
func busSystem(ids []int64) (rems, mods []int64) {
	for i, id := range ids {
		if id == 0 {
			continue
		}
		rems = append(rems, id-int64(i))
		mods = append(mods, id)
	}

	return rems, mods
}

func TestCRT_BusSchedules(t *testing.T) {
	cases := []struct {
		ids  []int64
		want int64
	}{
		{[]int64{7, 13, 0, 0, 59, 0, 31, 19}, 1068781},
		{[]int64{17, 0, 13, 19}, 3417},
		{[]int64{67, 7, 59, 61}, 754018},
		{[]int64{67, 0, 7, 59, 61}, 779210},
		{[]int64{67, 7, 0, 59, 61}, 1261476},
		{[]int64{1789, 37, 47, 1889}, 1202161486},
	}
	for _, tc := range cases {
		rems, mods := busSystem(tc.ids)
		x, ok, err := euclid.CRT(rems, mods)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, tc.want, x, "ids=%v", tc.ids)
	}
}

// TestCRT_NonCoprime covers moduli sharing factors, solvable and not.
func TestCRT_NonCoprime(t *testing.T) {
	x, ok, err := euclid.CRT([]int{2, 4}, []int{4, 6})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, x) // 10 ≡ 2 (mod 4), 10 ≡ 4 (mod 6), lcm 12

	_, ok, err = euclid.CRT([]int{1, 2}, []int{4, 6})
	require.NoError(t, err)
	assert.False(t, ok, "x odd and x even at once")
}

// TestCRT_Exhaustive compares against brute force for every system over
// two small moduli.
func TestCRT_Exhaustive(t *testing.T) {
	for m1 := 1; m1 <= 8; m1++ {
		for m2 := 1; m2 <= 8; m2++ {
			l := euclid.Lcm(m1, m2)
			for r1 := -m1; r1 < m1; r1++ {
				for r2 := -m2; r2 < m2; r2++ {
					want := -1
					for c := 0; c < l; c++ {
						if euclid.RemEuclid(c-r1, m1) == 0 && euclid.RemEuclid(c-r2, m2) == 0 {
							want = c
							break
						}
					}
					x, ok, err := euclid.CRT([]int{r1, r2}, []int{m1, m2})
					require.NoError(t, err)
					if want < 0 {
						require.False(t, ok, "r=(%d,%d) m=(%d,%d)", r1, r2, m1, m2)
						continue
					}
					require.True(t, ok, "r=(%d,%d) m=(%d,%d)", r1, r2, m1, m2)
					require.Equal(t, want, x, "r=(%d,%d) m=(%d,%d)", r1, r2, m1, m2)
				}
			}
		}
	}
}

// bigCRT solves a coprime system with math/big as an independent reference.
func bigCRT(rems, mods []int64) *big.Int {
	prod := big.NewInt(1)
	for _, m := range mods {
		prod.Mul(prod, big.NewInt(m))
	}
	x := new(big.Int)
	for i, m := range mods {
		bm := big.NewInt(m)
		rest := new(big.Int).Div(prod, bm)
		inv := new(big.Int).ModInverse(rest, bm)
		term := new(big.Int).Mul(big.NewInt(rems[i]), rest)
		x.Add(x, term.Mul(term, inv))
	}

	return x.Mod(x, prod)
}

// TestCRT_LargeModuli uses moduli whose product is close to MaxInt64, where
// an unreduced Bézout multiplier would overflow.
func TestCRT_LargeModuli(t *testing.T) {
	x, ok, err := euclid.CRT([]int64{5, 1e9}, []int64{1_000_000_007, 1_000_000_009})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(7000000054), x)

	systems := [][]int64{
		{1_000_000_007, 1_000_000_009},
		{2_147_483_647, 2_147_483_629},
		{999_999_937, 999_999_929, 7},
		{4_294_967_291, 2_147_483_647},
	}
	rng := rand.New(rand.NewSource(13))
	for _, mods := range systems {
		for round := 0; round < 50; round++ {
			rems := make([]int64, len(mods))
			for i, m := range mods {
				rems[i] = rng.Int63n(2*m) - m // negative remainders too
			}
			want := bigCRT(rems, mods)
			require.True(t, want.IsInt64())

			got, ok, err := euclid.CRT(rems, mods)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, want.Int64(), got, "rems=%v mods=%v", rems, mods)
		}
	}
}

// TestCRT_LargeNonCoprime shares a factor of 6 between two large moduli, so
// the naive M·m product overflows while the lcm does not.
func TestCRT_LargeNonCoprime(t *testing.T) {
	p, q := int64(999_999_937), int64(999_999_929)
	m1, m2 := 6*p, 6*q // lcm = 6pq ≈ 6e18
	want := int64(5_123_456_789_012_345_678)
	x, ok, err := euclid.CRT([]int64{want % m1, want % m2}, []int64{m1, m2})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, x)
}

func TestCRT_Overflow(t *testing.T) {
	_, _, err := euclid.CRT([]int64{1, 2, 3}, []int64{4_294_967_291, 4_294_967_279, 7})
	require.ErrorIs(t, err, euclid.ErrOverflow)

	_, _, err = euclid.CRT([]int8{1, 2}, []int8{11, 13})
	require.ErrorIs(t, err, euclid.ErrOverflow, "lcm 143 does not fit in int8")
}

func TestCRT_Errors(t *testing.T) {
	_, _, err := euclid.CRT([]int{1, 2}, []int{3})
	require.ErrorIs(t, err, euclid.ErrLengthMismatch)

	_, _, err = euclid.CRT([]int{1}, []int{0})
	require.ErrorIs(t, err, euclid.ErrNonPositiveModulus)

	x, ok, err := euclid.CRT[int](nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, x)
}
