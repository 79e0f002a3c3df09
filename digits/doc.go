// Package digits walks the decimal digits of an integer from the most
// significant to the least significant without formatting it as a string.
//
// The iterator keeps the remaining value and a power-of-ten divisor. The
// divisor starts at the largest power of ten not exceeding n (1 when n < 10)
// and is divided by ten after every digit; iteration ends when it reaches zero.
//
//	514579 → 5, 1, 4, 5, 7, 9
//	0      → 0
//
// Entry points:
//
//   - New / (*Iter).Next: pull-style iteration.
//   - Seq:   a restartable iter.Seq for range-over-func loops.
//   - Of:    collect into a slice.
//   - Count: number of digits.
//   - Join:  the inverse operation, folding digits back into a value.
//
// Negative inputs are outside the contract. They yield one value, n itself,
// because no power of ten ≤ n exists.
//
// Complexity: O(d) time for d digits, O(1) extra space (Of allocates d slots).
package digits
