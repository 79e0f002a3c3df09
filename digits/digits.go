package digits

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iter yields the decimal digits of a value, most significant first.
// The zero value is an exhausted iterator.
type Iter[T constraints.Integer] struct {
	n       T // remaining low-order part
	divisor T // place value of the next digit; 0 once exhausted
}

// New returns an iterator over the digits of n.
//
// The divisor grows while divisor ≤ n/10, which is equivalent to
// divisor*10 ≤ n but cannot overflow T.
func New[T constraints.Integer](n T) *Iter[T] {
	const ten = 10
	divisor := T(1)
	for divisor <= n/ten {
		divisor *= ten
	}

	return &Iter[T]{n: n, divisor: divisor}
}

// Next returns the next digit and true, or zero and false when the
// iterator is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.divisor == 0 {
		return 0, false
	}
	d := it.n / it.divisor
	it.n %= it.divisor
	it.divisor /= 10

	return d, true
}

// Seq returns a sequence over the digits of n. Every range over the
// returned value starts from the first digit again.
func Seq[T constraints.Integer](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := New(n)
		for d, ok := it.Next(); ok; d, ok = it.Next() {
			if !yield(d) {
				return
			}
		}
	}
}

// Of returns the digits of n as a slice.
func Of[T constraints.Integer](n T) []T {
	out := make([]T, 0, Count(n))
	for d := range Seq(n) {
		out = append(out, d)
	}

	return out
}

// Count returns the number of decimal digits of n (1 for n < 10).
func Count[T constraints.Integer](n T) int {
	c := 0
	for it := New(n); it.divisor != 0; it.divisor /= 10 {
		c++
	}

	return c
}

// Join folds digits, most significant first, back into a value.
// Join(Of(n)) == n for every non-negative n. Overflow wraps silently.
func Join[T constraints.Integer](ds []T) T {
	var n T
	for _, d := range ds {
		n = n*10 + d
	}

	return n
}
