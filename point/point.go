package point

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoclib/euclid"
)

// New returns Pt{x, y}.
func New[T Number](x, y T) Pt[T] {
	return Pt[T]{X: x, Y: y}
}

// XY returns the coordinates as a pair.
func (p Pt[T]) XY() (T, T) {
	return p.X, p.Y
}

// String formats p as "(x, y)", the form accepted by Parse.
func (p Pt[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Parse reads "(x, y)" or "x, y". Surrounding whitespace and brackets are
// optional; each component is trimmed before parsing as T.
func Parse[T Number](s string) (Pt[T], error) {
	body := strings.TrimSpace(s)
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	xs, ys, ok := strings.Cut(body, ",")
	if !ok {
		return Pt[T]{}, fmt.Errorf("%w: %q", ErrMissingComma, s)
	}
	x, err := parseScalar[T](xs)
	if err != nil {
		return Pt[T]{}, err
	}
	y, err := parseScalar[T](ys)
	if err != nil {
		return Pt[T]{}, err
	}

	return Pt[T]{X: x, Y: y}, nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (p Pt[T]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (p *Pt[T]) UnmarshalText(b []byte) error {
	v, err := Parse[T](string(b))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Add returns p + q componentwise.
func (p Pt[T]) Add(q Pt[T]) Pt[T] {
	return Pt[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q componentwise.
func (p Pt[T]) Sub(q Pt[T]) Pt[T] {
	return Pt[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by k.
func (p Pt[T]) Scale(k T) Pt[T] {
	return Pt[T]{X: p.X * k, Y: p.Y * k}
}

// Step moves p one unit towards d. It is unchecked: an unsigned coordinate
// at zero wraps around when stepping N or W. Use CheckedStep near edges.
func (p Pt[T]) Step(d Dir) Pt[T] {
	return p.Move(d, 1)
}

// Move moves p n units towards d, unchecked.
func (p Pt[T]) Move(d Dir, n T) Pt[T] {
	switch d {
	case N:
		p.Y -= n
	case S:
		p.Y += n
	case E:
		p.X += n
	case W:
		p.X -= n
	}

	return p
}

// CheckedStep is Step that reports false instead of leaving T's range.
// For floating-point T it reports false when the unit step is lost to
// rounding, e.g. a float64 coordinate of magnitude 2^53 or more; the
// returned point then equals p.
func (p Pt[T]) CheckedStep(d Dir) (Pt[T], bool) {
	q := p.Step(d)
	switch d {
	case N:
		return q, q.Y < p.Y
	case S:
		return q, q.Y > p.Y
	case E:
		return q, q.X > p.X
	case W:
		return q, q.X < p.X
	}

	return p, false
}

// Neighbors yields the orthogonal neighbours of p in N, S, E, W order,
// skipping any step that would leave T's range. The sequence is finite and
// may be ranged over repeatedly.
func (p Pt[T]) Neighbors() iter.Seq[Pt[T]] {
	return func(yield func(Pt[T]) bool) {
		for _, d := range dirs {
			q, ok := p.CheckedStep(d)
			if !ok {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|. The differences are taken in the
// right order so unsigned coordinates do not wrap.
func (p Pt[T]) Manhattan(q Pt[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// Chebyshev returns max(|p.X-q.X|, |p.Y-q.Y|), the king-move distance.
func (p Pt[T]) Chebyshev(q Pt[T]) T {
	return max(absDiff(p.X, q.X), absDiff(p.Y, q.Y))
}

// CheckedAddSigned offsets an unsigned point by a signed delta. It returns
// false if either axis would go below zero or above U's maximum.
func CheckedAddSigned[U constraints.Unsigned, S constraints.Signed](p Pt[U], off Pt[S]) (Pt[U], bool) {
	x, ok := addSigned(p.X, off.X)
	if !ok {
		return p, false
	}
	y, ok := addSigned(p.Y, off.Y)
	if !ok {
		return p, false
	}

	return Pt[U]{X: x, Y: y}, true
}

// Normalize divides both coordinates by gcd(|x|, |y|), reducing a direction
// vector to its smallest integer step: (4, -6) → (2, -3). The zero vector
// has no direction and is returned unchanged.
func Normalize[T constraints.Integer](p Pt[T]) Pt[T] {
	g := euclid.Gcd(p.X, p.Y)
	if g == 0 {
		return p
	}

	return Pt[T]{X: p.X / g, Y: p.Y / g}
}

// Sum adds up pts; the empty sum is the origin.
func Sum[T Number](pts ...Pt[T]) Pt[T] {
	var out Pt[T]
	for _, p := range pts {
		out = out.Add(p)
	}

	return out
}

func absDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}

func addSigned[U constraints.Unsigned, S constraints.Signed](u U, s S) (U, bool) {
	base := uint64(u)
	if s >= 0 {
		r := base + uint64(s)
		if r < base || uint64(U(r)) != r {
			return u, false
		}

		return U(r), true
	}
	mag := uint64(-(int64(s) + 1)) + 1
	if mag > base {
		return u, false
	}

	return U(base - mag), true
}
