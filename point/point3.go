package point

import (
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"
)

// New3 returns Pt3{x, y, z}.
func New3[T Number](x, y, z T) Pt3[T] {
	return Pt3[T]{X: x, Y: y, Z: z}
}

// XYZ returns the coordinates as a triple.
func (p Pt3[T]) XYZ() (T, T, T) {
	return p.X, p.Y, p.Z
}

// String formats p as "<x, y, z>", the form accepted by Parse3.
func (p Pt3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", p.X, p.Y, p.Z)
}

// Parse3 reads "<x, y, z>", "(x, y, z)" or "x, y, z". Exactly three
// comma-separated components are required.
func Parse3[T Number](s string) (Pt3[T], error) {
	body := strings.TrimSpace(s)
	body = strings.TrimLeft(body, "(<")
	body = strings.TrimRight(body, ")>")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Pt3[T]{}, fmt.Errorf("%w: %q has %d", ErrComponentCount, s, len(parts))
	}
	var xyz [3]T
	for i, part := range parts {
		v, err := parseScalar[T](part)
		if err != nil {
			return Pt3[T]{}, err
		}
		xyz[i] = v
	}

	return Pt3[T]{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (p Pt3[T]) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse3.
func (p *Pt3[T]) UnmarshalText(b []byte) error {
	v, err := Parse3[T](string(b))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Add returns p + q componentwise.
func (p Pt3[T]) Add(q Pt3[T]) Pt3[T] {
	return Pt3[T]{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p - q componentwise.
func (p Pt3[T]) Sub(q Pt3[T]) Pt3[T] {
	return Pt3[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale multiplies every coordinate by k.
func (p Pt3[T]) Scale(k T) Pt3[T] {
	return Pt3[T]{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Div divides every coordinate by k, truncating for integer T.
func (p Pt3[T]) Div(k T) Pt3[T] {
	return Pt3[T]{X: p.X / k, Y: p.Y / k, Z: p.Z / k}
}

// Manhattan returns the sum of absolute coordinate differences.
func (p Pt3[T]) Manhattan(q Pt3[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y) + absDiff(p.Z, q.Z)
}

// Neighbors26 yields the 26 cells of the 3×3×3 cube around p, excluding p,
// in x-major order. Steps are unchecked.
func (p Pt3[T]) Neighbors26() iter.Seq[Pt3[T]] {
	return func(yield func(Pt3[T]) bool) {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					q := Pt3[T]{X: shift(p.X, dx), Y: shift(p.Y, dy), Z: shift(p.Z, dz)}
					if !yield(q) {
						return
					}
				}
			}
		}
	}
}

// Sum3 adds up pts; the empty sum is the origin.
func Sum3[T Number](pts ...Pt3[T]) Pt3[T] {
	var out Pt3[T]
	for _, p := range pts {
		out = out.Add(p)
	}

	return out
}

// shift adds a unit delta in {-1, 0, 1} without converting a negative
// constant to an unsigned T.
func shift[T Number](v T, d int) T {
	switch d {
	case -1:
		return v - 1
	case 1:
		return v + 1
	}

	return v
}

// parseScalar parses a trimmed component with the strconv routine matching
// T's underlying kind and bit size, so out-of-range input is rejected.
func parseScalar[T Number](s string) (T, error) {
	s = strings.TrimSpace(s)
	typ := reflect.TypeFor[T]()
	var (
		v   T
		err error
	)
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		n, err = strconv.ParseInt(s, 10, typ.Bits())
		v = T(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var n uint64
		n, err = strconv.ParseUint(s, 10, typ.Bits())
		v = T(n)
	default:
		var f float64
		f, err = strconv.ParseFloat(s, typ.Bits())
		v = T(f)
	}
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrBadComponent, s, err)
	}

	return v, nil
}
