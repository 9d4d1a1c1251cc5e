// Package vector provides an immutable, fixed-length float32 tuple.
package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// ErrInvalidArgument is returned when two vectors of different dimension are combined.
var ErrInvalidArgument = errors.New("invalid argument")

// Vector is a point or offset of arbitrary dimension. The zero value is a
// zero-dimensional vector. Vectors are never mutated after construction, so
// they are safe to share between goroutines.
type Vector struct {
	v []float32
}

// New returns a vector holding a copy of values.
func New(values ...float32) Vector {
	return Vector{v: append([]float32(nil), values...)}
}

// wrap adopts values without copying. Only used for slices allocated by
// this package.
func wrap(values []float32) Vector {
	return Vector{v: values}
}

// At returns the component at index i.
func (v Vector) At(i int) float32 {
	return v.v[i]
}

// X returns the first component.
func (v Vector) X() float32 { return v.v[0] }

// Y returns the second component.
func (v Vector) Y() float32 { return v.v[1] }

// Dimension returns the number of components.
func (v Vector) Dimension() int {
	return len(v.v)
}

// Values returns a copy of the components.
func (v Vector) Values() []float32 {
	return append([]float32(nil), v.v...)
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float32 {
	var sum float32
	for _, c := range v.v {
		sum += c * c
	}
	return math32.Sqrt(sum)
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) (float32, error) {
	if err := v.check(w); err != nil {
		return 0, err
	}
	var sum float32
	for i, c := range v.v {
		sum += c * w.v[i]
	}
	return sum, nil
}

// Add returns the element-wise sum v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if err := v.check(w); err != nil {
		return Vector{}, err
	}
	sum := make([]float32, len(v.v))
	for i, c := range v.v {
		sum[i] = c + w.v[i]
	}
	return wrap(sum), nil
}

// Subtract returns the element-wise difference v - w.
func (v Vector) Subtract(w Vector) (Vector, error) {
	if err := v.check(w); err != nil {
		return Vector{}, err
	}
	diff := make([]float32, len(v.v))
	for i, c := range v.v {
		diff[i] = c - w.v[i]
	}
	return wrap(diff), nil
}

// Scale multiplies every component by s.
func (v Vector) Scale(s float32) Vector {
	return v.apply(func(c float32) float32 { return c * s })
}

// AddScalar adds s to every component.
func (v Vector) AddScalar(s float32) Vector {
	return v.apply(func(c float32) float32 { return c + s })
}

// Pow raises every component to the power e.
func (v Vector) Pow(e float32) Vector {
	return v.apply(func(c float32) float32 { return math32.Pow(c, e) })
}

// Abs returns the component-wise absolute value.
func (v Vector) Abs() Vector {
	return v.apply(math32.Abs)
}

// Floor rounds every component toward negative infinity.
func (v Vector) Floor() Vector {
	return v.apply(math32.Floor)
}

// Prod returns the product of all components. The product of a
// zero-dimensional vector is 1.
func (v Vector) Prod() float32 {
	prod := float32(1)
	for _, c := range v.v {
		prod *= c
	}
	return prod
}

// Unit returns v scaled to a magnitude of 1. A zero vector stays zero.
func (v Vector) Unit() Vector {
	m := v.Magnitude()
	if m == 0 {
		return wrap(make([]float32, len(v.v)))
	}
	return v.Scale(1 / m)
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range v.v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (v Vector) apply(fn func(float32) float32) Vector {
	out := make([]float32, len(v.v))
	for i, c := range v.v {
		out[i] = fn(c)
	}
	return wrap(out)
}

func (v Vector) check(w Vector) error {
	if len(v.v) != len(w.v) {
		return fmt.Errorf("%w: vector dimensions %d and %d differ", ErrInvalidArgument, len(v.v), len(w.v))
	}
	return nil
}
