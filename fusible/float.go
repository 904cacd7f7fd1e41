package fusible

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float wraps one floating-point value. It carries no state beyond the value
// itself; it only changes what multiplication returns.
//
// The zero value is a wrapped 0.
type Float[T constraints.Float] struct {
	val T
}

// Float32 and Float64 are the single and double precision wrappers.
type (
	Float32 = Float[float32]
	Float64 = Float[float64]
)

// New wraps v.
func New[T constraints.Float](v T) Float[T] {
	return Float[T]{val: v}
}

// Value returns the wrapped value unchanged.
func (f Float[T]) Value() T {
	return f.val
}

// Mul returns the deferred product f*g.
func (f Float[T]) Mul(g Float[T]) Product[T] {
	return Product[T]{a: f.val, b: g.val}
}

// String formats the wrapped value in the shortest form that round-trips.
func (f Float[T]) String() string {
	return strconv.FormatFloat(float64(f.val), 'g', -1, int(unsafe.Sizeof(f.val))*8)
}
