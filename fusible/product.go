package fusible

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fusible/internal/fma"
)

// Product is a pending multiplication a*b produced by the multiply entry
// points of Float. It is meant to be consumed right away by Add, Sub,
// AddAssign, SubAssign or Value.
type Product[T constraints.Float] struct {
	a, b T
}

// Value returns the ordinary rounded product a*b. No fusion takes place.
func (p Product[T]) Value() T {
	return fma.Mul(p.a, p.b)
}

// Add returns p + c with a single rounding.
func (p Product[T]) Add(c T) T {
	return fma.MulAdd(p.a, p.b, c)
}

// Sub returns p - c with a single rounding.
func (p Product[T]) Sub(c T) T {
	return fma.MulSub(p.a, p.b, c)
}

// Add returns c + p with a single rounding.
func Add[T constraints.Float](c T, p Product[T]) T {
	return fma.MulAdd(p.a, p.b, c)
}

// Sub returns c - p with a single rounding. The negation is applied to the
// first factor, not to the result.
func Sub[T constraints.Float](c T, p Product[T]) T {
	return fma.NegMulAdd(p.a, p.b, c)
}

// AddAssign sets *acc to *acc + p with a single rounding and returns acc.
func AddAssign[T constraints.Float](acc *T, p Product[T]) *T {
	*acc = fma.MulAdd(p.a, p.b, *acc)
	return acc
}

// SubAssign sets *acc to *acc - p with a single rounding and returns acc.
func SubAssign[T constraints.Float](acc *T, p Product[T]) *T {
	*acc = fma.NegMulAdd(p.a, p.b, *acc)
	return acc
}
