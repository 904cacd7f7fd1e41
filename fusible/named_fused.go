//go:build fusible_fuse_named

package fusible

import "golang.org/x/exp/constraints"

// FuseNamed reports whether MulValue and ValueMul defer their product.
const FuseNamed = true

// MulValue returns f*v for a plain value v the caller may still use.
// In this build the product is deferred like Mul.
func (f Float[T]) MulValue(v T) Product[T] {
	return Product[T]{a: f.val, b: v}
}

// ValueMul returns v*f under the same policy as MulValue.
func ValueMul[T constraints.Float](v T, f Float[T]) Product[T] {
	return Product[T]{a: v, b: f.val}
}
