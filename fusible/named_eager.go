//go:build !fusible_fuse_named

package fusible

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fusible/internal/fma"
)

// FuseNamed reports whether MulValue and ValueMul defer their product.
const FuseNamed = false

// MulValue returns f*v for a plain value v the caller may still use.
// In this build the product is rounded immediately.
func (f Float[T]) MulValue(v T) T {
	return fma.Mul(f.val, v)
}

// ValueMul returns v*f under the same policy as MulValue.
func ValueMul[T constraints.Float](v T, f Float[T]) T {
	return fma.Mul(v, f.val)
}
