//go:build fusible_no_fuse_temp && !fusible_fuse_named

package fusible

import "golang.org/x/exp/constraints"

// FuseTemporaries reports whether MulTemp and TempMul defer their product
// independently of FuseNamed.
const FuseTemporaries = false

// MulTemp follows the MulValue policy in this build and rounds immediately.
func (f Float[T]) MulTemp(v T) T {
	return f.MulValue(v)
}

// TempMul follows the ValueMul policy in this build and rounds immediately.
func TempMul[T constraints.Float](v T, f Float[T]) T {
	return ValueMul(v, f)
}
