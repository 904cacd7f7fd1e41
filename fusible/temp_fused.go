//go:build !fusible_no_fuse_temp

package fusible

import "golang.org/x/exp/constraints"

// FuseTemporaries reports whether MulTemp and TempMul defer their product
// independently of FuseNamed.
const FuseTemporaries = true

// MulTemp returns the deferred product f*v. Use it when v is an intermediate
// result that nothing else reads.
func (f Float[T]) MulTemp(v T) Product[T] {
	return Product[T]{a: f.val, b: v}
}

// TempMul returns the deferred product v*f.
func TempMul[T constraints.Float](v T, f Float[T]) Product[T] {
	return Product[T]{a: v, b: f.val}
}
