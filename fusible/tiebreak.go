//go:build fusible_product_tiebreak

package fusible

import "github.com/cwbudde/algo-fusible/internal/fma"

// ProductTieBreak reports whether two products can be added or subtracted.
const ProductTieBreak = true

// AddProduct returns p + q. q is rounded to a plain value first and p is
// fused with it.
func (p Product[T]) AddProduct(q Product[T]) T {
	return fma.MulAdd(p.a, p.b, q.Value())
}

// SubProduct returns p - q. q is rounded to a plain value first and p is
// fused with it.
func (p Product[T]) SubProduct(q Product[T]) T {
	return fma.MulSub(p.a, p.b, q.Value())
}
