//go:build !fusible_product_tiebreak

package fusible

// ProductTieBreak reports whether two products can be added or subtracted.
// Without the fusible_product_tiebreak tag Product has no AddProduct or
// SubProduct method, so p + q has to be spelled out by the caller.
const ProductTieBreak = false
