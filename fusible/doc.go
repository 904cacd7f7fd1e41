// Package fusible provides a floating-point wrapper that turns
// multiply-then-add chains into fused multiply-add operations.
//
// Multiplying two wrapped values does not compute anything. It returns a
// Product holding both operands. When that Product is then added to or
// subtracted from a plain value, the pair is evaluated as one fused
// multiply-add with a single rounding step. Unwrapping a Product with Value
// performs an ordinary rounded multiply instead.
//
//	fa, fb := fusible.New(a), fusible.New(b)
//	r := fa.Mul(fb).Sub(c)           // fma(a, b, -c)
//	s := fusible.Sub(c, fa.Mul(fb))  // fma(-a, b, c)
//	fusible.AddAssign(&acc, fa.Mul(fb))
//
// # Entry points
//
// Go has no operator overloading, so every operator is a named call:
//
//   - Float.Mul(Float): always returns a Product.
//   - Float.MulValue(T), ValueMul(T, Float): multiply by a plain value the
//     caller may still read. Rounded immediately unless built with the
//     fusible_fuse_named tag.
//   - Float.MulTemp(T), TempMul(T, Float): multiply by a value nobody will
//     observe again, such as the result of a previous step. Returns a
//     Product unless built with the fusible_no_fuse_temp tag.
//   - Product.Add, Product.Sub: product on the left.
//   - Add, Sub: product on the right.
//   - AddAssign, SubAssign: compound forms on a caller-owned accumulator.
//   - Product.AddProduct, Product.SubProduct: only with the
//     fusible_product_tiebreak tag. The left product stays fused and the
//     right product is rounded first. Without the tag, combining two
//     products does not compile.
//
// Choosing MulTemp over MulValue is a caller contract: pick it only when the
// plain rounded product is not needed afterwards, since fusing changes which
// of two nearby results is produced.
//
// # Build tags
//
// The policy is fixed at build time and mirrored by the constants FuseNamed,
// FuseTemporaries and ProductTieBreak:
//
//	fusible_fuse_named        MulValue/ValueMul return a Product
//	fusible_no_fuse_temp      MulTemp/TempMul follow the MulValue policy
//	fusible_product_tiebreak  enable Product.AddProduct and Product.SubProduct
//
// # Products are temporaries
//
// A Product should be consumed in the expression that created it. Storing
// one in a variable and consuming it twice is not detected; each use simply
// recomputes from the two operands.
//
// Fused results are correctly rounded for both float32 and float64. The Go
// compiler may itself contract x*y + z on some architectures; plain
// products returned by this package are explicitly converted so that they
// stay rounded.
package fusible
