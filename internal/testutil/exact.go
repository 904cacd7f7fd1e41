package testutil

import "math/big"

// exactPrec is wide enough to hold a*b + c exactly for any finite float64
// operands (exponent span of the product and addend plus both significands).
const exactPrec = 4400

// ExactMulAdd32 returns a*b + c rounded once to the nearest float32,
// computed with math/big. Operands must be finite.
func ExactMulAdd32(a, b, c float32) float32 {
	f, _ := exactMulAdd(float64(a), float64(b), float64(c)).Float32()
	return f
}

// ExactMulAdd64 returns a*b + c rounded once to the nearest float64,
// computed with math/big. Operands must be finite.
func ExactMulAdd64(a, b, c float64) float64 {
	f, _ := exactMulAdd(a, b, c).Float64()
	return f
}

func exactMulAdd(a, b, c float64) *big.Float {
	x := new(big.Float).SetPrec(exactPrec).SetFloat64(a)
	y := new(big.Float).SetPrec(exactPrec).SetFloat64(b)
	z := new(big.Float).SetPrec(exactPrec).SetFloat64(c)

	x.Mul(x, y)
	return x.Add(x, z)
}
