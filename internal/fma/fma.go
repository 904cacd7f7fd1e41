// Package fma provides correctly rounded fused multiply-add kernels for
// float32 and float64 operands.
//
// math.FMA only exists for float64. Narrowing its result to float32 rounds
// twice and can land on the wrong neighbour when the float64 result sits
// exactly between two float32 values. The float32 path here rounds the wide
// sum to odd first, which makes the final narrowing exact-once.
package fma

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// MulAdd returns a*b + c computed with a single rounding to T.
func MulAdd[T constraints.Float](a, b, c T) T {
	if unsafe.Sizeof(a) == 4 {
		return T(mulAdd32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// MulSub returns a*b - c with a single rounding.
func MulSub[T constraints.Float](a, b, c T) T {
	return MulAdd(a, b, -c)
}

// NegMulAdd returns c - a*b with a single rounding.
// The negation is applied to a so the sign of an exact zero result follows
// IEEE 754 fusedMultiplyAdd(-a, b, c).
func NegMulAdd[T constraints.Float](a, b, c T) T {
	return MulAdd(-a, b, c)
}

// Mul returns the ordinary rounded product a*b.
// The explicit conversion keeps the compiler from contracting the product
// into a later addition.
func Mul[T constraints.Float](a, b T) T {
	return T(a * b)
}

// mulAdd32 computes a correctly rounded float32 fused multiply-add.
func mulAdd32(a, b, c float32) float32 {
	// 24x24 significant bits fit into float64's 53: p is exact.
	p := float64(a) * float64(b)
	z := float64(c)
	s := p + z
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}

	// TwoSum: e is the exact remainder p + z - s.
	bv := s - p
	av := s - bv
	e := (p - av) + (z - bv)

	if e != 0 {
		bits := math.Float64bits(s)
		if bits&1 == 0 {
			if (e > 0) == (s > 0) {
				bits++
			} else {
				bits--
			}
			s = math.Float64frombits(bits)
		}
	}
	return float32(s)
}
