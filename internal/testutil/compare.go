package testutil

import (
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

// Identical reports whether a and b are the same floating-point datum:
// equal values with equal sign bits, or both NaN.
func Identical[T constraints.Float](a, b T) bool {
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return math.IsNaN(fa) && math.IsNaN(fb)
	}
	return fa == fb && math.Signbit(fa) == math.Signbit(fb)
}

// RequireIdentical fails t if got and want are not Identical.
func RequireIdentical[T constraints.Float](t *testing.T, got, want T, what string) {
	t.Helper()
	if !Identical(got, want) {
		t.Fatalf("%s: got %v (%x), want %v (%x)", what, got, float64(got), want, float64(want))
	}
}

// ULPDistance32 returns the number of representable float32 values between
// a and b. Both must be finite.
func ULPDistance32(a, b float32) uint32 {
	ia, ib := ordered32(a), ordered32(b)
	if ia > ib {
		return uint32(ia - ib)
	}
	return uint32(ib - ia)
}

// ordered32 maps float32 bit patterns onto a monotonic integer line.
func ordered32(f float32) int64 {
	bits := int64(math.Float32bits(f))
	if bits&(1<<31) != 0 {
		return -(bits &^ (1 << 31))
	}
	return bits
}
