package fma

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fusible/internal/testutil"
)

var (
	sink32 float32
	sink64 float64
)

func BenchmarkMulAdd32(b *testing.B) {
	triples := testutil.DeterministicTriples32(3, 1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := triples[i&1023]
		sink32 = MulAdd(tr.A, tr.B, tr.C)
	}
}

func BenchmarkMulAdd32Naive(b *testing.B) {
	triples := testutil.DeterministicTriples32(3, 1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := triples[i&1023]
		sink32 = float32(math.FMA(float64(tr.A), float64(tr.B), float64(tr.C)))
	}
}

func BenchmarkMulAdd64(b *testing.B) {
	triples := testutil.DeterministicTriples64(3, 1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr := triples[i&1023]
		sink64 = MulAdd(tr.A, tr.B, tr.C)
	}
}
