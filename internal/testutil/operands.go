package testutil

import (
	"math"

	"golang.org/x/exp/rand"
)

// Triple32 is one a*b + c operand set.
type Triple32 struct {
	A, B, C float32
}

// Triple64 is one a*b + c operand set.
type Triple64 struct {
	A, B, C float64
}

// DeterministicTriples32 generates n finite operand triples with a fixed seed.
// Every other triple has c close to -a*b, the region where a fused and an
// unfused evaluation disagree most often.
func DeterministicTriples32(seed uint64, n int) []Triple32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Triple32, n)
	for i := range out {
		a := float32(randomNormal(rng, 20))
		b := float32(randomNormal(rng, 20))
		var c float32
		if i%2 == 0 {
			c = -(a * b)
		} else {
			c = float32(randomNormal(rng, 40))
		}
		out[i] = Triple32{A: a, B: b, C: c}
	}
	return out
}

// DeterministicTriples64 is the float64 counterpart of DeterministicTriples32.
func DeterministicTriples64(seed uint64, n int) []Triple64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Triple64, n)
	for i := range out {
		a := randomNormal(rng, 200)
		b := randomNormal(rng, 200)
		var c float64
		if i%2 == 0 {
			c = -(a * b)
		} else {
			c = randomNormal(rng, 400)
		}
		out[i] = Triple64{A: a, B: b, C: c}
	}
	return out
}

// randomNormal returns a signed value with a uniform significand in [1, 2)
// and a binary exponent in [-span, span].
func randomNormal(rng *rand.Rand, span int) float64 {
	v := math.Ldexp(1+rng.Float64(), rng.Intn(2*span+1)-span)
	if rng.Intn(2) == 0 {
		return -v
	}
	return v
}
