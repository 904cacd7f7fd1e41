package poly

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-fusible/internal/testutil"
	"golang.org/x/exp/rand"
)

func TestHornerEmpty(t *testing.T) {
	if _, err := Horner[float64](1); !errors.Is(err, ErrNoCoefficients) {
		t.Fatalf("Horner() err = %v, want ErrNoCoefficients", err)
	}
	if _, err := HornerUnfused[float32](1); !errors.Is(err, ErrNoCoefficients) {
		t.Fatalf("HornerUnfused() err = %v, want ErrNoCoefficients", err)
	}
	if _, _, err := Derivative[float32](1); !errors.Is(err, ErrNoCoefficients) {
		t.Fatalf("Derivative() err = %v, want ErrNoCoefficients", err)
	}
}

func TestHornerExactIntegers(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		coeffs []float64
		want   float64
	}{
		{"constant", 5, []float64{7}, 7},
		{"linear", 2, []float64{1, 3}, 7},
		{"quadratic", 3, []float64{1, 2, 3}, 34},
		{"cubic negative x", -2, []float64{1, 0, 0, 1}, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Horner(tt.x, tt.coeffs...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Horner = %v, want %v", got, tt.want)
			}
			unfused, err := HornerUnfused(tt.x, tt.coeffs...)
			if err != nil {
				t.Fatal(err)
			}
			if unfused != tt.want {
				t.Fatalf("HornerUnfused = %v, want %v", unfused, tt.want)
			}
		})
	}
}

// Each Horner step must be exactly one correctly rounded fma.
func TestHornerMatchesFusedSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for n := 0; n < 500; n++ {
		x := float32(rng.Float64()*4 - 2)
		coeffs := make([]float32, 1+rng.Intn(8))
		for i := range coeffs {
			coeffs[i] = float32(rng.Float64()*2 - 1)
		}

		want := coeffs[len(coeffs)-1]
		for i := len(coeffs) - 2; i >= 0; i-- {
			want = testutil.ExactMulAdd32(x, want, coeffs[i])
		}

		got, err := Horner(x, coeffs...)
		if err != nil {
			t.Fatal(err)
		}
		if !testutil.Identical(got, want) {
			t.Fatalf("case %d: Horner(%v, %v) = %v, want %v", n, x, coeffs, got, want)
		}
	}
}

func TestPoly3MatchesHorner(t *testing.T) {
	for i, tr := range testutil.DeterministicTriples32(13, 1000) {
		x := tr.C
		got := Poly3(x, tr.A, tr.B, tr.C)
		want, err := Horner(x, tr.A, tr.B, tr.C)
		if err != nil {
			t.Fatal(err)
		}
		if !testutil.Identical(got, want) {
			t.Fatalf("triple %d: Poly3 = %v, Horner = %v", i, got, want)
		}
	}
}

func TestFusedDiffersFromUnfused(t *testing.T) {
	differ := 0
	for _, tr := range testutil.DeterministicTriples32(14, 1000) {
		x := float32(0.1)
		fused, _ := Horner(x, tr.A, tr.B, tr.C)
		unfused, _ := HornerUnfused(x, tr.A, tr.B, tr.C)
		if fused != unfused {
			differ++
		}
	}
	if differ == 0 {
		t.Fatal("fused and unfused Horner never differed")
	}
}

func TestDerivative(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2 + 4x^3, p'(x) = 2 + 6x + 12x^2
	coeffs := []float64{1, 2, 3, 4}

	for _, x := range []float64{-2, -1, 0, 0.5, 1, 3} {
		p, dp, err := Derivative(x, coeffs...)
		if err != nil {
			t.Fatal(err)
		}
		wantP := 1 + 2*x + 3*x*x + 4*x*x*x
		wantDP := 2 + 6*x + 12*x*x
		if p != wantP || dp != wantDP {
			t.Errorf("Derivative(%v) = (%v, %v), want (%v, %v)", x, p, dp, wantP, wantDP)
		}
	}

	p, dp, err := Derivative(2.0, 5.0)
	if err != nil || p != 5 || dp != 0 {
		t.Fatalf("constant: got (%v, %v, %v), want (5, 0, nil)", p, dp, err)
	}
}
