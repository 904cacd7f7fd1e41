// Package poly evaluates polynomials with one fused multiply-add per Horner
// step, built on the fusible wrapper.
//
// Coefficients are in ascending order: coeffs[i] multiplies x^i.
package poly

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fusible/fusible"
	"github.com/cwbudde/algo-fusible/internal/fma"
)

// ErrNoCoefficients is returned when a polynomial has no coefficients.
var ErrNoCoefficients = errors.New("poly: no coefficients")

// Poly3 returns a + x*(b + x*c) using two fused steps.
//
// Both inner operands are intermediate values, so they are wrapped and
// multiplied with Mul, which defers under every build policy.
func Poly3[T constraints.Float](x, a, b, c T) T {
	xf := fusible.New(x)
	inner := fusible.Add(b, xf.Mul(fusible.New(c)))
	return fusible.Add(a, xf.Mul(fusible.New(inner)))
}

// Horner evaluates coeffs[0] + x*(coeffs[1] + x*(... + x*coeffs[n-1]))
// with one fused multiply-add per step.
func Horner[T constraints.Float](x T, coeffs ...T) (T, error) {
	if len(coeffs) == 0 {
		return 0, ErrNoCoefficients
	}

	xf := fusible.New(x)
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = xf.Mul(fusible.New(acc)).Add(coeffs[i])
	}
	return acc, nil
}

// HornerUnfused is Horner with a rounded multiply and a rounded add per
// step. It is the reference the fused form is compared against.
func HornerUnfused[T constraints.Float](x T, coeffs ...T) (T, error) {
	if len(coeffs) == 0 {
		return 0, ErrNoCoefficients
	}

	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = fma.Mul(x, acc) + coeffs[i]
	}
	return acc, nil
}

// Derivative returns p(x) and p'(x) in one pass. Both recurrences use fused
// steps: d = d*x + p, p = p*x + c.
func Derivative[T constraints.Float](x T, coeffs ...T) (p, dp T, err error) {
	if len(coeffs) == 0 {
		return 0, 0, ErrNoCoefficients
	}

	xf := fusible.New(x)
	p = coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		dp = xf.Mul(fusible.New(dp)).Add(p)
		p = xf.Mul(fusible.New(p)).Add(coeffs[i])
	}
	return p, dp, nil
}
