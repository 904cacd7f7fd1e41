package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	vecmath "github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fusible/fusible"
	"github.com/cwbudde/algo-fusible/internal/fma"
)

const sweepMax = 9

type sweepResult struct {
	a, b     int
	residual float64
}

// runSweep evaluates fa*fb - c for every a, b in 1..9 (scaled by 1/10)
// and lists the pairs whose rounded product c is inexact.
func runSweep(w io.Writer, prec int) error {
	var results []sweepResult
	if prec == 64 {
		results = sweep(vecmath.MulBlock)
	} else {
		results = sweep(mulBlock[float32])
	}
	return printSweep(w, results)
}

// sweep computes all rounded products in one block multiply, then the fused
// residual of each against its own rounded product.
func sweep[T constraints.Float](mul func(dst, a, b []T)) []sweepResult {
	n := sweepMax * sweepMax
	as := make([]T, n)
	bs := make([]T, n)
	cs := make([]T, n)
	for i := range n {
		as[i] = T(i/sweepMax+1) / defaultScale
		bs[i] = T(i%sweepMax+1) / defaultScale
	}

	mul(cs, as, bs)

	results := make([]sweepResult, 0, n)
	for i := range n {
		r := fusible.New(as[i]).Mul(fusible.New(bs[i])).Sub(cs[i])
		results = append(results, sweepResult{
			a:        i/sweepMax + 1,
			b:        i%sweepMax + 1,
			residual: float64(r),
		})
	}
	return results
}

// mulBlock is the generic stand-in for vecmath.MulBlock, which is float64 only.
func mulBlock[T constraints.Float](dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("fusinfo: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fma.Mul(a[i], b[i])
	}
}

func printSweep(w io.Writer, results []sweepResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "a\tb\tfa*fb - c\n"); err != nil {
		return fmt.Errorf("write sweep header: %w", err)
	}

	inexact := 0
	for _, r := range results {
		if r.residual == 0 {
			continue
		}
		inexact++
		if _, err := fmt.Fprintf(tw, "%d/10\t%d/10\t%e\n", r.a, r.b, r.residual); err != nil {
			return fmt.Errorf("write sweep row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	_, err := fmt.Fprintf(w, "%d of %d products are inexact\n", inexact, len(results))
	return err
}
