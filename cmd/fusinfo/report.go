package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fusible/fusible"
	"github.com/cwbudde/algo-fusible/internal/fma"
)

type row struct {
	expr  string
	value float64
	fused bool
}

type block struct {
	title string
	rows  []row
}

// productSubber is satisfied by fusible.Product only in builds with the
// fusible_product_tiebreak tag.
type productSubber[T constraints.Float] interface {
	SubProduct(q fusible.Product[T]) T
}

// evaluate runs the a*b - c expressions for one operand pair. The
// expression column uses the operator spelling: fa and fb are wrapped, a, b
// and c are plain, +x marks a temporary.
func evaluate[T constraints.Float](a, b T) []block {
	c := fma.Mul(a, b)
	fa, fb := fusible.New(a), fusible.New(b)

	test1 := block{title: "test1", rows: []row{
		{"a*b - c", float64(fma.Mul(a, b) - c), false},
		{"fa*fb - c", float64(fa.Mul(fb).Sub(c)), true},
		subRow("fa*b - c", fa.MulValue(b), c),
		subRow("fa*+b - c", fa.MulTemp(b), c),
		subRow("a*fb - c", fusible.ValueMul(a, fb), c),
		subRow("+a*fb - c", fusible.TempMul(a, fb), c),
	}}

	test2 := block{title: "test2", rows: []row{
		{"a*b - fa*fb", float64(fusible.Sub(fma.Mul(a, b), fa.Mul(fb))), true},
		{"fa*fb - a*b", float64(fa.Mul(fb).Sub(fma.Mul(a, b))), true},
	}}
	if s, ok := any(fa.Mul(fb)).(productSubber[T]); ok {
		test2.rows = append(test2.rows, row{"fa*fb - fa*fb", float64(s.SubProduct(fa.Mul(fb))), true})
	}
	test2.rows = append(test2.rows,
		row{"+(fa*fb) - fa*fb", float64(fusible.Sub(fa.Mul(fb).Value(), fa.Mul(fb))), true},
		row{"0 + fa*fb - fa*fb", float64(fusible.Sub(fusible.Add(0, fa.Mul(fb)), fa.Mul(fb))), true},
	)

	return []block{test1, test2}
}

// subRow subtracts c from the result of a policy-dependent multiply, which
// is either a plain T or a fusible.Product[T] depending on build tags.
func subRow[T constraints.Float](expr string, r any, c T) row {
	switch v := r.(type) {
	case fusible.Product[T]:
		return row{expr, float64(v.Sub(c)), true}
	case T:
		return row{expr, float64(v - c), false}
	default:
		panic(fmt.Sprintf("fusinfo: unexpected multiply result %T", r))
	}
}

func printBlocks(w io.Writer, c caseSpec, blocks []block) error {
	if _, err := fmt.Fprintf(w, "a=%d/%g b=%d/%g c=a*b\n", c.A, c.Scale, c.B, c.Scale); err != nil {
		return fmt.Errorf("write case header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, blk := range blocks {
		if _, err := fmt.Fprintf(tw, "%s\tvalue\tfused\n", blk.title); err != nil {
			return fmt.Errorf("write block header: %w", err)
		}
		for _, r := range blk.rows {
			if _, err := fmt.Fprintf(tw, "  %s\t%e\t%s\n", r.expr, r.value, yesNo(r.fused)); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	_, err := fmt.Fprintln(w)
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
