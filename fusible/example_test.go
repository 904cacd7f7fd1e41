package fusible_test

import (
	"fmt"

	"github.com/cwbudde/algo-fusible/fusible"
)

func Example() {
	a, b := float32(0.3), float32(0.7)
	c := a * b

	fa, fb := fusible.New(a), fusible.New(b)

	fmt.Printf("%e\n", float32(a*b)-c)
	fmt.Printf("%e\n", fa.Mul(fb).Sub(c))
	// Output:
	// 0.000000e+00
	// -3.576279e-09
}

func ExampleAddAssign() {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}

	var dot float64
	for i := range x {
		fusible.AddAssign(&dot, fusible.New(x[i]).Mul(fusible.New(y[i])))
	}
	fmt.Println(dot)
	// Output: 32
}

func ExampleSub() {
	a, b := 0.1, 0.3
	p := fusible.New(a).Mul(fusible.New(b))

	// 1 - a*b with a single rounding.
	fmt.Println(fusible.Sub(1.0, p))
	// Output: 0.97
}
