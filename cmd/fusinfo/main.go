// Command fusinfo shows what the fusible wrapper does to a*b - c style
// expressions compared with plain floating-point arithmetic.
//
// Usage:
//
//	fusinfo [flags] [a [b]]
//
// a and b are integers scaled by 1/10 (defaults 3 and 7), and c is the
// rounded product a*b. Fused rows therefore print the rounding error of c.
//
// Examples:
//
//	fusinfo
//	fusinfo 1 9
//	fusinfo -prec 64 3 7
//	fusinfo -cases cases.yaml
//	fusinfo -sweep
//	fusinfo -policy
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-fusible/fusible"
	"github.com/cwbudde/algo-fusible/internal/cpu"
)

func main() {
	prec := flag.Int("prec", 32, "floating-point precision in bits (32 or 64)")
	casesPath := flag.String("cases", "", "YAML file listing a/b cases")
	sweep := flag.Bool("sweep", false, "sweep a and b over 1..9 and list inexact products")
	policyOnly := flag.Bool("policy", false, "print the compiled fusion policy and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fusinfo [flags] [a [b]]\n\n")
		fmt.Fprintf(os.Stderr, "Compares fused and unfused evaluation of a*b - c with a = A/10, b = B/10.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fusinfo 1 9\n")
		fmt.Fprintf(os.Stderr, "  fusinfo -prec 64 -sweep\n")
		fmt.Fprintf(os.Stderr, "  fusinfo -cases cases.yaml\n")
	}
	flag.Parse()

	if *prec != 32 && *prec != 64 {
		fmt.Fprintf(os.Stderr, "error: -prec must be 32 or 64, got %d\n", *prec)
		os.Exit(2)
	}

	if err := printPolicy(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *policyOnly {
		return
	}

	var err error
	if *sweep {
		err = runSweep(os.Stdout, *prec)
	} else {
		err = runCases(os.Stdout, *casesPath, flag.Args(), *prec)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printPolicy(w io.Writer) error {
	p := fusible.CurrentPolicy()
	f := cpu.DetectFeatures()

	tags := strings.Join(p.Tags(), ",")
	if tags == "" {
		tags = "(none)"
	}
	_, err := fmt.Fprintf(w, "policy: %v\ntags:   %s\nfma:    %s (%s)\n\n", p, tags, f.Path(), f.Architecture)
	return err
}

func runCases(w io.Writer, casesPath string, args []string, prec int) error {
	var cases []caseSpec
	if casesPath != "" {
		if len(args) > 0 {
			fmt.Fprintf(os.Stderr, "warning: positional operands ignored with -cases\n")
		}
		loaded, err := loadCases(casesPath)
		if err != nil {
			return err
		}
		cases = loaded
	} else {
		c, err := parseArgs(args)
		if err != nil {
			return err
		}
		cases = []caseSpec{c}
	}

	for _, c := range cases {
		var blocks []block
		if prec == 64 {
			a, b := operands[float64](c)
			blocks = evaluate(a, b)
		} else {
			a, b := operands[float32](c)
			blocks = evaluate(a, b)
		}
		if err := printBlocks(w, c, blocks); err != nil {
			return err
		}
	}
	return nil
}
