package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

const (
	defaultA     = 3
	defaultB     = 7
	defaultScale = 10
)

var (
	errNoCases  = errors.New("no cases")
	errBadScale = errors.New("scale must be positive")
)

// caseSpec is one pair of operands, a = A/Scale and b = B/Scale.
type caseSpec struct {
	A     int     `yaml:"a"`
	B     int     `yaml:"b"`
	Scale float64 `yaml:"scale"`
}

type caseFile struct {
	Cases []caseSpec `yaml:"cases"`
}

// loadCases reads a YAML case file:
//
//	cases:
//	  - {a: 3, b: 7}
//	  - {a: 1, b: 3, scale: 100}
func loadCases(path string) ([]caseSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	var f caseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoCases)
	}

	for i := range f.Cases {
		switch {
		case f.Cases[i].Scale == 0:
			f.Cases[i].Scale = defaultScale
		case f.Cases[i].Scale < 0:
			return nil, fmt.Errorf("%s: case %d: %w", path, i, errBadScale)
		}
	}
	return f.Cases, nil
}

// parseArgs reads up to two positional integers, defaulting to 3 and 7.
func parseArgs(args []string) (caseSpec, error) {
	c := caseSpec{A: defaultA, B: defaultB, Scale: defaultScale}
	if len(args) > 2 {
		return c, fmt.Errorf("expected at most 2 operands, got %d", len(args))
	}

	dst := []*int{&c.A, &c.B}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return c, fmt.Errorf("operand %d: %w", i+1, err)
		}
		*dst[i] = v
	}
	return c, nil
}

// operands converts the case to T, dividing in T like the scalar code under
// test would.
func operands[T constraints.Float](c caseSpec) (a, b T) {
	scale := T(c.Scale)
	return T(c.A) / scale, T(c.B) / scale
}
