package main

import (
	"fmt"
	"strconv"
)

// maxStepIterations bounds a step-range expansion so a step that keeps
// progressing without ever reaching end (e.g. "#1" from 1 toward 0) cannot
// hang the sweep; the expansion is cut off at that many values. A
// zero-progress step such as "*1" is rejected separately, with an error.
const maxStepIterations = 100000

// parseStepFn parses the §6 step-value grammar: a leading operator from
// {+, -, *, /, #} followed by a float. '#' is the harmonic step,
// x <- 1 / (1/x + v).
func parseStepFn(spec string) (func(x float64) float64, error) {
	if len(spec) < 2 {
		return nil, fmt.Errorf("step %q: too short", spec)
	}
	v, err := strconv.ParseFloat(spec[1:], 64)
	if err != nil {
		return nil, fmt.Errorf("step %q: %w", spec, err)
	}

	switch spec[0] {
	case '+':
		return func(x float64) float64 { return x + v }, nil
	case '-':
		return func(x float64) float64 { return x - v }, nil
	case '*':
		return func(x float64) float64 { return x * v }, nil
	case '/':
		return func(x float64) float64 { return x / v }, nil
	case '#':
		return func(x float64) float64 { return 1 / (1/x + v) }, nil
	default:
		return nil, fmt.Errorf("step %q: unrecognized operator %q", spec, spec[0])
	}
}

// stepRange expands [start, end] into a sequence of values advanced by the
// step spec, inclusive of both ends. If start == end it returns the single
// value regardless of step.
func stepRange(start, end float64, step string) ([]float64, error) {
	if start == end {
		return []float64{start}, nil
	}

	next, err := parseStepFn(step)
	if err != nil {
		return nil, err
	}

	ascending := end >= start
	var out []float64
	x := start
	for i := 0; i < maxStepIterations; i++ {
		out = append(out, x)
		if ascending && x >= end {
			break
		}
		if !ascending && x <= end {
			break
		}
		prev := x
		x = next(x)
		if ascending && x <= prev {
			return nil, fmt.Errorf("step %q makes no progress from %v toward %v", step, start, end)
		}
		if !ascending && x >= prev {
			return nil, fmt.Errorf("step %q makes no progress from %v toward %v", step, start, end)
		}
	}

	return out, nil
}
