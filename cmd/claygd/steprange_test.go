package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepRangeSinglePoint(t *testing.T) {
	out, err := stepRange(0.01, 0.01, "+0.01")
	require.NoError(t, err)
	require.Equal(t, []float64{0.01}, out)
}

func TestStepRangeAscendingAdditive(t *testing.T) {
	out, err := stepRange(0.0, 0.03, "+0.01")
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.01, 0.02, 0.03}, out, 1e-9)
}

func TestStepRangeDescendingSubtractive(t *testing.T) {
	out, err := stepRange(0.03, 0.0, "-0.01")
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.03, 0.02, 0.01, 0}, out, 1e-9)
}

func TestStepRangeHarmonic(t *testing.T) {
	// x <- 1 / (1/x + v); starting at 1 with v=1 gives 1, 0.5, 1/3, ...
	out, err := stepRange(1, 0.4, "#1")
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0.5}, out[:2], 1e-9)
}

func TestStepRangeNoProgressIsAnError(t *testing.T) {
	_, err := stepRange(0, 1, "*1")
	require.Error(t, err)
}

func TestStepRangeUnknownOperatorIsAnError(t *testing.T) {
	_, err := stepRange(0, 1, "?1")
	require.Error(t, err)
}

func TestStepRangeTooShortIsAnError(t *testing.T) {
	_, err := stepRange(0, 1, "+")
	require.Error(t, err)
}
