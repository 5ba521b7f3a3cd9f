package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSmoothedConstant(t *testing.T) {
	e := NewEnvelope()

	signal := make([]float64, 30)
	for i := range signal {
		signal[i] = 0.5
	}

	out := e.ComputeSmoothed(signal, 10)
	require.Len(t, out, 30)
	for _, v := range out {
		assert.InDelta(t, 0.5, v, 1e-12)
	}
}

func TestComputeSmoothedReducesVariation(t *testing.T) {
	e := NewEnvelope()

	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = math.Sin(float64(i) * 2.0)
	}

	out := e.ComputeSmoothed(signal, 20)

	var inputRange, outputRange float64
	for _, v := range signal {
		inputRange = math.Max(inputRange, math.Abs(v))
	}
	for _, v := range out {
		outputRange = math.Max(outputRange, math.Abs(v))
	}

	assert.Less(t, outputRange, inputRange)
}

func TestComputeSmoothedWindowLargerThanSignal(t *testing.T) {
	e := NewEnvelope()

	out := e.ComputeSmoothed([]float64{1, 2, 3}, 100)
	assert.Len(t, out, 3)
}

func TestComputeSmoothedEmpty(t *testing.T) {
	e := NewEnvelope()
	assert.Empty(t, e.ComputeSmoothed(nil, 5))
}
