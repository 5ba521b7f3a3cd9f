package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominantPeriodOfSine(t *testing.T) {
	// Period of exactly 10 samples
	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 10.0)
	}

	p := NewPeriodicity(5, 15)
	lag, ok := p.DominantPeriod(signal)

	require.True(t, ok)
	assert.Equal(t, 10, lag)
}

func TestDominantPeriodDegenerateRange(t *testing.T) {
	signal := make([]float64, 20)
	for i := range signal {
		signal[i] = float64(i % 3)
	}

	// All lags exceed the signal length
	p := NewPeriodicity(50, 60)
	_, ok := p.DominantPeriod(signal)
	assert.False(t, ok)

	// Inverted range
	p = NewPeriodicity(10, 5)
	_, ok = p.DominantPeriod(signal)
	assert.False(t, ok)
}

func TestDominantPeriodEmptySignal(t *testing.T) {
	p := NewPeriodicity(1, 10)
	_, ok := p.DominantPeriod(nil)
	assert.False(t, ok)
}
