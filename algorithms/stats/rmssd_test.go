package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRMSSD(t *testing.T) {
	// Successive differences: 50, -60
	v, ok := RMSSD([]float64{800, 850, 790})

	require.True(t, ok)
	assert.InDelta(t, math.Sqrt((2500.0+3600.0)/2.0), v, 1e-9)
}

func TestRMSSDIdenticalIntervals(t *testing.T) {
	v, ok := RMSSD([]float64{820, 820, 820, 820})

	require.True(t, ok)
	assert.InDelta(t, 0.0, v, 1e-12)
}

func TestRMSSDRequiresTwoIntervals(t *testing.T) {
	_, ok := RMSSD([]float64{800})
	assert.False(t, ok)

	_, ok = RMSSD(nil)
	assert.False(t, ok)
}
