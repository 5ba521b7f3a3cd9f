package remote

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pulseSignal(seconds float64) []float64 {
	n := int(14 * seconds)
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 1.2 * float64(i) / 14.0)
	}
	return signal
}

func TestLocalStrategy(t *testing.T) {
	s := NewLocalStrategy(nil)

	result := s.AnalyzeSignal(context.Background(), pulseSignal(10))
	require.True(t, result.Success, "error: %s", result.Error)
	require.NotNil(t, result.HeartRate)
	assert.InDelta(t, 72.0, *result.HeartRate, 5.0)
}

func TestRemoteStrategyNilReconcilerIsLocal(t *testing.T) {
	signal := pulseSignal(10)

	local := NewLocalStrategy(nil).AnalyzeSignal(context.Background(), signal)
	remote := NewRemoteStrategy(nil, nil, "user-1").AnalyzeSignal(context.Background(), signal)

	assert.Equal(t, local, remote)
}

func TestRemoteStrategyBuildsRequest(t *testing.T) {
	var captured Request
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		captured = req
		return &Response{
			Success:       true,
			HeartRate:     floatPtr(71),
			SignalQuality: 0.9,
			Confidence:    floatPtr(0.9),
		}, nil
	})

	signal := pulseSignal(10)
	s := NewRemoteStrategy(nil, NewReconciler(analyzer, nil), "user-7")
	result := s.AnalyzeSignal(context.Background(), signal)

	assert.Equal(t, signal, captured.Signal)
	assert.Equal(t, 14.0, captured.SampleRate)
	assert.InDelta(t, float64(len(signal))/14.0, captured.DurationSeconds, 1e-9)
	assert.Equal(t, "user-7", captured.UserID)

	require.NotNil(t, result.HeartRate)
	assert.Equal(t, 71.0, *result.HeartRate)
}

func TestRemoteStrategyFallsBackOnRemoteError(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return nil, ErrUnauthorized
	})

	signal := pulseSignal(10)
	local := NewLocalStrategy(nil).AnalyzeSignal(context.Background(), signal)

	s := NewRemoteStrategy(nil, NewReconciler(analyzer, nil), "user-7")
	result := s.AnalyzeSignal(context.Background(), signal)

	assert.Equal(t, local, result)
}
