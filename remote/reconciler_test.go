package remote

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseward/ppg-core/logging"
	"github.com/pulseward/ppg-core/ppg"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
	os.Exit(m.Run())
}

func floatPtr(v float64) *float64 { return &v }

func localResult() ppg.Result {
	hr := 68.0
	return ppg.Result{
		Success:       true,
		HeartRate:     &hr,
		SignalQuality: 0.8,
		Confidence:    0.96,
	}
}

func TestReconcileNilAnalyzer(t *testing.T) {
	r := NewReconciler(nil, nil)

	local := localResult()
	result := r.Reconcile(context.Background(), local, Request{})
	assert.Equal(t, local, result)
}

func TestReconcileRemoteSuccessWins(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{
			Success:              true,
			HeartRate:            floatPtr(74),
			HeartRateVariability: floatPtr(42),
			RespiratoryRate:      floatPtr(16),
			SignalQuality:        0.9,
			Confidence:           floatPtr(0.95),
		}, nil
	})

	r := NewReconciler(analyzer, nil)
	result := r.Reconcile(context.Background(), localResult(), Request{})

	require.True(t, result.Success)
	require.NotNil(t, result.HeartRate)
	assert.Equal(t, 74.0, *result.HeartRate)
	require.NotNil(t, result.HeartRateVariability)
	assert.Equal(t, 42.0, *result.HeartRateVariability)
	assert.Equal(t, 0.9, result.SignalQuality)
	assert.False(t, result.IsEstimate)
}

func TestReconcileLowConfidenceFlagsEstimate(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{
			Success:       true,
			HeartRate:     floatPtr(74),
			SignalQuality: 0.6,
			Confidence:    floatPtr(0.5),
		}, nil
	})

	r := NewReconciler(analyzer, nil)
	result := r.Reconcile(context.Background(), localResult(), Request{})

	assert.True(t, result.Success)
	assert.True(t, result.IsEstimate)
}

func TestReconcileMissingConfidenceFlagsEstimate(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{
			Success:       true,
			HeartRate:     floatPtr(74),
			SignalQuality: 0.6,
		}, nil
	})

	r := NewReconciler(analyzer, nil)
	result := r.Reconcile(context.Background(), localResult(), Request{})

	assert.True(t, result.Success)
	assert.True(t, result.IsEstimate)
}

func TestReconcileFailedRemoteWithNumberPreferred(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{
			Success:       false,
			HeartRate:     floatPtr(130),
			SignalQuality: 0.3,
			Warnings:      []string{"poor perfusion"},
		}, nil
	})

	r := NewReconciler(analyzer, nil)
	result := r.Reconcile(context.Background(), localResult(), Request{})

	assert.False(t, result.Success)
	assert.True(t, result.IsEstimate)
	require.NotNil(t, result.HeartRate)
	assert.Equal(t, 130.0, *result.HeartRate)
	assert.Equal(t, "poor perfusion", result.Error)
}

func TestReconcileFailedRemoteNoNumberFallsBack(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{
			Success: false,
			Error:   "model not loaded",
		}, nil
	})

	r := NewReconciler(analyzer, nil)
	local := localResult()
	result := r.Reconcile(context.Background(), local, Request{})
	assert.Equal(t, local, result)
}

func TestReconcileErrorFallsBack(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return nil, errors.New("connection refused")
	})

	r := NewReconciler(analyzer, nil)
	local := localResult()
	result := r.Reconcile(context.Background(), local, Request{})
	assert.Equal(t, local, result)
}

func TestReconcileUnauthorizedFallsBack(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return nil, ErrUnauthorized
	})

	r := NewReconciler(analyzer, nil)
	local := localResult()
	result := r.Reconcile(context.Background(), local, Request{})
	assert.Equal(t, local, result)
}

func TestReconcileTimeoutFallsBack(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	r := NewReconciler(analyzer, &ReconcilerConfig{
		Timeout:           10 * time.Millisecond,
		EstimateThreshold: 0.7,
	})

	local := localResult()
	start := time.Now()
	result := r.Reconcile(context.Background(), local, Request{})

	assert.Equal(t, local, result)
	assert.Less(t, time.Since(start), time.Second)
}

func TestReconcileSuccessWithoutHeartRateFallsBack(t *testing.T) {
	analyzer := AnalyzerFunc(func(ctx context.Context, req Request) (*Response, error) {
		return &Response{
			Success:       true,
			SignalQuality: 0.9,
			Confidence:    floatPtr(0.9),
		}, nil
	})

	r := NewReconciler(analyzer, nil)
	local := localResult()
	result := r.Reconcile(context.Background(), local, Request{})
	assert.Equal(t, local, result)
}
