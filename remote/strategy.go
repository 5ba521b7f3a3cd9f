package remote

import (
	"context"

	"github.com/pulseward/ppg-core/ppg"
)

// Strategy produces physiological estimates for a captured signal. Two
// implementations exist: local-only processing and local processing overlaid
// with remote reconciliation, so the numerical core ships and tests without
// any network stack.
type Strategy interface {
	AnalyzeSignal(ctx context.Context, signal []float64) ppg.Result
}

// LocalStrategy runs the local pipeline only.
type LocalStrategy struct {
	processor *ppg.Processor
}

// NewLocalStrategy creates a local-only strategy.
func NewLocalStrategy(processor *ppg.Processor) *LocalStrategy {
	if processor == nil {
		processor = ppg.NewProcessor(nil)
	}
	return &LocalStrategy{processor: processor}
}

// AnalyzeSignal implements Strategy.
func (s *LocalStrategy) AnalyzeSignal(ctx context.Context, signal []float64) ppg.Result {
	return s.processor.Process(signal)
}

// RemoteStrategy runs the local pipeline, then reconciles with the remote
// analyzer's estimate.
type RemoteStrategy struct {
	processor  *ppg.Processor
	reconciler *Reconciler
	userID     string
}

// NewRemoteStrategy creates a strategy that overlays remote reconciliation
// on the local pipeline.
func NewRemoteStrategy(processor *ppg.Processor, reconciler *Reconciler, userID string) *RemoteStrategy {
	if processor == nil {
		processor = ppg.NewProcessor(nil)
	}
	return &RemoteStrategy{
		processor:  processor,
		reconciler: reconciler,
		userID:     userID,
	}
}

// AnalyzeSignal implements Strategy. The local pipeline always runs first so
// a remote failure can fall back to a fully computed local result.
func (s *RemoteStrategy) AnalyzeSignal(ctx context.Context, signal []float64) ppg.Result {
	local := s.processor.Process(signal)

	if s.reconciler == nil {
		return local
	}

	config := s.processor.Config()
	req := Request{
		Signal:          signal,
		SampleRate:      config.SampleRate,
		DurationSeconds: float64(len(signal)) / config.SampleRate,
		UserID:          s.userID,
	}

	return s.reconciler.Reconcile(ctx, local, req)
}
