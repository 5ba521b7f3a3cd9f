// Package fusion combines a device-biometric match score with a pulse-derived
// match score into a single authentication confidence, weighting the pulse
// contribution by its measured signal quality.
package fusion

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Base channel weights. The fingerprint channel is assumed reliable whenever
// it reports a match; the pulse channel earns its weight through quality.
const (
	FingerprintWeight = 0.6
	PPGWeight         = 0.4
)

// DefaultTolerance is the heart-rate comparison tolerance in beats/min.
const DefaultTolerance = 10.0

// FuseScores combines a fingerprint match score with a pulse match score,
// both in [0,1]. The effective pulse weight is PPGWeight scaled by the pulse
// signal quality; the weight removed from the pulse channel shifts to the
// fingerprint channel, so a noisy pulse reading loses influence continuously
// instead of through a hard cutoff. The result is clamped to [0,1].
func FuseScores(fingerprintScore, ppgScore, ppgQuality float64) float64 {
	quality := clamp01(ppgQuality)

	effectivePPGWeight := PPGWeight * quality
	fingerprintWeight := FingerprintWeight + (PPGWeight - effectivePPGWeight)

	// stat.Mean normalizes the weights to sum to 1
	fused := stat.Mean(
		[]float64{fingerprintScore, ppgScore},
		[]float64{fingerprintWeight, effectivePPGWeight},
	)

	return clamp01(fused)
}

// CompareHeartRate turns a pair of heart-rate readings into a match score in
// [0,1]: 1.0 when the absolute difference is within tolerance, decaying
// linearly to 0 as the difference grows from tolerance to twice the
// tolerance. Pass tolerance <= 0 to use DefaultTolerance.
func CompareHeartRate(current, enrolled, tolerance float64) float64 {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	diff := math.Abs(current - enrolled)
	if diff <= tolerance {
		return 1.0
	}
	if diff >= 2*tolerance {
		return 0.0
	}

	return 1.0 - (diff-tolerance)/tolerance
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
