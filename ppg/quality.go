package ppg

import (
	"math"

	"github.com/pulseward/ppg-core/algorithms/stats"
)

// QualityScorer scores how usable a filtered pulse signal is on [0,1] from
// its distribution shape.
//
// References:
//   - Elgendi, M. (2016). "Optimal Signal Quality Index for
//     Photoplethysmogram Signals", Bioengineering 3(4)
//
// A clean pulse waveform has modest skewness; pressure artifacts and motion
// push the distribution strongly asymmetric, so quality decays linearly once
// absolute skewness exceeds a clean-signal knee. A near-flat signal (finger
// not covering the sensor) is penalized separately through its standard
// deviation.
type QualityScorer struct {
	// SkewKnee is the absolute skewness percentage up to which quality is 1.0
	SkewKnee float64 `json:"skew_knee"`

	// SkewZero is the absolute skewness percentage at which quality reaches 0
	SkewZero float64 `json:"skew_zero"`

	// FlatStdDev is the standard deviation below which the flat-signal
	// penalty applies
	FlatStdDev float64 `json:"flat_std_dev"`

	// FlatPenalty multiplies quality when the signal is near flat
	FlatPenalty float64 `json:"flat_penalty"`
}

// NewQualityScorer creates a scorer with default thresholds.
func NewQualityScorer() *QualityScorer {
	return &QualityScorer{
		SkewKnee:    13.0,
		SkewZero:    50.0,
		FlatStdDev:  0.01,
		FlatPenalty: 0.5,
	}
}

// Score returns a quality value in [0,1] for the filtered signal. An empty
// or constant signal scores 0: it carries no pulse information.
func (q *QualityScorer) Score(filtered []float64) float64 {
	if len(filtered) == 0 {
		return 0.0
	}

	m := stats.ComputeMoments(filtered)
	if m.Variance <= 0 {
		return 0.0
	}

	skewPct := math.Abs(m.Skewness) * 100.0

	quality := 1.0
	if skewPct > q.SkewKnee {
		quality = 1.0 - (skewPct-q.SkewKnee)/(q.SkewZero-q.SkewKnee)
	}

	if m.StdDev < q.FlatStdDev {
		quality *= q.FlatPenalty
	}

	return clamp01(quality)
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
