package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MomentResult contains the low-order moment statistics of a signal
type MomentResult struct {
	Mean         float64 `json:"mean"`          // First raw moment (μ₁)
	Variance     float64 `json:"variance"`      // Second central moment (σ²)
	StdDev       float64 `json:"std_dev"`       // Standard deviation (σ)
	ThirdCentral float64 `json:"third_central"` // Third central moment (μ₃)
	Skewness     float64 `json:"skewness"`      // Third standardized moment
	NumSamples   int     `json:"num_samples"`
}

// ComputeMoments calculates the population moments of the input up to order
// three.
//
// References:
//   - Kendall, M., Stuart, A. (1977). "The Advanced Theory of Statistics, Volume 1"
//   - Pearson, K. (1895). "Contributions to the Mathematical Theory of Evolution"
//
// Central moments are divided by n (population form), matching the
// distribution-shape use of these statistics for signal-quality scoring
// rather than inference. Skewness is μ₃/σ³ and is 0 for constant signals
// (zero variance), where the standardized moment is undefined.
func ComputeMoments(data []float64) MomentResult {
	n := len(data)
	if n == 0 {
		return MomentResult{}
	}

	mean := stat.Mean(data, nil)

	var m2, m3 float64
	for _, x := range data {
		diff := x - mean
		m2 += diff * diff
		m3 += diff * diff * diff
	}
	m2 /= float64(n)
	m3 /= float64(n)

	stdDev := math.Sqrt(m2)

	skewness := 0.0
	if m2 > 0 {
		skewness = m3 / math.Pow(m2, 1.5)
	}

	return MomentResult{
		Mean:         mean,
		Variance:     m2,
		StdDev:       stdDev,
		ThirdCentral: m3,
		Skewness:     skewness,
		NumSamples:   n,
	}
}
