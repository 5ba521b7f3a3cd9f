package temporal

// Periodicity estimates the dominant period of a signal by searching a
// bounded lag range for the maximum of the unnormalized autocorrelation.
//
// References:
//   - Rabiner, L., Schafer, R. (1978). "Digital Processing of Speech Signals"
//   - de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental frequency
//     estimator for speech and music"
//
// Used as the fallback when too few beats are visible for interval-based
// period estimation: the autocorrelation remains well defined on noisy
// signals where individual peaks are unreliable.
type Periodicity struct {
	minLag int
	maxLag int
}

// NewPeriodicity creates a periodicity analyzer searching lags in
// [minLag, maxLag] samples, inclusive.
func NewPeriodicity(minLag, maxLag int) *Periodicity {
	return &Periodicity{
		minLag: minLag,
		maxLag: maxLag,
	}
}

// DominantPeriod returns the lag in [minLag, maxLag] maximizing
// sum(x[i]*x[i+lag]) / (n-lag). The second return value is false when the
// search space is degenerate: no lag in range leaves at least one
// overlapping sample pair.
func (p *Periodicity) DominantPeriod(signal []float64) (int, bool) {
	n := len(signal)

	bestLag := 0
	bestScore := 0.0
	found := false

	for lag := p.minLag; lag <= p.maxLag; lag++ {
		if lag < 1 || lag >= n {
			continue
		}

		score := 0.0
		for i := 0; i+lag < n; i++ {
			score += signal[i] * signal[i+lag]
		}
		score /= float64(n - lag)

		if !found || score > bestScore {
			bestScore = score
			bestLag = lag
			found = true
		}
	}

	return bestLag, found
}
