package temporal

// Envelope provides low-frequency envelope extraction
type Envelope struct {
	// No state needed - stateless calculation
}

// NewEnvelope creates a new envelope extractor
func NewEnvelope() *Envelope {
	return &Envelope{}
}

// ComputeSmoothed computes a smoothed envelope using a centered moving
// average of the given window size. The window is clamped to available
// samples at the boundaries.
func (e *Envelope) ComputeSmoothed(signal []float64, windowSize int) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}
	if windowSize < 1 {
		windowSize = 1
	}
	if windowSize > len(signal) {
		windowSize = len(signal)
	}

	smoothed := make([]float64, len(signal))
	halfWindow := windowSize / 2

	for i := range signal {
		sum := 0.0
		count := 0

		for j := i - halfWindow; j <= i+halfWindow; j++ {
			if j >= 0 && j < len(signal) {
				sum += signal[j]
				count++
			}
		}

		smoothed[i] = sum / float64(count)
	}

	return smoothed
}
