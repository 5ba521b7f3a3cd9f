package temporal

// PeakDetector finds strict local maxima in a time-domain signal. A sample
// is a peak when its value is strictly greater than both neighbors, so the
// first and last samples never qualify.
type PeakDetector struct {
	minDistance int
}

// NewPeakDetector creates a detector with no spacing constraint between peaks.
func NewPeakDetector() *PeakDetector {
	return &PeakDetector{minDistance: 1}
}

// NewPeakDetectorWithDistance creates a detector that enforces a minimum
// index distance between detected peaks. When two candidates fall closer
// than minDistance, the higher one wins.
func NewPeakDetectorWithDistance(minDistance int) *PeakDetector {
	if minDistance < 1 {
		minDistance = 1
	}
	return &PeakDetector{minDistance: minDistance}
}

// Detect returns the indices of all strict local maxima in ascending order.
func (pd *PeakDetector) Detect(signal []float64) []int {
	var peaks []int

	for i := 1; i < len(signal)-1; i++ {
		if signal[i] <= signal[i-1] || signal[i] <= signal[i+1] {
			continue
		}

		if pd.minDistance > 1 && len(peaks) > 0 {
			last := peaks[len(peaks)-1]
			if i-last < pd.minDistance {
				// Too close to the previous peak; keep the higher of the two
				if signal[i] > signal[last] {
					peaks[len(peaks)-1] = i
				}
				continue
			}
		}

		peaks = append(peaks, i)
	}

	return peaks
}

// MeanInterval returns the average index distance between consecutive peaks.
// The second return value is false when fewer than two peaks are given.
func MeanInterval(peaks []int) (float64, bool) {
	if len(peaks) < 2 {
		return 0, false
	}

	sum := 0
	for i := 1; i < len(peaks); i++ {
		sum += peaks[i] - peaks[i-1]
	}

	return float64(sum) / float64(len(peaks)-1), true
}
