package stats

import (
	"math"
)

// RMSSD computes the root mean square of successive differences between
// consecutive beat-to-beat intervals, the standard short-term heart rate
// variability metric.
//
// References:
//   - Task Force of the ESC and NASPE (1996). "Heart rate variability:
//     standards of measurement, physiological interpretation and clinical use"
//
// Intervals are expected in milliseconds. The second return value is false
// when fewer than two intervals are given, since at least one successive
// difference is required.
func RMSSD(intervals []float64) (float64, bool) {
	if len(intervals) < 2 {
		return 0, false
	}

	sumSq := 0.0
	for i := 1; i < len(intervals); i++ {
		diff := intervals[i] - intervals[i-1]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(intervals)-1)), true
}
