package filters

import (
	"gonum.org/v1/gonum/stat"
)

// RemoveDC subtracts the signal mean, removing the DC component that the
// sensor's ambient light level contributes. Returns a new buffer; the input
// is never mutated.
func RemoveDC(signal []float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	mean := stat.Mean(signal, nil)
	for i, v := range signal {
		out[i] = v - mean
	}

	return out
}
