package filters

// MovingAverageBank smooths a normalized pulse signal by applying a bank of
// centered moving-average passes and averaging their outputs element-wise.
//
// References:
//   - Smith, S.W. (1997). "The Scientist and Engineer's Guide to Digital
//     Signal Processing", Chapter 15 (Moving Average Filters)
//   - Allen, J., (2007). "Photoplethysmography and its application in
//     clinical physiological measurement", Physiol. Meas. 28
//
// Each pass stands in for one low-order band-pass stage; the pass index
// selects which smoothed copy is produced and every pass shares the same
// window, whose half-width is derived from the sample rate. Boundary samples
// are averaged over the available neighbors only (no padding, no wraparound),
// so edges are smoothed over fewer points.
type MovingAverageBank struct {
	orders    []int
	halfWidth int
}

// NewMovingAverageBank creates a filter bank for the given sample rate.
// The window half-width is max(3, floor(sampleRate/4)) samples and the bank
// runs passes for nominal orders 2 through 6.
func NewMovingAverageBank(sampleRate float64) *MovingAverageBank {
	halfWidth := int(sampleRate / 4.0)
	if halfWidth < 3 {
		halfWidth = 3
	}

	return &MovingAverageBank{
		orders:    []int{2, 3, 4, 5, 6},
		halfWidth: halfWidth,
	}
}

// NewMovingAverageBankWithParams creates a filter bank with explicit pass
// orders and window half-width.
func NewMovingAverageBankWithParams(orders []int, halfWidth int) *MovingAverageBank {
	if len(orders) == 0 {
		orders = []int{2, 3, 4, 5, 6}
	}
	if halfWidth < 1 {
		halfWidth = 1
	}

	return &MovingAverageBank{
		orders:    orders,
		halfWidth: halfWidth,
	}
}

// Filter returns the element-wise average of one smoothed copy per pass.
// The output has the same length as the input; the input is never mutated.
func (b *MovingAverageBank) Filter(signal []float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	sum := make([]float64, len(signal))
	for range b.orders {
		smoothed := Smooth(signal, b.halfWidth)
		for i, v := range smoothed {
			sum[i] += v
		}
	}

	out := make([]float64, len(signal))
	scale := 1.0 / float64(len(b.orders))
	for i, v := range sum {
		out[i] = v * scale
	}

	return out
}

// HalfWidth returns the window half-width in samples.
func (b *MovingAverageBank) HalfWidth() int {
	return b.halfWidth
}

// Smooth applies a centered moving average with the given half-width.
// The window is clamped to the available samples at both boundaries.
func Smooth(signal []float64, halfWidth int) []float64 {
	out := make([]float64, len(signal))
	if halfWidth < 0 {
		halfWidth = 0
	}

	for i := range signal {
		start := i - halfWidth
		if start < 0 {
			start = 0
		}
		end := i + halfWidth
		if end > len(signal)-1 {
			end = len(signal) - 1
		}

		sum := 0.0
		for j := start; j <= end; j++ {
			sum += signal[j]
		}
		out[i] = sum / float64(end-start+1)
	}

	return out
}
