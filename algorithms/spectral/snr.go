package spectral

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// BandPowerSNR estimates the signal-to-noise ratio of a pulse signal from
// the ratio of spectral power in the cardiac band to power in the band just
// above it.
//
// References:
//   - Welch, P.D. (1967). "The use of fast Fourier transform for the
//     estimation of power spectra"
//   - Elgendi, M. (2012). "On the Analysis of Fingertip Photoplethysmogram
//     Signals"
//
// The cardiac band defaults to 0.5-4 Hz (30-240 bpm); everything from 4 Hz
// up to 8 Hz is treated as noise. A diagnostic only: the pipeline reports
// the value but never gates on it.
type BandPowerSNR struct {
	signalLow  float64
	signalHigh float64
	noiseLow   float64
	noiseHigh  float64
}

// NewBandPowerSNR creates an estimator with the default cardiac and noise bands.
func NewBandPowerSNR() *BandPowerSNR {
	return &BandPowerSNR{
		signalLow:  0.5,
		signalHigh: 4.0,
		noiseLow:   4.0,
		noiseHigh:  8.0,
	}
}

// Estimate returns the band-power SNR in dB. Returns 0 when either band
// holds no spectral bins at the given sample rate or the noise band carries
// no power.
func (s *BandPowerSNR) Estimate(signal []float64, sampleRate float64) float64 {
	n := len(signal)
	if n < 2 || sampleRate <= 0 {
		return 0.0
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	spectrum := fft.FFTReal(signal)

	// One-sided periodogram
	numBins := n/2 + 1
	freqResolution := sampleRate / float64(n)

	var signalPower, noisePower float64
	var signalBins, noiseBins int

	for k := 1; k < numBins; k++ {
		freq := float64(k) * freqResolution
		power := math.Pow(cmplx.Abs(spectrum[k]), 2) / float64(n)

		if freq >= s.signalLow && freq <= s.signalHigh {
			signalPower += power
			signalBins++
		} else if freq > s.noiseLow && freq <= s.noiseHigh {
			noisePower += power
			noiseBins++
		}
	}

	if signalBins == 0 || noiseBins == 0 {
		return 0.0
	}

	signalPower /= float64(signalBins)
	noisePower /= float64(noiseBins)

	if noisePower <= 0 {
		return 0.0
	}

	return 10.0 * math.Log10(signalPower/noisePower)
}
