package ppg

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/pulseward/ppg-core/algorithms/filters"
	"github.com/pulseward/ppg-core/algorithms/spectral"
	"github.com/pulseward/ppg-core/algorithms/stats"
	"github.com/pulseward/ppg-core/algorithms/temporal"
	"github.com/pulseward/ppg-core/logging"
)

// Processor runs the pulse processing pipeline: validate, normalize, filter,
// estimate heart rate / variability / respiratory rate, score quality, apply
// plausibility bounds, and assemble a Result.
//
// Every stage is a pure function over its own buffers; the input slice is
// never mutated and no state survives a call, so a single Processor is safe
// for concurrent use.
type Processor struct {
	config   *ProcessorConfig
	filter   *filters.MovingAverageBank
	peaks    *temporal.PeakDetector
	envelope *temporal.Envelope
	quality  *QualityScorer
	snr      *spectral.BandPowerSNR
	logger   logging.Logger
}

// NewProcessor creates a processor with the given configuration
func NewProcessor(config *ProcessorConfig) *Processor {
	if config == nil {
		config = DefaultProcessorConfig()
	}

	logger := logging.WithFields(logging.Fields{
		"component": "ppg_processor",
	})

	return &Processor{
		config:   config,
		filter:   filters.NewMovingAverageBank(config.SampleRate),
		peaks:    temporal.NewPeakDetector(),
		envelope: temporal.NewEnvelope(),
		quality:  NewQualityScorer(),
		snr:      spectral.NewBandPowerSNR(),
		logger:   logger,
	}
}

// ProcessPPG runs the full pipeline over a raw intensity signal at the given
// sample rate using default configuration. Pass sampleRate <= 0 to use the
// default rate.
func ProcessPPG(signal []float64, sampleRate float64) Result {
	config := DefaultProcessorConfig()
	if sampleRate > 0 {
		config.SampleRate = sampleRate
	}
	return NewProcessor(config).Process(signal)
}

// Config returns a copy of the processor configuration
func (p *Processor) Config() ProcessorConfig {
	return *p.config
}

// Process converts a raw intensity sequence into physiological estimates.
// Failures are terminal for the invocation; there are no retries. A heart
// rate outside the configured bounds is the one failure that still reports
// the measured signal quality.
func (p *Processor) Process(signal []float64) Result {
	if len(signal) < p.config.MinSamples {
		p.logger.Warn("rejecting capture", logging.Fields{
			"samples":     len(signal),
			"min_samples": p.config.MinSamples,
		})
		return Result{
			Success: false,
			Error:   ErrInsufficientSignal,
		}
	}

	working := signal
	if p.config.RemoveDC {
		working = filters.RemoveDC(signal)
	}

	normalized := normalize(working)
	filtered := p.filter.Filter(normalized)

	heartRate := p.estimateHeartRate(filtered)
	hrv, hasHRV := p.estimateHRV(filtered)
	respRate, hasResp := p.estimateRespiratoryRate(filtered)

	quality := p.quality.Score(filtered)

	snr := 0.0
	if p.config.ComputeSNR {
		snr = p.snr.Estimate(filtered, p.config.SampleRate)
	}

	if !p.heartRateInRange(heartRate) {
		p.logger.Warn("heart rate estimate rejected", logging.Fields{
			"heart_rate": heartRate,
			"min":        p.config.MinHeartRate,
			"max":        p.config.MaxHeartRate,
		})
		return Result{
			Success:       false,
			SignalQuality: quality,
			SNR:           snr,
			Error:         ErrHeartRateOutOfRange,
		}
	}

	hr := math.Round(heartRate)
	result := Result{
		Success:       true,
		HeartRate:     &hr,
		SignalQuality: quality,
		SNR:           snr,
		Confidence:    math.Min(quality*1.2, 1.0),
	}

	if hasHRV {
		v := math.Round(hrv)
		result.HeartRateVariability = &v
	}
	if hasResp {
		v := math.Round(respRate)
		result.RespiratoryRate = &v
	}

	if quality < p.config.LowQualityThreshold {
		result.Warnings = append(result.Warnings, WarnLowSignalQuality)
	}

	p.logger.Debug("pipeline complete", logging.Fields{
		"heart_rate": hr,
		"quality":    quality,
		"has_hrv":    hasHRV,
		"has_resp":   hasResp,
	})

	return result
}

// heartRateInRange applies the configured plausibility bounds, inclusive on
// both ends.
func (p *Processor) heartRateInRange(bpm float64) bool {
	return bpm >= p.config.MinHeartRate && bpm <= p.config.MaxHeartRate
}

// normalize scales the signal into [0,1] using its observed range. A
// constant signal maps to all zeros through the guarded divisor.
func normalize(signal []float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}

	min := floats.Min(signal)
	max := floats.Max(signal)

	span := max - min
	if span == 0 {
		span = 1
	}

	for i, v := range signal {
		out[i] = (v - min) / span
	}

	return out
}

// estimateHeartRate measures beat-to-beat periodicity from strict local
// maxima, falling back to autocorrelation when fewer than two peaks are
// visible. No range validation happens here; the pipeline owns the bounds.
func (p *Processor) estimateHeartRate(filtered []float64) float64 {
	fs := p.config.SampleRate

	peaks := p.peaks.Detect(filtered)
	if interval, ok := temporal.MeanInterval(peaks); ok {
		periodSeconds := interval / fs
		return 60.0 / periodSeconds
	}

	// Plausible pulse periods between 0.5s and 1.5s
	minLag := int(0.5 * fs)
	maxLag := int(1.5 * fs)

	lag, ok := temporal.NewPeriodicity(minLag, maxLag).DominantPeriod(filtered)
	if !ok {
		// Degenerate search space: assume a 1-second period
		lag = int(fs)
	}
	if lag < 1 {
		lag = 1
	}

	return 60.0 / (float64(lag) / fs)
}

// estimateHRV computes RMSSD over peak-to-peak intervals. At least three
// peaks are required; fewer is a normal outcome, not a failure.
func (p *Processor) estimateHRV(filtered []float64) (float64, bool) {
	peaks := p.peaks.Detect(filtered)
	if len(peaks) < 3 {
		return 0, false
	}

	msPerSample := 1000.0 / p.config.SampleRate
	intervals := make([]float64, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		intervals[i-1] = float64(peaks[i]-peaks[i-1]) * msPerSample
	}

	return stats.RMSSD(intervals)
}

// estimateRespiratoryRate measures the periodicity of the signal's
// low-frequency envelope. Estimates outside the configured plausibility
// range are rejected here rather than surfaced.
func (p *Processor) estimateRespiratoryRate(filtered []float64) (float64, bool) {
	fs := p.config.SampleRate

	// 2-second smoothing window isolates the respiratory modulation
	env := p.envelope.ComputeSmoothed(filtered, int(2*fs))

	envPeaks := p.peaks.Detect(env)
	interval, ok := temporal.MeanInterval(envPeaks)
	if !ok {
		return 0, false
	}

	rate := 60.0 / (interval / fs)
	if rate < p.config.MinRespiratoryRate || rate > p.config.MaxRespiratoryRate {
		return 0, false
	}

	return rate, true
}
