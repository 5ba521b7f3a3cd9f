package ppg

// ProcessorConfig holds configuration for the pulse processing pipeline
type ProcessorConfig struct {
	// SampleRate is the nominal capture rate of the signal in Hz
	SampleRate float64 `json:"sample_rate"`

	// MinSamples is the shortest signal the pipeline accepts
	MinSamples int `json:"min_samples"`

	// Plausibility bounds, inclusive. Heart rate bounds are enforced by the
	// pipeline after estimation; respiratory bounds inside the estimator,
	// since an implausible respiratory estimate is common and must not leak
	// into the result.
	MinHeartRate       float64 `json:"min_heart_rate"`       // beats/min
	MaxHeartRate       float64 `json:"max_heart_rate"`       // beats/min
	MinRespiratoryRate float64 `json:"min_respiratory_rate"` // breaths/min
	MaxRespiratoryRate float64 `json:"max_respiratory_rate"` // breaths/min

	// RemoveDC subtracts the signal mean before normalization
	RemoveDC bool `json:"remove_dc"`

	// ComputeSNR reports a band-power SNR diagnostic in the result
	ComputeSNR bool `json:"compute_snr"`

	// LowQualityThreshold is the quality below which a warning is attached
	LowQualityThreshold float64 `json:"low_quality_threshold"`
}

// DefaultProcessorConfig returns the default pipeline configuration.
// The 14 Hz sample rate matches camera-based capture at the app's nominal
// frame rate.
func DefaultProcessorConfig() *ProcessorConfig {
	return &ProcessorConfig{
		SampleRate:          14,
		MinSamples:          30,
		MinHeartRate:        40,
		MaxHeartRate:        200,
		MinRespiratoryRate:  6,
		MaxRespiratoryRate:  30,
		RemoveDC:            false,
		ComputeSNR:          true,
		LowQualityThreshold: 0.7,
	}
}
