package ppg

// Failure reasons reported in Result.Error.
const (
	ErrInsufficientSignal  = "insufficient signal data"
	ErrHeartRateOutOfRange = "heart rate out of normal range"
)

// WarnLowSignalQuality is appended to Result.Warnings when the measured
// signal quality falls below the configured threshold.
const WarnLowSignalQuality = "low signal quality"

// Result represents the outcome of one pipeline invocation. It is
// constructed once per call and never mutated afterwards; absent secondary
// estimates (heart rate variability, respiratory rate) are nil pointers, not
// errors.
type Result struct {
	Success              bool     `json:"success"`
	HeartRate            *float64 `json:"heartRate,omitempty"`            // beats/min
	HeartRateVariability *float64 `json:"heartRateVariability,omitempty"` // RMSSD, ms
	RespiratoryRate      *float64 `json:"respiratoryRate,omitempty"`      // breaths/min
	SignalQuality        float64  `json:"signalQuality"`                  // [0,1]
	SNR                  float64  `json:"snr,omitempty"`                  // band-power SNR, dB
	Confidence           float64  `json:"confidence"`                     // [0,1]
	IsEstimate           bool     `json:"isEstimate"`
	Warnings             []string `json:"warnings,omitempty"`
	Error                string   `json:"error,omitempty"`
}
