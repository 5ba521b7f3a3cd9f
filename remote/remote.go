// Package remote reconciles the local pulse pipeline's result with the
// estimate of an external ML analysis service. The transport used to reach
// the service is the caller's concern; this package owns the request and
// response contract and every rule for interpreting the response.
package remote

import (
	"context"
	"errors"
)

// ErrUnauthorized reports that the analyzer rejected the call for lack of a
// valid authentication context. The reconciler logs it distinctly from
// service errors but falls back identically.
var ErrUnauthorized = errors.New("remote analyzer: unauthorized")

// Request carries one captured signal to the analysis service. Field names
// follow the service's wire contract.
type Request struct {
	Signal          []float64      `json:"signal"`
	SampleRate      float64        `json:"sampleRate"`
	DurationSeconds float64        `json:"durationSeconds"`
	UserID          string         `json:"userId,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// Response is the analysis service's estimate of the same quantities the
// local pipeline produces. Optional fields are nil when the service did not
// compute them.
type Response struct {
	Success              bool     `json:"success"`
	HeartRate            *float64 `json:"heartRate,omitempty"`
	HeartRateVariability *float64 `json:"heartRateVariability,omitempty"`
	RespiratoryRate      *float64 `json:"respiratoryRate,omitempty"`
	SignalQuality        float64  `json:"signalQuality"`
	Confidence           *float64 `json:"confidence,omitempty"`
	Warnings             []string `json:"warnings"`
	Error                string   `json:"error,omitempty"`
}

// Analyzer is the remote collaborator. Implementations may block until the
// context is done; the reconciler wraps calls in its own timeout.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*Response, error)
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(ctx context.Context, req Request) (*Response, error)

// Analyze implements Analyzer.
func (f AnalyzerFunc) Analyze(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
