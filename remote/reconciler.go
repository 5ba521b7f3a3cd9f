package remote

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/pulseward/ppg-core/logging"
	"github.com/pulseward/ppg-core/ppg"
)

// ReconcilerConfig holds configuration for remote reconciliation
type ReconcilerConfig struct {
	// Timeout bounds the remote call; a timeout falls back to the local
	// result exactly like a service error
	Timeout time.Duration `json:"timeout"`

	// EstimateThreshold is the remote confidence below which the merged
	// result is flagged as an estimate
	EstimateThreshold float64 `json:"estimate_threshold"`
}

// DefaultReconcilerConfig returns the default reconciliation configuration
func DefaultReconcilerConfig() *ReconcilerConfig {
	return &ReconcilerConfig{
		Timeout:           10 * time.Second,
		EstimateThreshold: 0.7,
	}
}

// Reconciler merges a remote analysis result into the local pipeline's
// result under an explicit preference policy: a successful remote estimate
// wins outright, a failed remote estimate that still carries a finite heart
// rate is preferred over discarding the number, and anything else leaves the
// local result untouched. The remote call is best-effort overlay, never a
// dependency.
type Reconciler struct {
	analyzer Analyzer
	config   *ReconcilerConfig
	logger   logging.Logger
}

// NewReconciler creates a reconciler around the given analyzer. A nil
// analyzer is valid and turns Reconcile into a no-op, which is how an
// unauthenticated caller short-circuits to local-only processing.
func NewReconciler(analyzer Analyzer, config *ReconcilerConfig) *Reconciler {
	if config == nil {
		config = DefaultReconcilerConfig()
	}

	return &Reconciler{
		analyzer: analyzer,
		config:   config,
		logger: logging.WithFields(logging.Fields{
			"component": "remote_reconciler",
		}),
	}
}

// Reconcile invokes the remote analyzer and merges its response with the
// local result. Every failure path returns the local result unchanged; the
// caller never sees a remote error.
func (r *Reconciler) Reconcile(ctx context.Context, local ppg.Result, req Request) ppg.Result {
	if r.analyzer == nil {
		return local
	}

	callCtx := ctx
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	resp, err := r.analyzer.Analyze(callCtx, req)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			r.logger.Warn("remote analyzer rejected credentials, using local result")
		} else {
			r.logger.Warn("remote analysis failed, using local result", logging.Fields{
				"error": err.Error(),
			})
		}
		return local
	}
	if resp == nil {
		return local
	}

	if resp.Success && usableHeartRate(resp.HeartRate) {
		return r.mergeSuccess(resp)
	}

	if usableHeartRate(resp.HeartRate) {
		// A low-confidence number beats no number, but the failure flag is
		// preserved so callers know not to treat it as validated
		return r.mergeFailed(resp)
	}

	r.logger.Debug("remote response carried no usable heart rate, using local result")
	return local
}

func (r *Reconciler) mergeSuccess(resp *Response) ppg.Result {
	result := ppg.Result{
		Success:              true,
		HeartRate:            resp.HeartRate,
		HeartRateVariability: resp.HeartRateVariability,
		RespiratoryRate:      resp.RespiratoryRate,
		SignalQuality:        resp.SignalQuality,
		Warnings:             resp.Warnings,
	}

	if resp.Confidence != nil {
		result.Confidence = *resp.Confidence
		result.IsEstimate = *resp.Confidence < r.config.EstimateThreshold
	} else {
		// Unknown confidence is treated as low
		result.IsEstimate = true
	}

	return result
}

func (r *Reconciler) mergeFailed(resp *Response) ppg.Result {
	reason := strings.Join(resp.Warnings, "; ")
	if reason == "" {
		reason = resp.Error
	}

	return ppg.Result{
		Success:       false,
		HeartRate:     resp.HeartRate,
		SignalQuality: resp.SignalQuality,
		IsEstimate:    true,
		Error:         reason,
	}
}

func usableHeartRate(hr *float64) bool {
	return hr != nil && !math.IsNaN(*hr) && !math.IsInf(*hr, 0)
}
