// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

// Package metrics exposes Prometheus instrumentation for policy
// evaluation, grounded on the teacher's evaluate-duration histogram and
// per-effect evaluation counter, trimmed to the evaluator's own concerns
// (no attribute-provider or circuit-breaker metrics — those are part of
// the MUD server's ABAC surface, out of scope here).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aspen-iam/aspen"
)

var (
	evaluateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aspen_evaluate_duration_seconds",
		Help:    "Histogram of policy evaluation latency in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aspen_policy_evaluations_total",
		Help: "Total number of policy evaluations by resulting decision.",
	}, []string{"decision"})

	evaluationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aspen_policy_evaluation_errors_total",
		Help: "Total number of policy evaluation errors by error kind.",
	}, []string{"kind"})
)

// RecordEvaluation records the latency and outcome of a completed
// Evaluate call.
func RecordEvaluation(duration time.Duration, decision aspen.Decision) {
	evaluateDuration.Observe(duration.Seconds())
	evaluations.WithLabelValues(decision.String()).Inc()
}

// RecordError records an evaluation failure, labeled by its *aspen.Error
// kind when err is one; otherwise labeled "unknown".
func RecordError(err error) {
	kind := "unknown"
	if ae, ok := err.(*aspen.Error); ok {
		kind = ae.Kind.String()
	}
	evaluationErrors.WithLabelValues(kind).Inc()
}

// Evaluate wraps policy.Evaluate, recording duration/outcome/error
// metrics around the call without altering its result.
func Evaluate(policy *aspen.Policy, req aspen.Request) (aspen.Decision, error) {
	start := time.Now()
	decision, err := policy.Evaluate(req)
	if err != nil {
		RecordError(err)
		return aspen.DefaultDeny, err
	}
	RecordEvaluation(time.Since(start), decision)
	return decision, nil
}
