// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

// Package audit provides an optional write hook for policy evaluation
// decisions. Unlike the teacher's ABAC audit logger, there is no WAL
// fallback or PostgreSQL-backed retention store here — policy
// storage/distribution remains out of scope (spec §1); a Writer is
// expected to forward entries to whatever durable sink the caller
// already operates.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/oops"

	"github.com/aspen-iam/aspen"
	"github.com/aspen-iam/aspen/pkg/errutil"
)

var writeFailuresCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "aspen_audit_write_failures_total",
	Help: "Total number of audit writer failures.",
})

// Entry is a single access-control decision to be recorded.
type Entry struct {
	Service   string
	Action    string
	Decision  aspen.Decision
	Duration  time.Duration
	Timestamp time.Time
}

// Writer forwards a single audit Entry to a durable sink.
type Writer interface {
	Write(ctx context.Context, entry Entry) error
}

// NopWriter discards every entry. It is the zero-value default so that
// evaluation never requires an audit backend to be configured.
type NopWriter struct{}

// Write implements Writer by discarding entry.
func (NopWriter) Write(context.Context, Entry) error { return nil }

// Record writes entry via w, logging (but never propagating) a failure —
// an audit-write failure must never alter the decision already returned
// to the caller.
func Record(ctx context.Context, w Writer, entry Entry) {
	if w == nil {
		w = NopWriter{}
	}
	if err := w.Write(ctx, entry); err != nil {
		wrapped := oops.In("audit").
			Code("audit_write_failed").
			With("service", entry.Service, "action", entry.Action, "decision", entry.Decision.String()).
			Wrap(err)
		errutil.LogError(slog.Default(), "audit write failed", wrapped)
		writeFailuresCounter.Inc()
	}
}

// Evaluate wraps policy.Evaluate, recording an audit Entry for the
// resulting decision via w before returning it. Audit failures never
// change the returned Decision.
func Evaluate(ctx context.Context, w Writer, policy *aspen.Policy, req aspen.Request) (aspen.Decision, error) {
	start := time.Now()
	decision, err := policy.Evaluate(req)
	if err != nil {
		return aspen.DefaultDeny, err
	}
	Record(ctx, w, Entry{
		Service:   req.Service,
		Action:    req.Action,
		Decision:  decision,
		Duration:  time.Since(start),
		Timestamp: start,
	})
	return decision, nil
}
