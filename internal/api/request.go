// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultTimeout bounds every outbound call that has no explicit
// timeout and no inherited deadline.
const DefaultTimeout = 20 * time.Second

// minTimeout is the floor for a timeout derived from an inherited
// deadline. An already-expired deadline still issues a call that fails
// fast instead of never firing.
const minTimeout = time.Millisecond

// Cancellation causes. Exactly one wins per call.
var (
	errDeadlineElapsed  = errors.New("deadline")
	errUpstreamCanceled = errors.New("transport-timeout")
)

// resolveTimeout picks the timeout for one call: an explicit per-call
// timeout wins, then the remaining time until an inherited deadline
// (clamped to minTimeout), then DefaultTimeout.
func resolveTimeout(parent context.Context, explicit time.Duration, now time.Time) time.Duration {
	if explicit > 0 {
		return explicit
	}
	if parent != nil {
		if deadline, ok := parent.Deadline(); ok {
			remaining := deadline.Sub(now)
			if remaining < minTimeout {
				return minTimeout
			}
			return remaining
		}
	}
	return DefaultTimeout
}

// boundRequest derives the single combined cancellation context for one
// outbound call. The transport only ever sees the derived context, never
// the raw parent, so the executor fully owns cancellation semantics no
// matter how many upstream layers compose. The returned release func
// must always be called; it stops the timer and settles the context.
func boundRequest(parent context.Context, explicit time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(context.Background())

	timeout := resolveTimeout(parent, explicit, time.Now())
	timer := time.AfterFunc(timeout, func() {
		cancel(errDeadlineElapsed)
	})

	if parent != nil && parent.Done() != nil {
		go func() {
			select {
			case <-parent.Done():
				cancel(errUpstreamCanceled)
			case <-ctx.Done():
			}
		}()
	}

	release := func() {
		timer.Stop()
		cancel(context.Canceled)
	}
	return ctx, release
}

// cancelReason reports the cause recorded on a derived context, or ""
// when the context was not cancelled by the executor.
func cancelReason(ctx context.Context) string {
	switch context.Cause(ctx) {
	case errDeadlineElapsed:
		return "deadline"
	case errUpstreamCanceled:
		return "transport-timeout"
	}
	return ""
}
