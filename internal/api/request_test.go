// Copyright (C) Manifold, Inc.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		Credentials{Token: "mfn_test", BaseURL: srv.URL},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestResolveTimeout(t *testing.T) {
	now := time.Now()

	t.Run("explicit wins", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), now.Add(time.Minute))
		defer cancel()
		assert.Equal(t, 5*time.Second, resolveTimeout(ctx, 5*time.Second, now))
	})

	t.Run("inherited deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), now.Add(10*time.Second))
		defer cancel()
		got := resolveTimeout(ctx, 0, now)
		assert.InDelta(t, float64(10*time.Second), float64(got), float64(50*time.Millisecond))
	})

	t.Run("expired deadline clamps to one millisecond", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), now.Add(-50*time.Millisecond))
		defer cancel()
		assert.Equal(t, time.Millisecond, resolveTimeout(ctx, 0, now))
	})

	t.Run("default ceiling", func(t *testing.T) {
		assert.Equal(t, DefaultTimeout, resolveTimeout(context.Background(), 0, now))
		assert.Equal(t, DefaultTimeout, resolveTimeout(nil, 0, now))
	})
}

func TestBoundRequestTimerWins(t *testing.T) {
	ctx, release := boundRequest(context.Background(), 10*time.Millisecond)
	defer release()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("derived context never fired")
	}
	assert.Equal(t, "deadline", cancelReason(ctx))
}

func TestBoundRequestUpstreamWins(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, release := boundRequest(parent, time.Minute)
	defer release()

	cancelParent()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("derived context never fired")
	}
	assert.Equal(t, "transport-timeout", cancelReason(ctx))
}

func TestBoundRequestExactlyOneReasonWins(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	defer cancelParent()
	ctx, release := boundRequest(parent, 5*time.Millisecond)
	defer release()

	<-ctx.Done()
	require.Equal(t, "deadline", cancelReason(ctx))

	// A late upstream cancellation must not overwrite the recorded cause.
	cancelParent()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, "deadline", cancelReason(ctx))
}

func TestBoundRequestReleaseStopsTimer(t *testing.T) {
	ctx, release := boundRequest(context.Background(), 20*time.Millisecond)
	release()

	time.Sleep(40 * time.Millisecond)
	// The context is settled by release, not by the timer.
	assert.Equal(t, "", cancelReason(ctx))
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
}

func TestDoTimeoutSurfacesAsTransportError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))

	_, _, err := client.do(context.Background(), requestSpec{
		op:      "slow op",
		method:  http.MethodGet,
		path:    "/v1/functions",
		timeout: 20 * time.Millisecond,
	})
	require.Error(t, err)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "slow op", transportErr.Op)
	assert.Equal(t, "deadline", transportErr.Reason)
}

func TestDoInheritedCancellation(t *testing.T) {
	started := make(chan struct{})
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(500 * time.Millisecond)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, _, err := client.do(ctx, requestSpec{
		op:     "cancelled op",
		method: http.MethodGet,
		path:   "/v1/functions",
	})
	require.Error(t, err)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "transport-timeout", transportErr.Reason)
}

func TestDoSetsStandardHeaders(t *testing.T) {
	var got http.Header
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte("{}"))
	}))

	status, _, err := client.do(context.Background(), requestSpec{
		op:     "probe",
		method: http.MethodGet,
		path:   "/v1/functions",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Bearer mfn_test", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "mfn", got.Get("User-Agent"))
	assert.NotEmpty(t, got.Get("X-Request-Id"))
}
