// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts its runs and waits for cancellation.
type blockingWorker struct {
	runCount atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runCount.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- New(w1, w2, w3).Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_SkipsNil(t *testing.T) {
	var calls int
	ws := New(nil, Func(func(context.Context) error { calls++; return nil }), nil)

	require.NoError(t, ws.Run(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	peer := &blockingWorker{}

	err := New(peer, Func(func(context.Context) error { return boom })).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), peer.runCount.Load())
}

func TestWorkers_Run_FinishedWorkersReturnNil(t *testing.T) {
	err := New(
		Func(func(context.Context) error { return nil }),
		Func(func(context.Context) error { return nil }),
	).Run(context.Background())
	assert.NoError(t, err)
}

type ctxKey struct{}

func TestFunc_Run(t *testing.T) {
	var got context.Context
	ctx := context.WithValue(context.Background(), ctxKey{}, 1)

	require.NoError(t, Func(func(c context.Context) error { got = c; return nil }).Run(ctx))
	assert.Equal(t, ctx, got)
}
