// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount++
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	require.NoError(t, New(w1, w2, w3).Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_Order(t *testing.T) {
	var order []int
	step := func(id int) Worker {
		return Func(func(context.Context) error {
			order = append(order, id)
			return nil
		})
	}

	require.NoError(t, New(step(1), step(2), step(3)).Run(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	w1 := &mockWorker{}
	w2 := &mockWorker{err: boom}
	w3 := &mockWorker{}

	err := New(w1, w2, w3).Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "worker 1")
	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
	assert.Zero(t, w3.runCount)
}

func TestWorkers_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	cancelling := Func(func(context.Context) error {
		cancel()
		return nil
	})

	err := New(w1, cancelling, w2).Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, w1.runCount)
	assert.Zero(t, w2.runCount)
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := New(w)

	for range 3 {
		require.NoError(t, ws.Run(context.Background()))
	}
	assert.Equal(t, 3, w.runCount)
}
