package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errpkg "github.com/veranemoloko/resumatch/internal/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLoop(t *testing.T) *EventLoop {
	t.Helper()
	l := NewEventLoop(newTestLogger(), 16)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = l.Stop(ctx)
	})
	return l
}

func TestEventLoop_RunsInOrder(t *testing.T) {
	l := newTestLoop(t)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		require.True(t, l.Post(func() { got = append(got, i) }))
	}

	var snapshot []int
	require.NoError(t, l.Do(context.Background(), func() {
		snapshot = append(snapshot, got...)
	}))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, snapshot)
}

func TestEventLoop_RecoversFromPanic(t *testing.T) {
	l := newTestLoop(t)

	require.NoError(t, l.Do(context.Background(), func() { panic("boom") }))

	ran := false
	require.NoError(t, l.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestEventLoop_Stop(t *testing.T) {
	l := NewEventLoop(newTestLogger(), 1)

	require.NoError(t, l.Stop(context.Background()))
	assert.True(t, l.Stopped())
	assert.False(t, l.Post(func() {}))
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), errpkg.ErrLoopStopped)

	// second stop is a no-op
	require.NoError(t, l.Stop(context.Background()))
}

func TestEventLoop_DoHonoursContext(t *testing.T) {
	l := newTestLoop(t)

	release := make(chan struct{})
	require.True(t, l.Post(func() { <-release }))
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.Do(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDelayedTask_FiresOnce(t *testing.T) {
	l := newTestLoop(t)

	var calls atomic.Int32
	var task *DelayedTask
	require.NoError(t, l.Do(context.Background(), func() {
		task = Schedule(l, 5*time.Millisecond, func() { calls.Add(1) })
	}))

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	var pending, fired, cancelled bool
	require.NoError(t, l.Do(context.Background(), func() {
		pending = task.Pending()
		fired = task.Fired()
		cancelled = task.Cancel()
	}))
	assert.False(t, pending)
	assert.True(t, fired)
	assert.False(t, cancelled)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDelayedTask_CancelBeforeFire(t *testing.T) {
	l := newTestLoop(t)

	var calls atomic.Int32
	var cancelled bool
	require.NoError(t, l.Do(context.Background(), func() {
		task := Schedule(l, 30*time.Millisecond, func() { calls.Add(1) })
		cancelled = task.Cancel()
	}))

	assert.True(t, cancelled)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDelayedTask_CancelAfterTimerQueued(t *testing.T) {
	l := newTestLoop(t)

	var calls atomic.Int32
	var cancelled bool
	require.NoError(t, l.Do(context.Background(), func() {
		task := Schedule(l, time.Millisecond, func() { calls.Add(1) })
		// the timer fires and queues its callback behind this function
		time.Sleep(20 * time.Millisecond)
		cancelled = task.Cancel()
	}))

	// flush the queued callback
	require.NoError(t, l.Do(context.Background(), func() {}))

	assert.True(t, cancelled)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDelayedTask_NilSafe(t *testing.T) {
	var task *DelayedTask
	assert.False(t, task.Cancel())
	assert.False(t, task.Pending())
	assert.False(t, task.Fired())
}
