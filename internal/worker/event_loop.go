package worker

import (
	"context"
	"log/slog"
	"sync"

	errpkg "github.com/veranemoloko/resumatch/internal/errors"
)

// Dispatcher accepts work to be run later on a single goroutine.
type Dispatcher interface {
	Post(fn func()) bool
}

// EventLoop runs posted functions one at a time, in order, on its own goroutine.
// State touched only from inside the loop needs no further locking.
type EventLoop struct {
	events   chan func()
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	logger   *slog.Logger
}

// NewEventLoop starts a loop with the given queue size.
func NewEventLoop(logger *slog.Logger, queueSize int) *EventLoop {
	l := &EventLoop{
		events:  make(chan func(), queueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		logger:  logger,
	}

	go l.run()

	return l
}

func (l *EventLoop) run() {
	defer close(l.stopped)

	for {
		select {
		case fn := <-l.events:
			l.exec(fn)
		case <-l.done:
			return
		}
	}
}

func (l *EventLoop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("event handler panicked", "panic", r)
		}
	}()
	fn()
}

// Post queues fn without waiting for it. It blocks while the queue is full and
// returns false once the loop is stopped.
func (l *EventLoop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish.
// It must not be called from inside the loop.
func (l *EventLoop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}

	if !l.Post(wrapped) {
		return errpkg.ErrLoopStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.stopped:
		select {
		case <-finished:
			return nil
		default:
			return errpkg.ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends the loop. Queued functions that have not started are dropped.
func (l *EventLoop) Stop(ctx context.Context) error {
	l.stopOnce.Do(func() {
		close(l.done)
	})

	select {
	case <-l.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stopped reports whether Stop has been called.
func (l *EventLoop) Stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
