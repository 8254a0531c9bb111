package worker

import "time"

// DelayedTask runs a callback on a Dispatcher after a fixed delay.
// It resolves at most once: either the callback runs or the task is cancelled.
// Cancel and the callback must both run on the dispatcher's goroutine.
type DelayedTask struct {
	timer    *time.Timer
	resolved bool
	fired    bool
}

// Schedule starts a delayed task. Call it from inside the dispatcher's loop.
func Schedule(d Dispatcher, delay time.Duration, fn func()) *DelayedTask {
	t := &DelayedTask{}
	t.timer = time.AfterFunc(delay, func() {
		d.Post(func() {
			if t.resolved {
				return
			}
			t.resolved = true
			t.fired = true
			fn()
		})
	})
	return t
}

// Cancel prevents the callback from running. It returns false when the task
// already fired or was cancelled before.
func (t *DelayedTask) Cancel() bool {
	if t == nil || t.resolved {
		return false
	}
	t.resolved = true
	t.timer.Stop()
	return true
}

// Pending reports whether the task has neither fired nor been cancelled.
func (t *DelayedTask) Pending() bool {
	return t != nil && !t.resolved
}

// Fired reports whether the callback ran.
func (t *DelayedTask) Fired() bool {
	return t != nil && t.fired
}
