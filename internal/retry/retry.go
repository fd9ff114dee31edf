// Package retry provides the bounded-retry policy used to mask backend
// eventual consistency after mutations. The schedule is a first-class value
// with an injectable sleeper so callers can test it without real timers.
package retry

import (
	"context"
	"time"
)

// Sleeper pauses between attempts. The default honors context cancellation;
// tests inject a recorder instead.
type Sleeper func(ctx context.Context, d time.Duration)

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Policy is a bounded retry schedule with linearly increasing, therefore
// non-decreasing, delays: attempt n of MaxRetries waits n*BaseDelay.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Sleep      Sleeper
}

// Delay returns the pause that precedes retry attempt n (1-based).
func (p Policy) Delay(attempt int) time.Duration {
	return time.Duration(attempt) * p.BaseDelay
}

// Do calls fn immediately, then up to MaxRetries more times, sleeping
// Delay(n) before the n-th retry. It stops as soon as fn reports done or
// ctx is cancelled. The returned bool reports whether fn ever succeeded;
// err is fn's last error, which may be nil when fn merely never settled.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) (done bool, err error)) (bool, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		done, err := fn(ctx)
		lastErr = err
		if done {
			return true, nil
		}
		if attempt >= p.MaxRetries || ctx.Err() != nil {
			return false, lastErr
		}
		sleep(ctx, p.Delay(attempt+1))
	}
}
