// Package ratelimit provides a sliding-window rate limiter for outbound
// provider traffic.
//
// Unlike a token bucket, the sliding window guarantees that no trailing
// interval of the configured duration ever contains more than the configured
// number of acquisitions — which is how the upstream providers meter us.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// safetyMargin is added to every computed wait so a slot is not retaken in
// the same instant the oldest timestamp ages out.
const safetyMargin = 50 * time.Millisecond

// Limiter bounds acquisitions to max per sliding window. Safe for concurrent
// use; all state lives behind one mutex.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	stamps []time.Time

	// now is swappable for tests.
	now func() time.Time
}

// New creates a limiter allowing max acquisitions per window.
func New(max int, window time.Duration) *Limiter {
	if max < 1 {
		max = 1
	}
	return &Limiter{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// PerMinute creates a limiter allowing n acquisitions per 60-second window.
func PerMinute(n int) *Limiter {
	return New(n, time.Minute)
}

// Acquire blocks until a slot is free, then records the acquisition.
// It never rejects — the only error outcome is context cancellation.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		wait, ok := l.tryAcquire()
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire takes a slot if one is free. On failure it returns how long to
// wait before the oldest retained timestamp exits the window.
func (l *Limiter) tryAcquire() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	if len(l.stamps) < l.max {
		l.stamps = append(l.stamps, now)
		return 0, true
	}

	wait := l.window - now.Sub(l.stamps[0]) + safetyMargin
	if wait < safetyMargin {
		wait = safetyMargin
	}
	return wait, false
}

// prune discards timestamps that have aged out of the window. Caller holds mu.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

// InFlight reports how many acquisitions are currently inside the window.
func (l *Limiter) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prune(l.now())
	return len(l.stamps)
}
