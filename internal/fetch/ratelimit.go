package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultRequestDelay is the minimum delay between consecutive fetches to the
// same host. Hammering one site trips anti-automation defenses.
const DefaultRequestDelay = 2 * time.Second

// HostLimiter spaces requests on two levels: a full delay between hits to
// the same host, and a shorter floor between any two fetches at all, so the
// sequential candidate probing of one company (careers.acme.com,
// jobs.acme.com, ...) still paces itself across hosts. It is safe for
// concurrent use, so parallel resolutions of different companies stay polite
// to any shared host.
type HostLimiter struct {
	mu      sync.Mutex
	delay   time.Duration
	floor   time.Duration
	last    map[string]time.Time
	lastAny time.Time
}

// NewHostLimiter creates a limiter with the given per-host delay; the
// cross-host floor is a quarter of it. A zero or negative delay disables
// limiting.
func NewHostLimiter(delay time.Duration) *HostLimiter {
	return &HostLimiter{
		delay: delay,
		floor: delay / 4,
		last:  make(map[string]time.Time),
	}
}

// Wait blocks until a request to host is allowed, or until ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l == nil || l.delay <= 0 {
		return nil
	}

	l.mu.Lock()
	now := time.Now()
	next := l.last[host].Add(l.delay)
	if floorNext := l.lastAny.Add(l.floor); floorNext.After(next) {
		next = floorNext
	}
	if next.Before(now) {
		next = now
	}
	l.last[host] = next
	l.lastAny = next
	l.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
