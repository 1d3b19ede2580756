// Package ratelimit implements the process-local per-client limiter that
// guards account registration.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key (the client IP). Each bucket holds
// perMinute tokens and refills at perMinute tokens per minute.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	limit rate.Limit
	burst int
	now   func() time.Time
}

// NewLimiter returns a limiter allowing perMinute attempts per key. A
// non-positive perMinute disables limiting.
func NewLimiter(perMinute int) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
		l.burst = perMinute
	}
	return l
}

// Enabled reports whether the limiter rejects anything at all.
func (l *Limiter) Enabled() bool {
	return l != nil && l.burst > 0
}

// Allow consumes one token for key and reports whether the attempt may proceed.
func (l *Limiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}

	now := l.now()

	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Evict drops buckets idle for longer than ttl and returns how many were
// removed. A bucket idle that long has refilled completely, so dropping it
// does not change any future decision.
func (l *Limiter) Evict(ttl time.Duration) int {
	if l == nil {
		return 0
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
