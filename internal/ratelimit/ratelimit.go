package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a sliding-window counter keyed by caller address. The stub
// backend puts it in front of the login endpoint to throttle password
// guessing.
type Limiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
	now    func() time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow records an attempt for key and reports whether it fits in the
// window. Stale entries are pruned on the way.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.prune(key, now)
	if len(recent) >= l.limit {
		return false
	}
	l.seen[key] = append(recent, now)
	return true
}

// Remaining reports how many attempts key has left without consuming one.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	left := l.limit - len(l.prune(key, l.now()))
	if left < 0 {
		return 0
	}
	return left
}

func (l *Limiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	recent := l.seen[key][:0]
	for _, t := range l.seen[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) == 0 {
		delete(l.seen, key)
		return nil
	}
	l.seen[key] = recent
	return recent
}
