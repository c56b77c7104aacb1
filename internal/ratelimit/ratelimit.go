// Package ratelimit implements a per-identity sliding-window request limiter
// for the list endpoints. It is a throttling mechanism, not a correctness
// mechanism: state is process-local and occasionally admitting slightly more
// than the nominal limit across instances is acceptable.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts requests per identity over a sliding window. The nth request
// inside a window is admitted while n <= limit; the request after that is
// rejected until the oldest hit ages out.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

// New creates a limiter admitting limit requests per identity per window.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow records a request for identity and reports whether it is within the
// limit. Safe for concurrent use.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.hits[identity][:0]
	for _, t := range l.hits[identity] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.hits[identity] = recent
		return false
	}

	l.hits[identity] = append(recent, now)
	return true
}

// RetryAfter returns how long identity must wait before its next request
// would be admitted, rounded up to whole seconds. Zero when it would be
// admitted now.
func (l *Limiter) RetryAfter(identity string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[identity]
	if len(recent) < l.limit {
		return 0
	}
	oldest := recent[len(recent)-l.limit]
	wait := oldest.Add(l.window).Sub(l.now())
	if wait <= 0 {
		return 0
	}
	// round up to whole seconds for the Retry-After header
	secs := (wait + time.Second - 1) / time.Second
	return secs * time.Second
}

// Prune drops identities with no hits inside the window. Intended to be
// called periodically by the owner to bound memory.
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for identity, times := range l.hits {
		keep := times[:0]
		for _, t := range times {
			if t.After(cutoff) {
				keep = append(keep, t)
			}
		}
		if len(keep) == 0 {
			delete(l.hits, identity)
		} else {
			l.hits[identity] = keep
		}
	}
}

// SetClock overrides the time source. Test hook.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
