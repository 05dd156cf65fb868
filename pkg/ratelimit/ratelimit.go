// Package ratelimit provides an in-memory sliding-window request counter.
// State is process-scoped and resets on restart.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter answers whether a caller identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// SlidingWindow tracks request timestamps per key and allows at most
// maxRequests within the trailing window.
type SlidingWindow struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    map[string][]time.Time
	now         func() time.Time
}

func NewSlidingWindow(maxRequests int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		maxRequests: maxRequests,
		window:      window,
		requests:    make(map[string][]time.Time),
		now:         time.Now,
	}
}

// Allow records the request and returns true unless the key has already made
// maxRequests within the window. Timestamps outside the window are evicted on
// each call.
func (l *SlidingWindow) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.requests[key][:0]
	for _, t := range l.requests[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.maxRequests {
		l.requests[key] = kept
		return false
	}

	l.requests[key] = append(kept, now)
	return true
}
