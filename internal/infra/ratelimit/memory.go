// Package ratelimit provides fixed-window counters used to throttle login
// attempts. The memory limiter is per-process; the redis limiter shares the
// window across replicas.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"takecost/internal/domain"
)

type memoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	maxKeys int
	now     func() time.Time
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// NewMemoryLimiter returns an in-process fixed-window limiter capped at
// maxKeys tracked keys. now may be nil for the wall clock.
func NewMemoryLimiter(maxKeys int, now func() time.Time) domain.RateLimiter {
	if maxKeys <= 0 {
		maxKeys = 10000
	}
	if now == nil {
		now = time.Now
	}
	return &memoryLimiter{
		entries: make(map[string]*windowEntry),
		maxKeys: maxKeys,
		now:     now,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (domain.RateLimitDecision, error) {
	if limit <= 0 {
		return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	if window <= 0 {
		window = time.Second
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || !now.Before(e.resetAt) {
		if !ok && len(m.entries) >= m.maxKeys {
			m.evictExpired(now)
		}
		if !ok && len(m.entries) >= m.maxKeys {
			// Table is full of live windows. Fail open rather than
			// letting one hot key starve tracking for the rest.
			return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
		}
		e = &windowEntry{resetAt: now.Add(window)}
		m.entries[key] = e
	}
	e.count++
	remaining := limit - e.count
	if remaining < 0 {
		remaining = 0
	}
	return domain.RateLimitDecision{
		Allowed:   e.count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   e.resetAt,
	}, nil
}

func (m *memoryLimiter) evictExpired(now time.Time) {
	for k, e := range m.entries {
		if !now.Before(e.resetAt) {
			delete(m.entries, k)
		}
	}
}
