package ratelimit

import (
	"context"
	"sync"
	"time"
)

// SlidingWindow keeps attempt timestamps per key in process memory.
type SlidingWindow struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// WithClock swaps the time source, for tests.
func (s *SlidingWindow) WithClock(now func() time.Time) *SlidingWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

func (s *SlidingWindow) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)

	if now.Sub(s.lastSweep) >= s.window {
		s.sweep(cutoff)
		s.lastSweep = now
	}

	recent := prune(s.hits[key], cutoff)
	if len(recent) >= s.limit {
		s.hits[key] = recent
		return false, nil
	}

	s.hits[key] = append(recent, now)
	return true, nil
}

// Len is the number of keys currently tracked.
func (s *SlidingWindow) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hits)
}

func (s *SlidingWindow) sweep(cutoff time.Time) {
	for key, ts := range s.hits {
		if rest := prune(ts, cutoff); len(rest) == 0 {
			delete(s.hits, key)
		} else {
			s.hits[key] = rest
		}
	}
}

// prune drops timestamps at or before cutoff. ts is in ascending order.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}
