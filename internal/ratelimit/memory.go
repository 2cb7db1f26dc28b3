package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow keeps each client's request timestamps in process memory.
// Idle clients are only dropped by Sweep.
type SlidingWindow struct {
	policy Policy

	mu      sync.Mutex
	clients map[string][]time.Time
}

// NewSlidingWindow creates an in-memory limiter.
func NewSlidingWindow(policy Policy) *SlidingWindow {
	return &SlidingWindow{
		policy:  policy,
		clients: make(map[string][]time.Time),
	}
}

// Allow implements Limiter.
func (s *SlidingWindow) Allow(clientID string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent, ok := s.policy.admit(s.clients[clientID], now)
	s.clients[clientID] = recent
	return ok
}

// Sweep evicts clients with no request inside the window ending at now and
// returns how many were removed.
func (s *SlidingWindow) Sweep(now time.Time) int {
	cutoff := now.Add(-s.policy.Window)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ts := range s.clients {
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(s.clients, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (s *SlidingWindow) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
