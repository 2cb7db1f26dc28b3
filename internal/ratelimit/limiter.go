// Package ratelimit provides per-client sliding-window admission control.
package ratelimit

import "time"

// Limiter decides whether a client may make another request at now.
// Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(clientID string, now time.Time) bool
}

// Policy is the window size and the number of requests admitted within it.
type Policy struct {
	Max    int
	Window time.Duration
}

// prune returns the timestamps strictly after cutoff, reusing ts's backing
// array. Timestamps are appended in order, so the kept entries stay sorted.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// admit records now against ts and reports whether the window still fits
// within max. The rejected request is recorded too, so a client that keeps
// hammering stays limited until it backs off for a full window.
func (p Policy) admit(ts []time.Time, now time.Time) ([]time.Time, bool) {
	recent := prune(ts, now.Add(-p.Window))
	recent = append(recent, now)
	return recent, len(recent) <= p.Max
}
