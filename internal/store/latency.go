package store

import "time"

// Latency decides how long an operation waits before touching the collection.
// The wait does not observe context cancellation: once dispatched, an
// operation always runs to completion.
type Latency interface {
	Wait(op Op)
}

// NoLatency resolves every operation immediately.
type NoLatency struct{}

func (NoLatency) Wait(Op) {}

// SimulatedLatency sleeps a fixed duration per operation type.
type SimulatedLatency struct {
	List  time.Duration
	Other time.Duration
}

// DefaultLatency mirrors the reference mock backend: 800ms to list, 500ms for
// everything else.
func DefaultLatency() SimulatedLatency {
	return SimulatedLatency{List: 800 * time.Millisecond, Other: 500 * time.Millisecond}
}

func (l SimulatedLatency) Wait(op Op) {
	d := l.Other
	if op == OpList {
		d = l.List
	}
	if d > 0 {
		time.Sleep(d)
	}
}
