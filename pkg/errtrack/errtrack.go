// Package errtrack records errors the installer hit but chose to ignore,
// so that a later report can list them.
package errtrack

import "sync"

// Tracker is an append-only error history safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	errors []string
}

// New returns an empty tracker.
func New(initial ...string) *Tracker {
	t := &Tracker{}
	t.errors = append(t.errors, initial...)
	return t
}

// Add appends an entry. Empty strings are dropped.
func (t *Tracker) Add(msg string) {
	if msg == "" {
		return
	}
	t.mu.Lock()
	t.errors = append(t.errors, msg)
	t.mu.Unlock()
}

// Errors returns a snapshot of the history in insertion order.
func (t *Tracker) Errors() []string {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.errors))
	copy(out, t.errors)
	return out
}

// Len reports how many errors were recorded.
func (t *Tracker) Len() int {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.errors)
}
