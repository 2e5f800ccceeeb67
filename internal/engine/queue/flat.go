// Package queue provides the drain queues consumed by the dispatcher.
package queue

import "slices"

// Flat drains a pre-resolved list of items in order. It has no dependency semantics.
type Flat struct {
	remaining []string
	total     int
}

// NewFlat creates a queue over items.
func NewFlat(items []string) *Flat {
	return &Flat{
		remaining: slices.Clone(items),
		total:     len(items),
	}
}

// Take removes up to n items from the front.
func (q *Flat) Take(n int) []string {
	if n <= 0 {
		return nil
	}
	n = min(n, len(q.remaining))
	out := q.remaining[:n:n]
	q.remaining = q.remaining[n:]
	return out
}

// Finish is a no-op.
func (q *Flat) Finish(...string) {}

// Terminal reports whether every item has been taken.
func (q *Flat) Terminal() bool {
	return len(q.remaining) == 0
}

// Status returns (consumed, total).
func (q *Flat) Status() (int, int) {
	return q.total - len(q.remaining), q.total
}
