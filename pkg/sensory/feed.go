package sensory

import "time"

const (
	// DefaultFeedCapacity bounds the shared event feed.
	DefaultFeedCapacity = 50

	// DefaultDecayHorizon is how long an event stays in the shared feed
	// before a purge drops it.
	DefaultDecayHorizon = 30 * time.Second
)

// Feed is the shared, manager-owned event feed. It is append-only,
// capacity-bounded with FIFO eviction, and purged of entries older than the
// decay horizon on each tick. The manager is its single writer, so no locking
// is required. Purging never retroactively removes copies already held in
// agent memories.
type Feed struct {
	capacity int
	horizon  time.Duration
	events   []Event
}

// NewFeed creates a feed. Non-positive capacity or horizon fall back to the
// defaults.
func NewFeed(capacity int, horizon time.Duration) *Feed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	if horizon <= 0 {
		horizon = DefaultDecayHorizon
	}
	return &Feed{
		capacity: capacity,
		horizon:  horizon,
		events:   make([]Event, 0, capacity),
	}
}

// Append adds an event, evicting the oldest entry when the feed is full.
func (f *Feed) Append(e Event) {
	if len(f.events) >= f.capacity {
		f.events = f.events[1:]
	}
	f.events = append(f.events, e)
}

// Purge drops events older than the decay horizon relative to now and
// returns how many were removed. Events are stored in append order, so the
// survivors form a suffix of the slice.
func (f *Feed) Purge(now time.Time) int {
	cutoff := now.Add(-f.horizon)
	idx := 0
	for idx < len(f.events) && f.events[idx].CreatedAt.Before(cutoff) {
		idx++
	}
	removed := idx
	if removed > 0 {
		f.events = append(f.events[:0:0], f.events[idx:]...)
	}
	return removed
}

// Events returns a copy of the feed contents in append (time) order.
func (f *Feed) Events() []Event {
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

// Len returns the number of active events.
func (f *Feed) Len() int {
	return len(f.events)
}
