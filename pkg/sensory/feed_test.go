package sensory

import (
	"fmt"
	"testing"
	"time"

	"github.com/jwebster45206/npc-engine/pkg/world"
)

func makeEvent(id string, age time.Duration) Event {
	return Event{
		ID:        id,
		Type:      EventLoudNoise,
		Location:  world.Position{},
		Intensity: 0.5,
		CreatedAt: time.Now().Add(-age),
	}
}

func TestFeedCapacity(t *testing.T) {
	t.Run("evicts oldest first", func(t *testing.T) {
		f := NewFeed(3, time.Minute)
		for i := 0; i < 5; i++ {
			f.Append(makeEvent(fmt.Sprintf("e%d", i), 0))
		}
		if f.Len() != 3 {
			t.Fatalf("expected len 3, got %d", f.Len())
		}
		events := f.Events()
		if events[0].ID != "e2" || events[2].ID != "e4" {
			t.Errorf("expected e2..e4 to survive, got %s..%s", events[0].ID, events[2].ID)
		}
	})

	t.Run("defaults applied for bad capacity", func(t *testing.T) {
		f := NewFeed(0, 0)
		for i := 0; i < DefaultFeedCapacity+10; i++ {
			f.Append(makeEvent(fmt.Sprintf("e%d", i), 0))
		}
		if f.Len() != DefaultFeedCapacity {
			t.Errorf("expected default capacity %d, got %d", DefaultFeedCapacity, f.Len())
		}
	})
}

func TestFeedPurge(t *testing.T) {
	t.Run("drops events past the decay horizon", func(t *testing.T) {
		f := NewFeed(10, 30*time.Second)
		f.Append(makeEvent("old", 45*time.Second))
		f.Append(makeEvent("stale", 31*time.Second))
		f.Append(makeEvent("fresh", 5*time.Second))

		removed := f.Purge(time.Now())
		if removed != 2 {
			t.Errorf("expected 2 removed, got %d", removed)
		}
		events := f.Events()
		if len(events) != 1 || events[0].ID != "fresh" {
			t.Errorf("expected only fresh event, got %v", events)
		}
	})

	t.Run("purge on empty feed is a no-op", func(t *testing.T) {
		f := NewFeed(10, 30*time.Second)
		if removed := f.Purge(time.Now()); removed != 0 {
			t.Errorf("expected 0 removed, got %d", removed)
		}
	})
}

func TestFeedOrder(t *testing.T) {
	f := NewFeed(10, time.Minute)
	for i := 0; i < 4; i++ {
		f.Append(makeEvent(fmt.Sprintf("e%d", i), 0))
	}
	events := f.Events()
	for i := 1; i < len(events); i++ {
		if events[i-1].ID >= events[i].ID {
			t.Errorf("expected append order, got %s before %s", events[i-1].ID, events[i].ID)
		}
	}
}

func TestFeedEventsReturnsCopy(t *testing.T) {
	f := NewFeed(10, time.Minute)
	f.Append(makeEvent("e0", 0))
	events := f.Events()
	events[0].ID = "mutated"
	if f.Events()[0].ID != "e0" {
		t.Error("expected feed contents to be isolated from returned slice")
	}
}

func TestMemory(t *testing.T) {
	t.Run("bounded with FIFO eviction", func(t *testing.T) {
		m := NewMemory(3)
		for i := 0; i < 5; i++ {
			m.Remember(makeEvent(fmt.Sprintf("e%d", i), 0))
		}
		if m.Len() != 3 {
			t.Fatalf("expected len 3, got %d", m.Len())
		}
		events := m.Recall()
		if events[0].ID != "e2" {
			t.Errorf("expected oldest survivor e2, got %s", events[0].ID)
		}
	})

	t.Run("default capacity", func(t *testing.T) {
		m := NewMemory(0)
		for i := 0; i < DefaultMemoryCapacity+5; i++ {
			m.Remember(makeEvent(fmt.Sprintf("e%d", i), 0))
		}
		if m.Len() != DefaultMemoryCapacity {
			t.Errorf("expected default capacity %d, got %d", DefaultMemoryCapacity, m.Len())
		}
	})

	t.Run("memory survives feed purge", func(t *testing.T) {
		f := NewFeed(10, 30*time.Second)
		m := NewMemory(10)
		e := makeEvent("remembered", 0)
		f.Append(e)
		m.Remember(e)

		// Age the event past the horizon and purge the feed.
		f.events[0].CreatedAt = time.Now().Add(-time.Minute)
		f.Purge(time.Now())

		if f.Len() != 0 {
			t.Error("expected feed to be purged")
		}
		if m.Len() != 1 {
			t.Error("expected agent memory to retain its copy")
		}
	})
}
