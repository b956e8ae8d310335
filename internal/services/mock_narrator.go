package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/npc-engine/pkg/sensory"
)

// MockNarrator is a mock implementation of Narrator for testing
type MockNarrator struct {
	NarrateFunc func(ctx context.Context, events []sensory.Event) (string, error)

	// Track calls for testing
	NarrateCalls [][]sensory.Event

	mu sync.Mutex // protects all fields above
}

// NewMockNarrator creates a new mock narrator
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{
		NarrateCalls: make([][]sensory.Event, 0),
	}
}

// Narrate records the call and delegates to NarrateFunc when set.
func (m *MockNarrator) Narrate(ctx context.Context, events []sensory.Event) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.NarrateCalls = append(m.NarrateCalls, events)

	if m.NarrateFunc != nil {
		return m.NarrateFunc(ctx, events)
	}
	return "", nil
}
