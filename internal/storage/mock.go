package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jwebster45206/npc-engine/pkg/actor"
)

// MockStore is an in-memory Store for testing. It round-trips agents through
// JSON so tests exercise the same serialization path as Redis.
type MockStore struct {
	mu     sync.Mutex
	agents map[string][]byte
}

// Ensure MockStore implements the Store interface
var _ Store = (*MockStore)(nil)

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{agents: make(map[string][]byte)}
}

func (s *MockStore) SaveAgent(_ context.Context, a *actor.Agent) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("agent with non-empty ID required")
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal agent: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[a.ID] = data
	return nil
}

func (s *MockStore) LoadAgent(_ context.Context, id string) (*actor.Agent, error) {
	s.mu.Lock()
	data, ok := s.agents[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var a actor.Agent
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal agent %s: %w", id, err)
	}
	return &a, nil
}

func (s *MockStore) DeleteAgent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.agents, id)
	return nil
}

func (s *MockStore) ListAgentIDs(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.agents))
	for id := range s.agents {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MockStore) Ping(_ context.Context) error { return nil }

func (s *MockStore) Close() error { return nil }
