// Package storage is the external state-manager collaborator: it serializes
// and restores the engine's live in-memory agent representation. It is never
// invoked from the tick path; surrounding code saves and loads between ticks.
package storage

import (
	"context"

	"github.com/jwebster45206/npc-engine/pkg/actor"
)

// Store persists agent snapshots.
type Store interface {
	// SaveAgent writes the agent's serialized form.
	SaveAgent(ctx context.Context, a *actor.Agent) error

	// LoadAgent returns the stored agent, or nil with no error when the ID
	// is unknown. Loaded agents need their dialogue graph reattached.
	LoadAgent(ctx context.Context, id string) (*actor.Agent, error)

	// DeleteAgent removes the stored agent.
	DeleteAgent(ctx context.Context, id string) error

	// ListAgentIDs returns the IDs of all stored agents.
	ListAgentIDs(ctx context.Context) ([]string, error)

	// Ping checks connectivity.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
