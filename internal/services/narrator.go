package services

import (
	"context"
	"strings"

	"github.com/jwebster45206/npc-engine/pkg/sensory"
)

// Narrator generates narrative text for world events. The engine core never
// calls it from the tick path; surrounding code narrates between ticks. LLM
// backends plug in behind this interface; the engine ships only the stub.
type Narrator interface {
	Narrate(ctx context.Context, events []sensory.Event) (string, error)
}

// StubNarrator renders event descriptions verbatim, one per line.
type StubNarrator struct{}

// Ensure StubNarrator implements Narrator
var _ Narrator = (*StubNarrator)(nil)

// NewStubNarrator creates the stub.
func NewStubNarrator() *StubNarrator {
	return &StubNarrator{}
}

// Narrate joins the event descriptions. Events without a description are
// skipped.
func (s *StubNarrator) Narrate(_ context.Context, events []sensory.Event) (string, error) {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		if e.Description != "" {
			lines = append(lines, e.Description)
		}
	}
	return strings.Join(lines, "\n"), nil
}
