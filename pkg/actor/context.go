package actor

import (
	"log/slog"
	"time"

	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// DefaultMeleeRange is the distance at which a chase closes into a fight,
// in world units.
const DefaultMeleeRange = 2.0

// TickContext carries everything an agent may observe during one tick: the
// resolved room, co-located agents and players, and the in-range slice of the
// shared event feed in feed (time) order. The manager builds one per agent
// per tick.
type TickContext struct {
	Now        time.Time
	Room       *world.Room
	Agents     []*Agent // co-located agents, excluding the ticking agent
	Players    []world.Player
	Events     []sensory.Event
	MeleeRange float64
	Logger     *slog.Logger
}

// TargetPosition resolves the current position of a co-located agent or
// player by ID.
func (tc *TickContext) TargetPosition(id string) (world.Position, bool) {
	for _, other := range tc.Agents {
		if other.ID == id {
			return other.Position, true
		}
	}
	for _, p := range tc.Players {
		if p.ID == id {
			return p.Position, true
		}
	}
	return world.Position{}, false
}

func (tc *TickContext) meleeRange() float64 {
	if tc.MeleeRange > 0 {
		return tc.MeleeRange
	}
	return DefaultMeleeRange
}

func (tc *TickContext) now() time.Time {
	if tc.Now.IsZero() {
		return time.Now()
	}
	return tc.Now
}
