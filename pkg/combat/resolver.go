// Package combat defines the boundary to the external combat-resolution
// collaborator. The agent core computes damage rolls during its fighting
// action but never applies them; a Resolver owns HP mutation and is invoked
// by surrounding code, never from inside a tick.
package combat

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/d20"
)

// Attack is one reported damage roll awaiting resolution.
type Attack struct {
	AttackerID string `json:"attacker_id"`
	TargetID   string `json:"target_id"`
	Damage     int    `json:"damage"`
}

// Resolver applies attack outcomes to the entities it manages.
type Resolver interface {
	Resolve(ctx context.Context, atk Attack) error
}

// LogResolver reports attacks without resolving them. It is the default
// stub: games that want real HP mutation supply their own Resolver.
type LogResolver struct {
	logger *slog.Logger
}

// NewLogResolver creates the reporting stub.
func NewLogResolver(logger *slog.Logger) *LogResolver {
	return &LogResolver{logger: logger}
}

// Resolve logs the attack and drops it.
func (r *LogResolver) Resolve(_ context.Context, atk Attack) error {
	if r.logger != nil {
		r.logger.Info("Attack reported",
			"attacker", atk.AttackerID,
			"target", atk.TargetID,
			"damage", atk.Damage)
	}
	return nil
}

// AttackBonus sums an actor's combat modifiers, for resolvers that honor
// d20-style bonuses when applying a reported roll.
func AttackBonus(actor *d20.Actor) int {
	if actor == nil {
		return 0
	}
	total := 0
	for _, mod := range actor.GetCombatModifiers() {
		total += mod.Value
	}
	return total
}
