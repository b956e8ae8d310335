package actor

import (
	"testing"
	"time"

	"github.com/jwebster45206/npc-engine/pkg/world"
)

func testCtx(now time.Time) *TickContext {
	return &TickContext{Now: now, MeleeRange: DefaultMeleeRange}
}

func mustAgent(t *testing.T, id, name string, archetype Archetype, pos world.Position) *Agent {
	t.Helper()
	a, err := NewFromArchetype(id, name, archetype, pos)
	if err != nil {
		t.Fatalf("failed to create agent: %v", err)
	}
	return a
}

func TestIdleToPatrolling(t *testing.T) {
	guard := mustAgent(t, "g1", "Guard", ArchetypeGuard, world.Position{})
	guard.PatrolRoute = []world.Position{{X: 0}, {X: 5}, {X: 10}}

	guard.Tick(testCtx(time.Now()))

	if guard.State != StatePatrolling {
		t.Fatalf("expected patrolling, got %s", guard.State)
	}
	if guard.MoveTarget == nil {
		t.Error("expected a movement request toward the next stop")
	}
}

func TestSingleStopRouteDoesNotPatrol(t *testing.T) {
	guard := mustAgent(t, "g1", "Guard", ArchetypeGuard, world.Position{})
	guard.PatrolRoute = []world.Position{{X: 0}}

	guard.Tick(testCtx(time.Now()))

	if guard.State != StateIdle {
		t.Errorf("expected idle with a single-stop route, got %s", guard.State)
	}
}

func TestPatrolCursorWrapsAround(t *testing.T) {
	guard := mustAgent(t, "g1", "Guard", ArchetypeGuard, world.Position{})
	guard.PatrolRoute = []world.Position{{X: 0}, {X: 5}, {X: 10}}

	// Each tick advances the cursor once, so three ticks wrap back to 0.
	for i := 0; i < 3; i++ {
		guard.Tick(testCtx(time.Now()))
	}
	if guard.PatrolIndex != 0 {
		t.Errorf("expected cursor to wrap to 0, got %d", guard.PatrolIndex)
	}
}

func TestHostileChaseAndMelee(t *testing.T) {
	wolf := mustAgent(t, "w1", "Wolf", ArchetypeMonster, world.Position{})
	player := world.Player{ID: "p1", Name: "Hero", Position: world.Position{X: 5}, Faction: "adventurers"}

	ctx := testCtx(time.Now())
	ctx.Players = []world.Player{player}
	wolf.Tick(ctx)

	if wolf.State != StateChasing {
		t.Fatalf("expected chasing after perceiving hostile target, got %s", wolf.State)
	}
	if wolf.LastSighting == nil || wolf.LastSighting.TargetID != "p1" {
		t.Fatalf("expected sighting of p1, got %+v", wolf.LastSighting)
	}

	// Target closes to melee range on a following tick.
	player.Position = world.Position{X: 1}
	ctx2 := testCtx(time.Now())
	ctx2.Players = []world.Player{player}
	wolf.Tick(ctx2)

	if wolf.State != StateFighting {
		t.Fatalf("expected fighting at melee range, got %s", wolf.State)
	}
}

func TestPatrollingToChasing(t *testing.T) {
	bandit := mustAgent(t, "b1", "Bandit", ArchetypeHostile, world.Position{})
	bandit.PatrolRoute = []world.Position{{X: 0}, {X: 5}}
	bandit.State = StatePatrolling

	ctx := testCtx(time.Now())
	ctx.Players = []world.Player{{ID: "p1", Position: world.Position{X: 3}, Faction: "adventurers"}}
	bandit.Tick(ctx)

	if bandit.State != StateChasing {
		t.Errorf("expected patrol interrupted by hostile sighting, got %s", bandit.State)
	}
}

func TestLowHealthFleesBeforeAnythingElse(t *testing.T) {
	wolf := mustAgent(t, "w1", "Wolf", ArchetypeMonster, world.Position{})
	wolf.State = StateFighting
	wolf.LastSighting = &Sighting{TargetID: "p1", Location: world.Position{X: 1}, SeenAt: time.Now()}
	wolf.Stats.Health = wolf.Stats.MaxHealth / 10 // well below 20%

	ctx := testCtx(time.Now())
	ctx.Players = []world.Player{{ID: "p1", Position: world.Position{X: 1}, Faction: "adventurers"}}
	wolf.Tick(ctx)

	if wolf.State != StateFleeing {
		t.Errorf("expected fleeing regardless of target distance, got %s", wolf.State)
	}
}

func TestFightingBackToChasing(t *testing.T) {
	wolf := mustAgent(t, "w1", "Wolf", ArchetypeMonster, world.Position{})
	wolf.State = StateFighting
	wolf.LastSighting = &Sighting{TargetID: "p1", Location: world.Position{X: 5}, SeenAt: time.Now()}

	ctx := testCtx(time.Now())
	ctx.Players = []world.Player{{ID: "p1", Position: world.Position{X: 5}, Faction: "adventurers"}}
	wolf.Tick(ctx)

	if wolf.State != StateChasing {
		t.Errorf("expected chase when target left melee but is trackable, got %s", wolf.State)
	}
}

func TestChasingToIdleWhenSightingStale(t *testing.T) {
	wolf := mustAgent(t, "w1", "Wolf", ArchetypeMonster, world.Position{})
	wolf.State = StateChasing
	now := time.Now()
	wolf.LastSighting = &Sighting{TargetID: "p1", Location: world.Position{X: 5}, SeenAt: now.Add(-SightingTTL - time.Second)}

	wolf.Tick(testCtx(now))

	if wolf.State != StateIdle {
		t.Errorf("expected idle when no trackable target remains, got %s", wolf.State)
	}
}

func TestDialogueTransitions(t *testing.T) {
	t.Run("idle to talking when cursor set", func(t *testing.T) {
		npc := mustAgent(t, "n1", "Villager", ArchetypeFriendly, world.Position{})
		npc.DialogueCursor = "greeting" // set externally
		npc.Tick(testCtx(time.Now()))
		if npc.State != StateTalking {
			t.Errorf("expected talking, got %s", npc.State)
		}
	})

	t.Run("talking to idle when cursor cleared", func(t *testing.T) {
		npc := mustAgent(t, "n1", "Villager", ArchetypeFriendly, world.Position{})
		npc.State = StateTalking
		npc.Tick(testCtx(time.Now()))
		if npc.State != StateIdle {
			t.Errorf("expected idle, got %s", npc.State)
		}
	})
}

func TestNoTransitionHoldsState(t *testing.T) {
	npc := mustAgent(t, "n1", "Bystander", ArchetypeNeutral, world.Position{})
	npc.Tick(testCtx(time.Now()))
	if npc.State != StateIdle {
		t.Errorf("expected idle to hold, got %s", npc.State)
	}
}

func TestNonHostileArchetypesDoNotChase(t *testing.T) {
	guard := mustAgent(t, "g1", "Guard", ArchetypeGuard, world.Position{})
	guard.HostileFactions = nil

	ctx := testCtx(time.Now())
	ctx.Players = []world.Player{{ID: "p1", Position: world.Position{X: 2}, Faction: "adventurers"}}
	guard.Tick(ctx)

	if guard.State != StateIdle {
		t.Errorf("expected guard to stay idle, got %s", guard.State)
	}
}
