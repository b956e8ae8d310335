package actor

import "github.com/jwebster45206/npc-engine/pkg/world"

// Transition is one row of the state machine: a from/to pair with a guard
// evaluated over the agent and its tick context.
type Transition struct {
	From State
	To   State
	When func(a *Agent, ctx *TickContext) bool
}

// fleeThreshold is the health fraction below which a fighter breaks off.
const fleeThreshold = 0.2

// transitionTable is evaluated in declared order each tick, after sensory
// processing so same-tick perception can drive a transition. The first row
// whose from-state and guard match wins; at most one fires per tick. The
// low-health flee check sits ahead of the chase/fight exchange so low health
// always wins, and chase outranks patrol so a hostile sighting interrupts a
// route.
var transitionTable = []Transition{
	{StateFighting, StateFleeing, lowHealth},
	{StateChasing, StateFighting, targetInMeleeRange},
	{StateFighting, StateChasing, targetLeftMeleeRange},
	{StateChasing, StateIdle, noTrackableTarget},
	{StateIdle, StateChasing, seesHostileTarget},
	{StatePatrolling, StateChasing, seesHostileTarget},
	{StateIdle, StatePatrolling, hasPatrolRoute},
	{StateIdle, StateTalking, dialogueStarted},
	{StateTalking, StateIdle, dialogueOver},
}

// nextState is the pure decide step: it evaluates the transition table and
// returns the resulting state without mutating the agent. No satisfied
// transition is not an error; the agent holds state.
func (a *Agent) nextState(ctx *TickContext) (State, bool) {
	for _, t := range transitionTable {
		if t.From == a.State && t.When(a, ctx) {
			return t.To, true
		}
	}
	return a.State, false
}

func lowHealth(a *Agent, _ *TickContext) bool {
	return a.Stats.HealthRatio() < fleeThreshold
}

func hasPatrolRoute(a *Agent, _ *TickContext) bool {
	return len(a.PatrolRoute) >= 2
}

func dialogueStarted(a *Agent, _ *TickContext) bool {
	return a.InDialogue()
}

func dialogueOver(a *Agent, _ *TickContext) bool {
	return !a.InDialogue()
}

// seesHostileTarget passes when a hostile-category agent has a target it is
// hostile to within plain sensory range. The chase action records the
// sighting; guards stay pure.
func seesHostileTarget(a *Agent, ctx *TickContext) bool {
	if !a.Archetype.HostileCategory() {
		return false
	}
	_, _, ok := a.findHostileTarget(ctx)
	return ok
}

func targetInMeleeRange(a *Agent, ctx *TickContext) bool {
	pos, ok := a.trackedTargetPosition(ctx)
	return ok && a.Position.Distance(pos) <= ctx.meleeRange()
}

func targetLeftMeleeRange(a *Agent, ctx *TickContext) bool {
	if !a.hasTrackableTarget(ctx) {
		return false
	}
	pos, ok := a.trackedTargetPosition(ctx)
	if !ok {
		// Still trackable via the sighting, but no longer co-located.
		return true
	}
	return a.Position.Distance(pos) > ctx.meleeRange()
}

func noTrackableTarget(a *Agent, ctx *TickContext) bool {
	return !a.hasTrackableTarget(ctx)
}

// hasTrackableTarget reports whether the last sighting is fresh enough to
// keep pursuing.
func (a *Agent) hasTrackableTarget(ctx *TickContext) bool {
	if a.LastSighting == nil {
		return false
	}
	return ctx.now().Sub(a.LastSighting.SeenAt) <= SightingTTL
}

// trackedTargetPosition resolves the live position of the sighted target.
func (a *Agent) trackedTargetPosition(ctx *TickContext) (world.Position, bool) {
	if a.LastSighting == nil {
		return world.Position{}, false
	}
	return ctx.TargetPosition(a.LastSighting.TargetID)
}

// findHostileTarget returns the nearest co-located agent or player this agent
// is hostile to, within sensory range.
func (a *Agent) findHostileTarget(ctx *TickContext) (string, world.Position, bool) {
	bestID := ""
	var bestPos world.Position
	bestDist := a.SensoryRange
	found := false
	for _, other := range ctx.Agents {
		if !a.IsHostileTo(other.Faction) {
			continue
		}
		if d := a.Position.Distance(other.Position); d <= bestDist {
			bestID, bestPos, bestDist, found = other.ID, other.Position, d, true
		}
	}
	for _, p := range ctx.Players {
		faction := p.Faction
		if faction == "" {
			faction = "adventurers"
		}
		if !a.IsHostileTo(faction) {
			continue
		}
		if d := a.Position.Distance(p.Position); d <= bestDist {
			bestID, bestPos, bestDist, found = p.ID, p.Position, d, true
		}
	}
	return bestID, bestPos, found
}
