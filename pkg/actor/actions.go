package actor

import (
	"fmt"
	"math/rand/v2"
)

// damageVariance bounds the random swing on a damage roll.
const damageVariance = 4

// ActionResult reports the observable effects of one state action. Damage is
// computed here but applied by an external combat-resolution collaborator;
// the core never mutates an opponent's health.
type ActionResult struct {
	State       State  `json:"state"`
	Description string `json:"description,omitempty"`
	TargetID    string `json:"target_id,omitempty"`
	Damage      int    `json:"damage,omitempty"`
}

// Tick runs one simulation step for the agent: sensory processing first (so
// same-tick perception can drive a transition), then one transition at most,
// then the resulting state's action. Reaction and action effects are logged
// through the context; the decide steps stay pure.
func (a *Agent) Tick(ctx *TickContext) ActionResult {
	reactions := a.ProcessSensoryEvents(ctx.Events)
	if ctx.Logger != nil {
		for _, r := range reactions {
			ctx.Logger.Debug("Agent reacted", "agent", a.ID, "reaction", r)
		}
	}

	if next, fired := a.nextState(ctx); fired {
		if ctx.Logger != nil {
			ctx.Logger.Debug("Agent changed state", "agent", a.ID, "from", a.State, "to", next)
		}
		a.State = next
	}

	return a.runAction(ctx)
}

// runAction executes the current state's action and reports its effects.
func (a *Agent) runAction(ctx *TickContext) ActionResult {
	switch a.State {
	case StateIdle:
		return a.actIdle()
	case StatePatrolling:
		return a.actPatrol()
	case StateChasing:
		return a.actChase(ctx)
	case StateFighting:
		return a.actFight(ctx)
	case StateFleeing:
		return a.actFlee()
	case StateTalking:
		// Conversation progression is externally driven by explicit
		// response selection.
		return ActionResult{State: StateTalking}
	case StateDead, StateSleeping, StateWorking:
		return ActionResult{State: a.State}
	}
	return ActionResult{State: a.State}
}

func (a *Agent) actIdle() ActionResult {
	res := ActionResult{State: StateIdle}
	if rand.Float64() < 0.05 {
		res.Description = fmt.Sprintf("%s glances around idly.", a.Name)
	}
	return res
}

// actPatrol advances the route cursor with wrap-around and requests movement
// toward the next stop. Movement itself is delegated externally.
func (a *Agent) actPatrol() ActionResult {
	if len(a.PatrolRoute) == 0 {
		return ActionResult{State: StatePatrolling}
	}
	a.PatrolIndex = (a.PatrolIndex + 1) % len(a.PatrolRoute)
	next := a.PatrolRoute[a.PatrolIndex]
	a.MoveTarget = &next
	return ActionResult{
		State:       StatePatrolling,
		Description: fmt.Sprintf("%s continues the patrol.", a.Name),
	}
}

// actChase records or refreshes the last-known sighting of the target and
// requests movement toward it.
func (a *Agent) actChase(ctx *TickContext) ActionResult {
	res := ActionResult{State: StateChasing}

	if a.LastSighting == nil || !a.hasTrackableTarget(ctx) {
		id, pos, ok := a.findHostileTarget(ctx)
		if !ok {
			return res
		}
		a.LastSighting = &Sighting{TargetID: id, Location: pos, SeenAt: ctx.now()}
	} else if pos, ok := a.trackedTargetPosition(ctx); ok &&
		a.Position.Distance(pos) <= a.SensoryRange {
		a.LastSighting.Location = pos
		a.LastSighting.SeenAt = ctx.now()
	}

	loc := a.LastSighting.Location
	a.MoveTarget = &loc
	res.TargetID = a.LastSighting.TargetID
	res.Description = fmt.Sprintf("%s gives chase.", a.Name)
	return res
}

// actFight computes a damage roll against the tracked target and reports it.
// HP deduction on the target belongs to an external combat-resolution
// collaborator, not this core.
func (a *Agent) actFight(ctx *TickContext) ActionResult {
	res := ActionResult{State: StateFighting}
	if a.LastSighting != nil {
		res.TargetID = a.LastSighting.TargetID
	}
	res.Damage = a.damageRoll()
	res.Description = fmt.Sprintf("%s attacks for %d damage.", a.Name, res.Damage)
	return res
}

// damageRoll is strength plus a small bounded variance, with a floor of 1.
func (a *Agent) damageRoll() int {
	str := a.Stats.Strength
	if v, ok := a.Attribute("strength"); ok {
		str = v
	}
	dmg := str + rand.IntN(damageVariance+1) - damageVariance/2
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// actFlee requests a retreat toward the home location, when one is set.
func (a *Agent) actFlee() ActionResult {
	res := ActionResult{State: StateFleeing}
	if a.Home != nil {
		home := *a.Home
		a.MoveTarget = &home
		res.Description = fmt.Sprintf("%s retreats toward home.", a.Name)
	} else {
		res.Description = fmt.Sprintf("%s looks for a way out.", a.Name)
	}
	return res
}
