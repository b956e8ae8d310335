package actor

import (
	"fmt"

	"github.com/jwebster45206/npc-engine/pkg/sensory"
)

// reactTo applies the archetype-specific reaction to a freshly perceived
// event and returns a short description of it, or "" when the agent ignores
// the event. Reactions are observable side effects (alert flags, points of
// interest) that inform behavior; they never force a transition. Transitions
// remain governed solely by the table.
func (a *Agent) reactTo(e sensory.Event) string {
	switch a.Archetype {
	case ArchetypeGuard:
		switch e.Type {
		case sensory.EventLoudNoise, sensory.EventExplosion:
			loc := e.Location
			a.InvestigateAt = &loc
			return fmt.Sprintf("%s moves to investigate the noise.", a.Name)
		case sensory.EventCombat:
			loc := e.Location
			a.InvestigateAt = &loc
			a.Alerted = true
			return fmt.Sprintf("%s rushes toward the fighting.", a.Name)
		case sensory.EventTheft:
			a.Alerted = true
			return fmt.Sprintf("%s goes on alert, scanning for the thief.", a.Name)
		}
	case ArchetypeMerchant:
		if e.Type == sensory.EventTheft {
			a.Alerted = true
			return fmt.Sprintf("%s clutches the till and watches the crowd.", a.Name)
		}
	case ArchetypeFriendly:
		if e.Type == sensory.EventCombat || e.Type == sensory.EventExplosion {
			return fmt.Sprintf("%s hides from the violence.", a.Name)
		}
	case ArchetypeHostile, ArchetypeMonster:
		if e.Type == sensory.EventCombat || e.Type == sensory.EventLoudNoise {
			loc := e.Location
			a.InvestigateAt = &loc
			return fmt.Sprintf("%s turns toward the commotion.", a.Name)
		}
	case ArchetypeAnimal:
		if e.Type == sensory.EventLoudNoise || e.Type == sensory.EventExplosion {
			return fmt.Sprintf("%s startles and backs away.", a.Name)
		}
	case ArchetypeNeutral:
		// Neutral bystanders take note but do nothing visible.
	}
	return ""
}
