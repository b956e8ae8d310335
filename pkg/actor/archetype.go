package actor

import (
	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// Archetype is the fixed tagged set of agent kinds. Reaction hooks and
// hostility resolution switch over it exhaustively, so a new archetype is a
// compile-checked extension point.
type Archetype string

const (
	ArchetypeFriendly Archetype = "friendly"
	ArchetypeNeutral  Archetype = "neutral"
	ArchetypeHostile  Archetype = "hostile"
	ArchetypeMerchant Archetype = "merchant"
	ArchetypeGuard    Archetype = "guard"
	ArchetypeMonster  Archetype = "monster"
	ArchetypeAnimal   Archetype = "animal"
)

// Valid reports whether a is a member of the fixed archetype set.
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeFriendly, ArchetypeNeutral, ArchetypeHostile,
		ArchetypeMerchant, ArchetypeGuard, ArchetypeMonster, ArchetypeAnimal:
		return true
	}
	return false
}

// HostileCategory reports whether agents of this archetype attack targets on
// sight.
func (a Archetype) HostileCategory() bool {
	switch a {
	case ArchetypeHostile, ArchetypeMonster:
		return true
	case ArchetypeFriendly, ArchetypeNeutral, ArchetypeMerchant,
		ArchetypeGuard, ArchetypeAnimal:
		return false
	}
	return false
}

// templateFor returns the base agent for an archetype. Overrides are applied
// by NewFromArchetype; the template carries typical stats, senses and faction.
func templateFor(a Archetype) Agent {
	switch a {
	case ArchetypeGuard:
		return Agent{
			Archetype:    ArchetypeGuard,
			Stats:        StatBlock{MaxHealth: 30, Strength: 14, Dexterity: 12, Intelligence: 10, Charisma: 10, Level: 2},
			SensoryRange: 8.0,
			Capabilities: sensory.NewCapabilitySet(sensory.CapabilitySight, sensory.CapabilitySound),
			Faction:      "town",
		}
	case ArchetypeMerchant:
		return Agent{
			Archetype:    ArchetypeMerchant,
			Stats:        StatBlock{MaxHealth: 15, Strength: 8, Dexterity: 10, Intelligence: 13, Charisma: 15, Level: 1},
			SensoryRange: 5.0,
			Capabilities: sensory.NewCapabilitySet(sensory.CapabilitySight, sensory.CapabilitySound),
			Faction:      "town",
		}
	case ArchetypeMonster:
		return Agent{
			Archetype:        ArchetypeMonster,
			Stats:            StatBlock{MaxHealth: 40, Strength: 16, Dexterity: 11, Intelligence: 4, Charisma: 4, Level: 3},
			SensoryRange:     10.0,
			Capabilities:     sensory.NewCapabilitySet(sensory.CapabilitySight, sensory.CapabilitySmell, sensory.CapabilitySound),
			Faction:          "wild",
			HostileFactions:  []string{"town", "adventurers"},
			FriendlyFactions: []string{"wild"},
		}
	case ArchetypeHostile:
		return Agent{
			Archetype:       ArchetypeHostile,
			Stats:           StatBlock{MaxHealth: 20, Strength: 12, Dexterity: 13, Intelligence: 9, Charisma: 7, Level: 1},
			SensoryRange:    7.0,
			Capabilities:    sensory.NewCapabilitySet(sensory.CapabilitySight, sensory.CapabilitySound),
			Faction:         "bandits",
			HostileFactions: []string{"town", "adventurers"},
		}
	case ArchetypeFriendly:
		return Agent{
			Archetype:    ArchetypeFriendly,
			Stats:        StatBlock{MaxHealth: 10, Strength: 8, Dexterity: 10, Intelligence: 10, Charisma: 12, Level: 1},
			SensoryRange: 5.0,
			Capabilities: sensory.NewCapabilitySet(sensory.CapabilitySight, sensory.CapabilitySound),
			Faction:      "town",
		}
	case ArchetypeAnimal:
		return Agent{
			Archetype:    ArchetypeAnimal,
			Stats:        StatBlock{MaxHealth: 8, Strength: 6, Dexterity: 14, Intelligence: 2, Charisma: 5, Level: 1},
			SensoryRange: 12.0,
			Capabilities: sensory.NewCapabilitySet(sensory.CapabilitySound, sensory.CapabilitySmell),
			Faction:      "wild",
		}
	case ArchetypeNeutral:
		return Agent{
			Archetype:    ArchetypeNeutral,
			Stats:        StatBlock{MaxHealth: 12, Strength: 10, Dexterity: 10, Intelligence: 10, Charisma: 10, Level: 1},
			SensoryRange: 6.0,
			Capabilities: sensory.NewCapabilitySet(sensory.CapabilitySight, sensory.CapabilitySound),
			Faction:      "",
		}
	}
	return Agent{Archetype: ArchetypeNeutral}
}

// NewFromArchetype creates an agent from the archetype's template, applying
// the required identity fields on top.
func NewFromArchetype(id, name string, archetype Archetype, pos world.Position) (*Agent, error) {
	a := templateFor(archetype)
	a.ID = id
	a.Name = name
	a.Position = pos
	return New(&a)
}
