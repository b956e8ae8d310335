package sensory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// EventType identifies the kind of perceivable occurrence.
type EventType string

const (
	EventExplosion     EventType = "explosion"
	EventCombat        EventType = "combat"
	EventTheft         EventType = "theft"
	EventMagic         EventType = "magic"
	EventLoudNoise     EventType = "loud_noise"
	EventPlayerEntered EventType = "player_entered"
	EventItemUsed      EventType = "item_used"
)

// Capability is one sense an agent can perceive events with.
type Capability string

const (
	CapabilitySight      Capability = "sight"
	CapabilitySound      Capability = "sound"
	CapabilitySmell      Capability = "smell"
	CapabilityTouch      Capability = "touch"
	CapabilityTelepathic Capability = "telepathic"
)

// CapabilitySet is the set of senses available to an agent.
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// Event is an immutable record of a perceivable occurrence in the world.
type Event struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	SourceID    string         `json:"source_id,omitempty"`
	Location    world.Position `json:"location"`
	Intensity   float64        `json:"intensity"` // always in [0,1]
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewEvent creates an event with a generated ID and the current time.
// Intensity is clamped to [0,1] regardless of input.
func NewEvent(t EventType, sourceID string, loc world.Position, intensity float64, description string) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        t,
		SourceID:    sourceID,
		Location:    loc,
		Intensity:   ClampIntensity(intensity),
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// ClampIntensity bounds an intensity value to [0,1].
func ClampIntensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Perceptible reports whether an event registers for a perceiver at pos with
// the given nominal sensory range and capability set. Intensity scales the
// effective range: a faint event is perceivable only up close, an intense one
// at full nominal range.
func Perceptible(e Event, pos world.Position, sensoryRange float64, caps CapabilitySet) bool {
	if pos.Distance(e.Location) > sensoryRange*e.Intensity {
		return false
	}
	return capabilityMatch(e.Type, caps)
}

// capabilityMatch applies the type-appropriate capability rule: explosions and
// loud noises are heard, combat and theft are seen or heard, magic is sensed
// telepathically or seen, and everything else defaults to sight.
func capabilityMatch(t EventType, caps CapabilitySet) bool {
	switch t {
	case EventExplosion, EventLoudNoise:
		return caps.Has(CapabilitySound)
	case EventCombat, EventTheft:
		return caps.Has(CapabilitySight) || caps.Has(CapabilitySound)
	case EventMagic:
		return caps.Has(CapabilityTelepathic) || caps.Has(CapabilitySight)
	default:
		return caps.Has(CapabilitySight)
	}
}
