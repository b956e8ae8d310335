package engine

import (
	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// Default intensities for the convenience triggers. Explosions carry at
// nearly full nominal range; a pickpocketing is perceivable only up close.
const (
	explosionIntensity = 0.9
	theftIntensity     = 0.3
	loudNoiseIntensity = 0.6
	magicIntensity     = 0.5
)

// TriggerEvent builds a sensory event with an explicit intensity and pushes
// it into the shared feed. Intensity is clamped to [0,1] at creation.
func (m *AgentManager) TriggerEvent(t sensory.EventType, sourceID string, loc world.Position, intensity float64, description string) sensory.Event {
	e := sensory.NewEvent(t, sourceID, loc, intensity, description)
	m.feed.Append(e)
	if m.logger != nil {
		m.logger.Debug("Event triggered",
			"type", e.Type,
			"source", e.SourceID,
			"intensity", e.Intensity)
	}
	return e
}

// TriggerExplosion emits an explosion at loc.
func (m *AgentManager) TriggerExplosion(sourceID string, loc world.Position, description string) sensory.Event {
	return m.TriggerEvent(sensory.EventExplosion, sourceID, loc, explosionIntensity, description)
}

// TriggerTheft emits a theft at loc.
func (m *AgentManager) TriggerTheft(sourceID string, loc world.Position, description string) sensory.Event {
	return m.TriggerEvent(sensory.EventTheft, sourceID, loc, theftIntensity, description)
}

// TriggerLoudNoise emits a loud noise at loc.
func (m *AgentManager) TriggerLoudNoise(sourceID string, loc world.Position, description string) sensory.Event {
	return m.TriggerEvent(sensory.EventLoudNoise, sourceID, loc, loudNoiseIntensity, description)
}

// TriggerMagic emits a magical occurrence at loc.
func (m *AgentManager) TriggerMagic(sourceID string, loc world.Position, description string) sensory.Event {
	return m.TriggerEvent(sensory.EventMagic, sourceID, loc, magicIntensity, description)
}
