package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/npc-engine/pkg/actor"
	"github.com/jwebster45206/npc-engine/pkg/dialogue"
	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// TestExplosionPerception walks a guard through two explosions: one close and
// loud enough to notice, one far too faint to carry.
func TestExplosionPerception(t *testing.T) {
	m := newTestManager(t)
	guard := addAgent(t, m, "g1", "Guard", actor.ArchetypeGuard, world.Position{})
	require.Equal(t, 8.0, guard.SensoryRange)

	// 8.0 * 0.8 = 6.4 >= 3, perceived.
	m.TriggerEvent(sensory.EventExplosion, "src", world.Position{X: 3}, 0.8, "a nearby blast")
	// 8.0 * 0.5 = 4.0 < 100, not perceived.
	m.TriggerEvent(sensory.EventExplosion, "src", world.Position{X: 100}, 0.5, "a distant blast")

	m.Tick(nil, true)

	recalled := guard.Memory.Recall()
	require.Len(t, recalled, 1)
	assert.Equal(t, "a nearby blast", recalled[0].Description)
	assert.NotNil(t, guard.InvestigateAt, "guard should move to investigate")
}

// TestConversationLifecycle runs a two-node conversation from greeting to a
// terminal farewell and checks the state and cursor at each step.
func TestConversationLifecycle(t *testing.T) {
	g, err := dialogue.NewBuilder("farewell", "Farewell Chat").
		AddRootNode("greeting", "Hello, traveler.").
		AddNode("end", "Safe roads, then.").
		AddResponse("greeting", "continue", "And to you.", "end").
		AddResponse("end", "farewell", "Goodbye.", "").
		Build()
	require.NoError(t, err)

	m := newTestManager(t)
	npc := addAgent(t, m, "n1", "Villager", actor.ArchetypeFriendly, world.Position{X: 5, Y: 5})
	npc.AttachDialogue(g)

	res := m.Interact("p1", "n1", "talk")
	require.True(t, res.Success)
	assert.Equal(t, "Hello, traveler.", res.Message)
	assert.Equal(t, actor.StateTalking, npc.State)
	assert.Equal(t, "greeting", npc.DialogueCursor)

	res = m.ContinueDialogue("n1", "continue")
	require.True(t, res.Success)
	assert.Equal(t, "Safe roads, then.", res.Message)
	assert.Equal(t, actor.StateTalking, npc.State)

	res = m.ContinueDialogue("n1", "farewell")
	require.True(t, res.Success)
	assert.True(t, res.Step.Ended)
	assert.Equal(t, actor.StateIdle, npc.State)
	assert.Empty(t, npc.DialogueCursor)
}

// TestAttackRipplesToBystanders checks that an attack puts the target into
// fighting and that the emitted combat event reaches a nearby witness.
func TestAttackRipplesToBystanders(t *testing.T) {
	m := newTestManager(t)
	guard := addAgent(t, m, "g1", "Guard", actor.ArchetypeGuard, world.Position{X: 5, Y: 5})
	bystander := addAgent(t, m, "n1", "Bystander", actor.ArchetypeNeutral, world.Position{X: 7, Y: 5})

	res := m.Interact("p1", "g1", "attack")
	require.True(t, res.Success)
	assert.Equal(t, actor.StateFighting, guard.State)
	require.Equal(t, 1, m.ActiveEventCount())

	m.Tick(nil, true)

	recalled := bystander.Memory.Recall()
	require.Len(t, recalled, 1)
	assert.Equal(t, sensory.EventCombat, recalled[0].Type)
	assert.InDelta(t, 0.8, recalled[0].Intensity, 1e-9)
	assert.Equal(t, world.Position{X: 5, Y: 5}, recalled[0].Location)
}
