package actor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/npc-engine/pkg/dialogue"
	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// Sighting is the last known observation of a target.
type Sighting struct {
	TargetID string         `json:"target_id"`
	Location world.Position `json:"location"`
	SeenAt   time.Time      `json:"seen_at"`
}

// SightingTTL is how long a sighting keeps a target trackable.
const SightingTTL = 30 * time.Second

// Agent is one NPC: a state machine plus sensory memory and an optional
// dialogue cursor. The manager exclusively owns the canonical records and
// mutates agents every tick; nothing else writes to them.
type Agent struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Position world.Position `json:"position"`

	Archetype Archetype `json:"archetype"`
	Stats     StatBlock `json:"stats"`
	State     State     `json:"state"`

	SensoryRange float64               `json:"sensory_range"`
	Capabilities sensory.CapabilitySet `json:"capabilities,omitempty"`
	Memory       *sensory.Memory       `json:"memory,omitempty"`

	Faction          string   `json:"faction,omitempty"`
	HostileFactions  []string `json:"hostile_factions,omitempty"`
	FriendlyFactions []string `json:"friendly_factions,omitempty"`

	PatrolRoute []world.Position `json:"patrol_route,omitempty"`
	PatrolIndex int              `json:"patrol_index,omitempty"`
	Home        *world.Position  `json:"home,omitempty"`

	LastSighting *Sighting `json:"last_sighting,omitempty"`

	// Reaction side effects. Observable but never force a transition.
	Alerted       bool            `json:"alerted,omitempty"`
	InvestigateAt *world.Position `json:"investigate_at,omitempty"`

	// MoveTarget is where the agent wants to go. Movement itself is
	// delegated to an external collaborator.
	MoveTarget *world.Position `json:"move_target,omitempty"`

	// DialogueID names the attached graph; DialogueCursor is the current
	// node. The graph itself is attached at runtime, not serialized.
	DialogueID     string `json:"dialogue_id,omitempty"`
	DialogueCursor string `json:"dialogue_cursor,omitempty"`

	graph *dialogue.Graph
	actor *d20.Actor // built from Stats; used for attribute lookups
}

// New finalizes a directly constructed agent: validates tags, applies
// defaults, and builds the attribute actor from the stat block.
func New(a *Agent) (*Agent, error) {
	if a == nil {
		return nil, fmt.Errorf("agent cannot be nil")
	}
	if a.ID == "" {
		return nil, fmt.Errorf("agent ID cannot be empty")
	}
	if !a.Archetype.Valid() {
		return nil, fmt.Errorf("invalid archetype %q", a.Archetype)
	}
	if a.State == "" {
		a.State = StateIdle
	}
	if !a.State.Valid() {
		return nil, fmt.Errorf("invalid state %q", a.State)
	}
	if a.Stats.MaxHealth <= 0 {
		a.Stats.MaxHealth = 10
	}
	if a.Stats.Health <= 0 || a.Stats.Health > a.Stats.MaxHealth {
		a.Stats.Health = a.Stats.MaxHealth
	}
	if a.Capabilities == nil {
		a.Capabilities = sensory.NewCapabilitySet(sensory.CapabilitySight)
	}
	if a.Memory == nil {
		a.Memory = sensory.NewMemory(sensory.DefaultMemoryCapacity)
	}
	actor, err := buildActor(a.ID, &a.Stats)
	if err != nil {
		return nil, fmt.Errorf("failed to build attribute actor: %w", err)
	}
	a.actor = actor
	return a, nil
}

// buildActor constructs the d20 actor backing attribute lookups.
func buildActor(id string, stats *StatBlock) (*d20.Actor, error) {
	return d20.NewActor(id).
		WithHP(stats.MaxHealth).
		WithAC(10).
		WithAttributes(stats.ToAttributes()).
		Build()
}

// CombatActor exposes the backing d20 actor for combat-resolution
// collaborators, e.g. to apply combat modifiers to a reported roll.
func (a *Agent) CombatActor() *d20.Actor {
	return a.actor
}

// Attribute looks up a named attribute, satisfying dialogue.Participant.
func (a *Agent) Attribute(name string) (int, bool) {
	if a.actor != nil {
		return a.actor.Attribute(name)
	}
	attrs := a.Stats.ToAttributes()
	v, ok := attrs[name]
	return v, ok
}

// IsHostileTo resolves hostility toward a faction. Explicit hostile-faction
// membership wins; beyond that, hostile-category archetypes treat any faction
// that is neither their own nor friendly as an enemy.
func (a *Agent) IsHostileTo(faction string) bool {
	for _, f := range a.HostileFactions {
		if f == faction {
			return true
		}
	}
	if !a.Archetype.HostileCategory() {
		return false
	}
	if faction == a.Faction {
		return false
	}
	for _, f := range a.FriendlyFactions {
		if f == faction {
			return false
		}
	}
	return true
}

// ProcessSensoryEvents filters events through the perception rule, copies
// what the agent notices into its private memory, and fires the archetype
// reaction hook. Events are considered in the order given (feed time order);
// self-sourced events are ignored. Returned strings describe reactions for
// the caller to log.
func (a *Agent) ProcessSensoryEvents(events []sensory.Event) []string {
	var reactions []string
	for _, e := range events {
		if e.SourceID == a.ID {
			continue
		}
		if !sensory.Perceptible(e, a.Position, a.SensoryRange, a.Capabilities) {
			continue
		}
		a.Memory.Remember(e)
		if desc := a.reactTo(e); desc != "" {
			reactions = append(reactions, desc)
		}
	}
	return reactions
}

// AttachDialogue attaches a conversation graph. A stale cursor that does not
// reference a node in the new graph is cleared.
func (a *Agent) AttachDialogue(g *dialogue.Graph) {
	a.graph = g
	if g == nil {
		a.DialogueID = ""
		a.DialogueCursor = ""
		return
	}
	a.DialogueID = g.ID()
	if a.DialogueCursor != "" {
		if _, ok := g.Node(a.DialogueCursor); !ok {
			a.DialogueCursor = ""
		}
	}
}

// Dialogue returns the attached conversation graph, if any.
func (a *Agent) Dialogue() *dialogue.Graph {
	return a.graph
}

// InDialogue reports whether a conversation is active.
func (a *Agent) InDialogue() bool {
	return a.DialogueCursor != ""
}

// StartDialogue begins the attached conversation: the cursor moves to the
// graph's root and the agent starts talking.
func (a *Agent) StartDialogue() (dialogue.Step, error) {
	if a.graph == nil {
		return dialogue.Step{}, dialogue.ErrDialogueNotFound
	}
	step := a.graph.Start()
	a.DialogueCursor = step.NodeID
	a.State = StateTalking
	return step, nil
}

// ContinueDialogue advances the active conversation with a response
// selection. Errors leave the cursor untouched; a terminator clears the
// cursor and resets the agent to idle.
func (a *Agent) ContinueDialogue(responseID string) (dialogue.Step, error) {
	if a.DialogueCursor == "" {
		return dialogue.Step{}, dialogue.ErrNoActiveDialogue
	}
	if a.graph == nil {
		return dialogue.Step{}, dialogue.ErrDialogueNotFound
	}
	step, err := a.graph.Advance(a.DialogueCursor, responseID, a)
	if err != nil {
		return dialogue.Step{}, err
	}
	if step.Ended {
		a.EndDialogue()
		return step, nil
	}
	a.DialogueCursor = step.NodeID
	return step, nil
}

// EndDialogue clears the cursor and returns the agent to idle.
func (a *Agent) EndDialogue() {
	a.DialogueCursor = ""
	if a.State == StateTalking {
		a.State = StateIdle
	}
}

// InteractionResult is the structured outcome of a direct interaction.
type InteractionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Interact is the generic interaction contract. Verbs without a dedicated
// handler fall back here rather than failing.
func (a *Agent) Interact(initiatorID, verb string) InteractionResult {
	return InteractionResult{
		Success: true,
		Message: fmt.Sprintf("%s doesn't respond to that.", a.Name),
	}
}

// Snapshot is a read-only view of an agent for introspection.
type Snapshot struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Archetype  Archetype      `json:"archetype"`
	State      State          `json:"state"`
	Position   world.Position `json:"position"`
	Health     int            `json:"health"`
	MaxHealth  int            `json:"max_health"`
	MemoryLen  int            `json:"memory_len"`
	InDialogue bool           `json:"in_dialogue"`
}

// Snapshot captures the agent's current externally visible state.
func (a *Agent) Snapshot() Snapshot {
	return Snapshot{
		ID:         a.ID,
		Name:       a.Name,
		Archetype:  a.Archetype,
		State:      a.State,
		Position:   a.Position,
		Health:     a.Stats.Health,
		MaxHealth:  a.Stats.MaxHealth,
		MemoryLen:  a.Memory.Len(),
		InDialogue: a.InDialogue(),
	}
}

// UnmarshalJSON reconstructs an agent and rebuilds its attribute actor. The
// dialogue graph is not serialized; reattach it after loading.
func (a *Agent) UnmarshalJSON(data []byte) error {
	type alias Agent
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("failed to unmarshal agent: %w", err)
	}
	*a = Agent(tmp)
	if a.Memory == nil {
		a.Memory = sensory.NewMemory(sensory.DefaultMemoryCapacity)
	}
	actor, err := buildActor(a.ID, &a.Stats)
	if err != nil {
		return fmt.Errorf("failed to rebuild attribute actor: %w", err)
	}
	a.actor = actor
	return nil
}
