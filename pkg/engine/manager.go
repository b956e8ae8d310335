// Package engine provides the AgentManager, the orchestrator that owns the
// agent registry and the shared event feed, ticks every agent, and brokers
// player-agent interactions. All mutation of the registry and feed is
// method-mediated: no raw handle to either collection is ever exposed, which
// preserves the single-writer discipline the synchronous tick model relies
// on.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jwebster45206/npc-engine/pkg/actor"
	"github.com/jwebster45206/npc-engine/pkg/combat"
	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// DefaultTickInterval is the minimum time between executed ticks.
const DefaultTickInterval = time.Second

// Config tunes the manager.
type Config struct {
	TickInterval   time.Duration
	FeedCapacity   int
	DecayHorizon   time.Duration
	MemoryCapacity int
	MeleeRange     float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		TickInterval:   DefaultTickInterval,
		FeedCapacity:   sensory.DefaultFeedCapacity,
		DecayHorizon:   sensory.DefaultDecayHorizon,
		MemoryCapacity: sensory.DefaultMemoryCapacity,
		MeleeRange:     actor.DefaultMeleeRange,
	}
}

// AgentManager owns the canonical agent records. Agents are ticked strictly
// sequentially in registration order; one agent's failing update never halts
// the pass for the rest of the registry.
type AgentManager struct {
	cfg      Config
	world    *world.World
	feed     *sensory.Feed
	agents   map[string]*actor.Agent
	order    []string
	lastTick time.Time
	resolver combat.Resolver
	logger   *slog.Logger
}

// NewAgentManager creates a manager over the given room registry.
func NewAgentManager(cfg Config, w *world.World, logger *slog.Logger) *AgentManager {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.MemoryCapacity <= 0 {
		cfg.MemoryCapacity = sensory.DefaultMemoryCapacity
	}
	if cfg.MeleeRange <= 0 {
		cfg.MeleeRange = actor.DefaultMeleeRange
	}
	if w == nil {
		w = world.NewWorld()
	}
	return &AgentManager{
		cfg:    cfg,
		world:  w,
		feed:   sensory.NewFeed(cfg.FeedCapacity, cfg.DecayHorizon),
		agents: make(map[string]*actor.Agent),
		order:  make([]string, 0),
		logger: logger,
	}
}

// WithResolver sets the external combat-resolution collaborator. Returns the
// manager for chaining.
func (m *AgentManager) WithResolver(r combat.Resolver) *AgentManager {
	m.resolver = r
	return m
}

// AddAgent registers an agent. Re-adding an existing ID replaces the record
// without changing its tick order.
func (m *AgentManager) AddAgent(a *actor.Agent) error {
	if a == nil {
		return fmt.Errorf("agent cannot be nil")
	}
	if a.ID == "" {
		return fmt.Errorf("agent ID cannot be empty")
	}
	// Agents arriving with an empty memory adopt the manager's configured
	// capacity; remembered events from a restored snapshot are kept as-is.
	if a.Memory == nil || a.Memory.Len() == 0 {
		a.Memory = sensory.NewMemory(m.cfg.MemoryCapacity)
	}
	if _, exists := m.agents[a.ID]; !exists {
		m.order = append(m.order, a.ID)
	}
	m.agents[a.ID] = a
	return nil
}

// RemoveAgent destroys an agent record. Removal is the only way an agent
// leaves the registry; there is no implicit garbage collection.
func (m *AgentManager) RemoveAgent(id string) bool {
	if _, exists := m.agents[id]; !exists {
		return false
	}
	delete(m.agents, id)
	for i, ordered := range m.order {
		if ordered == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Agent returns the registered agent with the given ID.
func (m *AgentManager) Agent(id string) (*actor.Agent, bool) {
	a, ok := m.agents[id]
	return a, ok
}

// Agents returns all registered agents in registration order.
func (m *AgentManager) Agents() []*actor.Agent {
	out := make([]*actor.Agent, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.agents[id])
	}
	return out
}

// AgentsInRoom returns the agents whose position falls inside the room's
// bounds. O(rooms + agents) per call; fine at this scale.
func (m *AgentManager) AgentsInRoom(roomID string) []*actor.Agent {
	room, ok := m.world.Room(roomID)
	if !ok {
		return nil
	}
	var out []*actor.Agent
	for _, id := range m.order {
		a := m.agents[id]
		if room.Contains(a.Position) {
			out = append(out, a)
		}
	}
	return out
}

// AgentCount returns the number of registered agents.
func (m *AgentManager) AgentCount() int {
	return len(m.agents)
}

// ActiveEventCount returns the number of events currently in the shared feed.
func (m *AgentManager) ActiveEventCount() int {
	return m.feed.Len()
}

// Snapshots returns a per-agent state snapshot for every registered agent, in
// registration order.
func (m *AgentManager) Snapshots() []actor.Snapshot {
	out := make([]actor.Snapshot, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.agents[id].Snapshot())
	}
	return out
}

// LastTick returns when the last executed tick ran.
func (m *AgentManager) LastTick() time.Time {
	return m.lastTick
}

// Tick runs one simulation step across every registered agent and returns
// the number of agents ticked. Unless forced, the call is a no-op when the
// minimum tick interval has not elapsed since the last executed tick. Steps
// are strictly ordered: purge expired shared events, tick each agent in
// registration order, advance the last-tick timestamp.
func (m *AgentManager) Tick(players []world.Player, force bool) int {
	now := time.Now()
	if !force && !m.lastTick.IsZero() && now.Sub(m.lastTick) < m.cfg.TickInterval {
		return 0
	}

	m.feed.Purge(now)
	events := m.feed.Events()

	ticked := 0
	for _, id := range m.order {
		a := m.agents[id]
		m.tickAgent(a, now, players, events)
		ticked++
	}

	m.lastTick = now
	return ticked
}

// tickAgent builds one agent's context and runs its tick, isolating panics
// so a bad agent cannot halt the pass.
func (m *AgentManager) tickAgent(a *actor.Agent, now time.Time, players []world.Player, events []sensory.Event) {
	defer func() {
		if r := recover(); r != nil && m.logger != nil {
			m.logger.Error("Agent tick panicked",
				"agent", a.ID,
				"state", a.State,
				"panic", r)
		}
	}()

	room, _ := m.world.RoomAt(a.Position)

	var nearby []*actor.Agent
	var nearbyPlayers []world.Player
	if room != nil {
		for _, otherID := range m.order {
			other := m.agents[otherID]
			if other.ID != a.ID && room.Contains(other.Position) {
				nearby = append(nearby, other)
			}
		}
		for _, p := range players {
			if room.Contains(p.Position) {
				nearbyPlayers = append(nearbyPlayers, p)
			}
		}
	}

	// Coarse distance cut; the agent applies the full perceivability rule.
	var inRange []sensory.Event
	for _, e := range events {
		if a.Position.Distance(e.Location) <= a.SensoryRange {
			inRange = append(inRange, e)
		}
	}

	ctx := &actor.TickContext{
		Now:        now,
		Room:       room,
		Agents:     nearby,
		Players:    nearbyPlayers,
		Events:     inRange,
		MeleeRange: m.cfg.MeleeRange,
		Logger:     m.logger,
	}

	result := a.Tick(ctx)

	if m.logger != nil && result.Description != "" {
		m.logger.Debug("Agent acted",
			"agent", a.ID,
			"state", result.State,
			"action", result.Description)
	}
	if result.Damage > 0 {
		m.resolveAttack(a, result)
	}
}

// resolveAttack hands a reported damage roll to the combat-resolution
// collaborator, adding the attacker's combat modifiers. Without a resolver the
// roll is logged and dropped; either way the target's health is untouched
// here.
func (m *AgentManager) resolveAttack(a *actor.Agent, result actor.ActionResult) {
	if m.resolver == nil {
		if m.logger != nil {
			m.logger.Info("Damage reported",
				"agent", a.ID,
				"target", result.TargetID,
				"damage", result.Damage)
		}
		return
	}
	atk := combat.Attack{
		AttackerID: a.ID,
		TargetID:   result.TargetID,
		Damage:     result.Damage + combat.AttackBonus(a.CombatActor()),
	}
	if err := m.resolver.Resolve(context.Background(), atk); err != nil && m.logger != nil {
		m.logger.Error("Combat resolution failed",
			"agent", a.ID,
			"target", atk.TargetID,
			"error", err)
	}
}
