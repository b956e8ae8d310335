package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jwebster45206/npc-engine/internal/config"
	"github.com/jwebster45206/npc-engine/internal/logger"
	"github.com/jwebster45206/npc-engine/internal/services"
	"github.com/jwebster45206/npc-engine/internal/storage"
	"github.com/jwebster45206/npc-engine/pkg/actor"
	"github.com/jwebster45206/npc-engine/pkg/combat"
	"github.com/jwebster45206/npc-engine/pkg/dialogue"
	"github.com/jwebster45206/npc-engine/pkg/engine"
	"github.com/jwebster45206/npc-engine/pkg/sensory"
	"github.com/jwebster45206/npc-engine/pkg/world"
)

// main wires the engine and runs a short demonstration simulation: a guard
// patrolling a market square, a merchant with a small dialogue tree, and a
// monster drawn in by an explosion.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.Setup(cfg)
	lg.Info("Starting NPC engine simulation",
		"environment", cfg.Environment,
		"tick_interval", cfg.TickInterval)

	w := world.NewWorld()
	w.AddRoom(&world.Room{
		ID:   "market",
		Name: "Market Square",
		Min:  world.Position{X: 0, Y: 0, Z: 0},
		Max:  world.Position{X: 20, Y: 20, Z: 5},
	})
	w.AddRoom(&world.Room{
		ID:   "gate",
		Name: "North Gate",
		Min:  world.Position{X: 0, Y: 21, Z: 0},
		Max:  world.Position{X: 20, Y: 40, Z: 5},
	})

	mgr := engine.NewAgentManager(engine.Config{
		TickInterval:   cfg.TickInterval,
		FeedCapacity:   cfg.FeedCapacity,
		DecayHorizon:   cfg.DecayHorizon,
		MemoryCapacity: cfg.MemoryCapacity,
		MeleeRange:     cfg.MeleeRange,
	}, w, lg).WithResolver(combat.NewLogResolver(lg))

	guard, err := actor.NewFromArchetype("guard-1", "Town Guard", actor.ArchetypeGuard, world.Position{X: 5, Y: 5})
	if err != nil {
		lg.Error("Failed to create guard", "error", err)
		os.Exit(1)
	}
	guard.PatrolRoute = []world.Position{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
	}

	merchant, err := actor.NewFromArchetype("merchant-1", "Mara the Trader", actor.ArchetypeMerchant, world.Position{X: 10, Y: 10})
	if err != nil {
		lg.Error("Failed to create merchant", "error", err)
		os.Exit(1)
	}
	graph, err := dialogue.NewBuilder("merchant_greeting", "Mara's Greeting").
		AddRootNode("greeting", "Welcome, traveler. Looking to buy?").
		AddNode("wares", "Finest goods this side of the gate.").
		AddResponse("greeting", "browse", "Show me your wares.", "wares").
		AddResponse("greeting", "leave", "Just passing through.", "").
		AddResponse("wares", "done", "Maybe later.", "").
		Build()
	if err != nil {
		lg.Error("Failed to build dialogue", "error", err)
		os.Exit(1)
	}
	merchant.AttachDialogue(graph)

	monster, err := actor.NewFromArchetype("wolf-1", "Dire Wolf", actor.ArchetypeMonster, world.Position{X: 10, Y: 30})
	if err != nil {
		lg.Error("Failed to create monster", "error", err)
		os.Exit(1)
	}

	for _, a := range []*actor.Agent{guard, merchant, monster} {
		if err := mgr.AddAgent(a); err != nil {
			lg.Error("Failed to register agent", "agent", a.ID, "error", err)
			os.Exit(1)
		}
	}

	players := []world.Player{
		{ID: "player-1", Name: "Wanderer", Position: world.Position{X: 11, Y: 29}, Faction: "adventurers"},
	}

	narrator := services.NewStubNarrator()

	// A few forced ticks with some activity in between.
	mgr.Tick(players, true)

	e := mgr.TriggerExplosion("player-1", world.Position{X: 12, Y: 8}, "A barrel of alchemist's powder detonates.")
	if text, err := narrator.Narrate(context.Background(), []sensory.Event{e}); err == nil && text != "" {
		lg.Info("Narration", "text", text)
	}
	mgr.Tick(players, true)

	res := mgr.Interact("player-1", "merchant-1", "talk")
	lg.Info("Talk", "success", res.Success, "message", res.Message)
	res = mgr.ContinueDialogue("merchant-1", "browse")
	lg.Info("Dialogue", "success", res.Success, "message", res.Message)
	res = mgr.ContinueDialogue("merchant-1", "done")
	lg.Info("Dialogue", "success", res.Success, "message", res.Message)

	mgr.Tick(players, true)

	for _, snap := range mgr.Snapshots() {
		lg.Info("Agent state",
			"agent", snap.ID,
			"state", snap.State,
			"health", snap.Health,
			"memory", snap.MemoryLen)
	}

	// Persist snapshots when a store is reachable; the engine runs fine
	// without one.
	store, err := storage.NewRedisStore(cfg.RedisURL, lg)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			lg.Warn("Snapshot store unreachable, skipping persistence", "error", err)
		} else {
			for _, a := range mgr.Agents() {
				if err := store.SaveAgent(ctx, a); err != nil {
					lg.Error("Failed to save agent", "agent", a.ID, "error", err)
				}
			}
			lg.Info("Agent snapshots saved", "count", mgr.AgentCount())
		}
		defer store.Close()
	}

	lg.Info("Simulation complete",
		"agents", mgr.AgentCount(),
		"active_events", mgr.ActiveEventCount())
}
