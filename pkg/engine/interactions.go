package engine

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/npc-engine/pkg/actor"
	"github.com/jwebster45206/npc-engine/pkg/dialogue"
	"github.com/jwebster45206/npc-engine/pkg/sensory"
)

// Event intensities emitted by interaction handlers.
const (
	socialEventIntensity = 0.2
	combatEventIntensity = 0.8
)

// Result is the structured outcome of an interaction or dialogue call.
// Failures are reported, never thrown: a bad input degrades to a Result with
// Success false and leaves shared state untouched.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Step    *dialogue.Step `json:"step,omitempty"`
}

// Interact dispatches a verb from an initiator (usually a player) to a
// target agent. "talk", "trade" and "attack" have dedicated handlers; any
// other verb falls back to the target's generic interaction contract.
func (m *AgentManager) Interact(initiatorID, targetID, verb string) Result {
	target, ok := m.agents[targetID]
	if !ok {
		return Result{Message: fmt.Sprintf("Agent %q not found.", targetID)}
	}

	switch verb {
	case "talk":
		return m.handleTalk(initiatorID, target)
	case "trade":
		return m.handleTrade(target)
	case "attack":
		return m.handleAttack(initiatorID, target)
	default:
		outcome := target.Interact(initiatorID, verb)
		return Result{Success: outcome.Success, Message: outcome.Message}
	}
}

// handleTalk starts or continues a conversation and lets bystanders notice
// it through a low-intensity social event.
func (m *AgentManager) handleTalk(initiatorID string, target *actor.Agent) Result {
	var step dialogue.Step
	var err error
	if target.InDialogue() {
		step = resumeStep(target)
	} else {
		step, err = target.StartDialogue()
		if err != nil {
			return Result{Message: fmt.Sprintf("%s has nothing to say.", target.Name)}
		}
	}

	// EventPlayerEntered doubles as the generic social-presence type; the
	// description carries the conversational meaning.
	m.feed.Append(sensory.NewEvent(
		sensory.EventPlayerEntered,
		initiatorID,
		target.Position,
		socialEventIntensity,
		fmt.Sprintf("%s strikes up a conversation with %s.", initiatorID, target.Name),
	))

	return Result{Success: true, Message: step.Text, Step: &step}
}

// resumeStep re-presents the current node of an active conversation.
func resumeStep(target *actor.Agent) dialogue.Step {
	g := target.Dialogue()
	if g == nil {
		return dialogue.Step{}
	}
	node, ok := g.Node(target.DialogueCursor)
	if !ok {
		return dialogue.Step{}
	}
	return dialogue.Step{NodeID: node.ID, Text: node.Text, Responses: node.Responses}
}

// handleTrade succeeds only for merchant-archetype targets.
func (m *AgentManager) handleTrade(target *actor.Agent) Result {
	if target.Archetype != actor.ArchetypeMerchant {
		return Result{Message: fmt.Sprintf("%s is not a merchant.", target.Name)}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s lays out their wares.", target.Name),
	}
}

// handleAttack forces the target into fighting and emits a high-intensity
// combat event at its position so nearby agents can perceive the fight.
func (m *AgentManager) handleAttack(initiatorID string, target *actor.Agent) Result {
	target.State = actor.StateFighting

	m.feed.Append(sensory.NewEvent(
		sensory.EventCombat,
		initiatorID,
		target.Position,
		combatEventIntensity,
		fmt.Sprintf("%s attacks %s!", initiatorID, target.Name),
	))

	return Result{
		Success: true,
		Message: fmt.Sprintf("%s is attacked and turns to fight!", target.Name),
	}
}

// ContinueDialogue advances an agent's active conversation with a response
// selection. Every failure is distinct and reportable; none mutate the
// cursor.
func (m *AgentManager) ContinueDialogue(agentID, responseID string) Result {
	a, ok := m.agents[agentID]
	if !ok {
		return Result{Message: fmt.Sprintf("Agent %q not found.", agentID)}
	}

	step, err := a.ContinueDialogue(responseID)
	switch {
	case errors.Is(err, dialogue.ErrNoActiveDialogue):
		return Result{Message: "No active dialogue."}
	case errors.Is(err, dialogue.ErrDialogueNotFound):
		return Result{Message: fmt.Sprintf("%s has nothing to say.", a.Name)}
	case errors.Is(err, dialogue.ErrInvalidResponse):
		return Result{Message: "Invalid response."}
	case errors.Is(err, dialogue.ErrResponseUnavailable):
		return Result{Message: "That response is not available right now."}
	case err != nil:
		return Result{Message: err.Error()}
	}

	if step.Ended {
		return Result{Success: true, Message: "The conversation ends.", Step: &step}
	}
	return Result{Success: true, Message: step.Text, Step: &step}
}
