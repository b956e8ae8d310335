// Package dialogue models branching conversations as statically constructed,
// immutable graphs. Graphs are built ahead of time via the Builder and
// attached per agent; traversal is externally driven by explicit response
// selection.
package dialogue

import "errors"

// Traversal failures. Each condition is distinct and reportable; callers map
// them to user-visible messages.
var (
	// ErrDialogueNotFound means an unknown dialogue graph was referenced.
	ErrDialogueNotFound = errors.New("dialogue not found")

	// ErrNoActiveDialogue means a continuation was attempted with no cursor.
	ErrNoActiveDialogue = errors.New("no active dialogue")

	// ErrInvalidResponse means the response ID is not on the current node.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrResponseUnavailable means the response exists but its guard
	// evaluated false.
	ErrResponseUnavailable = errors.New("response not currently available")
)

// Participant is the view of a conversation participant that guards evaluate
// against. Agents satisfy it through their attribute actor.
type Participant interface {
	Attribute(name string) (int, bool)
}

// Guard gates a node or response on the participant. A nil Guard always
// passes.
type Guard func(p Participant) bool

// Response is one selectable reply on a node. An empty NextNodeID marks a
// terminator: selecting it ends the conversation.
type Response struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	NextNodeID string `json:"next_node_id,omitempty"`
	Guard      Guard  `json:"-"`
	Cost       int    `json:"cost,omitempty"` // e.g. gold for a bribe option
}

// IsTerminator reports whether selecting this response ends the conversation.
func (r *Response) IsTerminator() bool {
	return r.NextNodeID == ""
}

// Node is one point in a conversation with its ordered responses.
type Node struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Guard     Guard      `json:"-"`
	Responses []Response `json:"responses,omitempty"`
}

// Response returns the response with the given ID.
func (n *Node) Response(id string) (*Response, bool) {
	for i := range n.Responses {
		if n.Responses[i].ID == id {
			return &n.Responses[i], true
		}
	}
	return nil, false
}

// Graph is an immutable conversation graph. Construct it with a Builder; the
// builder validates that the root and every non-terminator next-node ID
// resolve to existing nodes.
type Graph struct {
	id     string
	name   string
	rootID string
	nodes  map[string]*Node
}

// ID returns the graph's identifier.
func (g *Graph) ID() string { return g.id }

// Name returns the graph's display name.
func (g *Graph) Name() string { return g.name }

// RootID returns the ID of the entry node.
func (g *Graph) RootID() string { return g.rootID }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Step is the outcome of starting or advancing a conversation.
type Step struct {
	NodeID    string     `json:"node_id,omitempty"`
	Text      string     `json:"text,omitempty"`
	Responses []Response `json:"responses,omitempty"`
	Ended     bool       `json:"ended"`
}

// Start returns the opening step of the conversation.
func (g *Graph) Start() Step {
	root := g.nodes[g.rootID]
	return Step{NodeID: root.ID, Text: root.Text, Responses: root.Responses}
}

// Advance moves the conversation from the node at cursor by selecting the
// given response. The cursor is only advanced by a successful step: every
// error path leaves traversal state untouched, so repeated invalid input is
// idempotent. A terminator response yields a Step with Ended set.
func (g *Graph) Advance(cursor, responseID string, p Participant) (Step, error) {
	node, ok := g.nodes[cursor]
	if !ok {
		return Step{}, ErrNoActiveDialogue
	}
	resp, ok := node.Response(responseID)
	if !ok {
		return Step{}, ErrInvalidResponse
	}
	if resp.Guard != nil && !resp.Guard(p) {
		return Step{}, ErrResponseUnavailable
	}
	if resp.IsTerminator() {
		return Step{Ended: true}, nil
	}
	next := g.nodes[resp.NextNodeID]
	if next.Guard != nil && !next.Guard(p) {
		return Step{}, ErrResponseUnavailable
	}
	return Step{NodeID: next.ID, Text: next.Text, Responses: next.Responses}, nil
}
