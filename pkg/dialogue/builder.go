package dialogue

import "fmt"

// Builder incrementally registers nodes and responses and produces an
// immutable, validated Graph. Methods chain; the first registration error is
// remembered and reported by Build.
type Builder struct {
	id     string
	name   string
	rootID string
	nodes  map[string]*Node
	err    error
}

// NewBuilder starts a graph with the given ID and display name.
func NewBuilder(id, name string) *Builder {
	return &Builder{
		id:    id,
		name:  name,
		nodes: make(map[string]*Node),
	}
}

// AddNode registers a conversation node.
func (b *Builder) AddNode(id, text string) *Builder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = fmt.Errorf("node ID cannot be empty")
		return b
	}
	if _, exists := b.nodes[id]; exists {
		b.err = fmt.Errorf("duplicate node %q", id)
		return b
	}
	b.nodes[id] = &Node{ID: id, Text: text}
	return b
}

// AddRootNode registers a node and marks it as the graph's entry point.
func (b *Builder) AddRootNode(id, text string) *Builder {
	b.AddNode(id, text)
	if b.err == nil {
		b.rootID = id
	}
	return b
}

// WithNodeGuard attaches a guard to an already registered node.
func (b *Builder) WithNodeGuard(nodeID string, g Guard) *Builder {
	if b.err != nil {
		return b
	}
	node, ok := b.nodes[nodeID]
	if !ok {
		b.err = fmt.Errorf("guard references unknown node %q", nodeID)
		return b
	}
	node.Guard = g
	return b
}

// AddResponse registers a response on a node. An empty nextNodeID marks a
// terminator.
func (b *Builder) AddResponse(nodeID, responseID, text, nextNodeID string) *Builder {
	return b.AddGuardedResponse(nodeID, responseID, text, nextNodeID, nil, 0)
}

// AddGuardedResponse registers a response with an optional guard and cost.
func (b *Builder) AddGuardedResponse(nodeID, responseID, text, nextNodeID string, g Guard, cost int) *Builder {
	if b.err != nil {
		return b
	}
	node, ok := b.nodes[nodeID]
	if !ok {
		b.err = fmt.Errorf("response %q references unknown node %q", responseID, nodeID)
		return b
	}
	if _, exists := node.Response(responseID); exists {
		b.err = fmt.Errorf("duplicate response %q on node %q", responseID, nodeID)
		return b
	}
	node.Responses = append(node.Responses, Response{
		ID:         responseID,
		Text:       text,
		NextNodeID: nextNodeID,
		Guard:      g,
		Cost:       cost,
	})
	return b
}

// Build validates and returns the immutable graph. The root and every
// non-terminator next-node ID must resolve to a registered node.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.rootID == "" {
		return nil, fmt.Errorf("dialogue %q has no root node", b.id)
	}
	if _, ok := b.nodes[b.rootID]; !ok {
		return nil, fmt.Errorf("dialogue %q root %q does not exist", b.id, b.rootID)
	}
	for _, node := range b.nodes {
		for _, resp := range node.Responses {
			if resp.IsTerminator() {
				continue
			}
			if _, ok := b.nodes[resp.NextNodeID]; !ok {
				return nil, fmt.Errorf("response %q on node %q points to unknown node %q",
					resp.ID, node.ID, resp.NextNodeID)
			}
		}
	}
	return &Graph{
		id:     b.id,
		name:   b.name,
		rootID: b.rootID,
		nodes:  b.nodes,
	}, nil
}
