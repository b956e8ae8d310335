package sensory

// DefaultMemoryCapacity bounds an agent's private sensory memory.
const DefaultMemoryCapacity = 10

// Memory is one agent's bounded record of perceived events. Its eviction
// policy is FIFO and entirely decoupled from the shared feed's lifetime:
// events purged from the feed remain here until pushed out by newer ones.
// Fields are exported for snapshot serialization; only the owning agent
// writes to it.
type Memory struct {
	Capacity int     `json:"capacity"`
	Events   []Event `json:"events,omitempty"`
}

// NewMemory creates a memory. Non-positive capacity falls back to the default.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &Memory{Capacity: capacity}
}

// Remember appends an event, evicting the oldest when full.
func (m *Memory) Remember(e Event) {
	if m.Capacity <= 0 {
		m.Capacity = DefaultMemoryCapacity
	}
	if len(m.Events) >= m.Capacity {
		m.Events = m.Events[1:]
	}
	m.Events = append(m.Events, e)
}

// Recall returns a copy of the remembered events, oldest first.
func (m *Memory) Recall() []Event {
	out := make([]Event, len(m.Events))
	copy(out, m.Events)
	return out
}

// Len returns the number of remembered events.
func (m *Memory) Len() int {
	return len(m.Events)
}
