package actor

// State is an agent's current behavior mode.
type State string

const (
	StateIdle       State = "idle"
	StatePatrolling State = "patrolling"
	StateChasing    State = "chasing"
	StateFighting   State = "fighting"
	StateFleeing    State = "fleeing"
	StateTalking    State = "talking"

	// Reserved states. The default transition table never enters or leaves
	// them; they exist for scenario tooling and future behaviors.
	StateDead     State = "dead"
	StateSleeping State = "sleeping"
	StateWorking  State = "working"
)

// Valid reports whether s is a member of the fixed state set.
func (s State) Valid() bool {
	switch s {
	case StateIdle, StatePatrolling, StateChasing, StateFighting,
		StateFleeing, StateTalking, StateDead, StateSleeping, StateWorking:
		return true
	}
	return false
}
