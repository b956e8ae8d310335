package world

// Player is the caller-supplied view of a player entity. The engine never
// queries players on its own; a list is passed into each tick call.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Faction  string   `json:"faction,omitempty"`
}
