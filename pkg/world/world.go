package world

import "math"

// Position is a point in 3D world space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Distance returns the 3D Euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Room is an axis-aligned rectangular region of the world.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Min         Position `json:"min"` // lower corner of the bounds
	Max         Position `json:"max"` // upper corner of the bounds
}

// Contains reports whether pos falls within the room's bounds. Bounds are
// inclusive on both edges.
func (r *Room) Contains(pos Position) bool {
	return pos.X >= r.Min.X && pos.X <= r.Max.X &&
		pos.Y >= r.Min.Y && pos.Y <= r.Max.Y &&
		pos.Z >= r.Min.Z && pos.Z <= r.Max.Z
}

// World is the room registry consumed by the engine. The engine only performs
// bounds lookups against it; room contents (items, exits) live elsewhere.
type World struct {
	rooms []*Room
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{rooms: make([]*Room, 0)}
}

// AddRoom registers a room. Rooms are scanned in registration order.
func (w *World) AddRoom(r *Room) {
	if r == nil {
		return
	}
	w.rooms = append(w.rooms, r)
}

// Room returns the room with the given ID.
func (w *World) Room(id string) (*Room, bool) {
	for _, r := range w.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// RoomAt returns the first room whose bounds contain pos. The scan is
// O(rooms) per call, which is acceptable at tens-to-low-hundreds of rooms.
func (w *World) RoomAt(pos Position) (*Room, bool) {
	for _, r := range w.rooms {
		if r.Contains(pos) {
			return r, true
		}
	}
	return nil, false
}

// RoomCount returns the number of registered rooms.
func (w *World) RoomCount() int {
	return len(w.rooms)
}
