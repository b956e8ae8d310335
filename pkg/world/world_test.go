package world

import (
	"math"
	"testing"
)

func TestPositionDistance(t *testing.T) {
	t.Run("3D euclidean distance", func(t *testing.T) {
		a := Position{X: 1, Y: 2, Z: 3}
		b := Position{X: 4, Y: 6, Z: 3}
		if d := a.Distance(b); d != 5 {
			t.Errorf("expected distance 5, got %f", d)
		}
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a := Position{X: -2, Y: 0, Z: 7}
		b := Position{X: 3, Y: 4, Z: -1}
		if a.Distance(b) != b.Distance(a) {
			t.Error("expected symmetric distance")
		}
	})

	t.Run("zero distance to self", func(t *testing.T) {
		p := Position{X: 9, Y: 9, Z: 9}
		if d := p.Distance(p); d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("uses all three axes", func(t *testing.T) {
		a := Position{}
		b := Position{X: 1, Y: 1, Z: 1}
		want := math.Sqrt(3)
		if d := a.Distance(b); math.Abs(d-want) > 1e-9 {
			t.Errorf("expected %f, got %f", want, d)
		}
	})
}

func TestRoomContains(t *testing.T) {
	room := &Room{
		ID:  "hall",
		Min: Position{X: 0, Y: 0, Z: 0},
		Max: Position{X: 10, Y: 10, Z: 3},
	}

	t.Run("interior point", func(t *testing.T) {
		if !room.Contains(Position{X: 5, Y: 5, Z: 1}) {
			t.Error("expected interior point to be contained")
		}
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		if !room.Contains(Position{X: 0, Y: 0, Z: 0}) {
			t.Error("expected min corner to be contained")
		}
		if !room.Contains(Position{X: 10, Y: 10, Z: 3}) {
			t.Error("expected max corner to be contained")
		}
	})

	t.Run("outside point", func(t *testing.T) {
		if room.Contains(Position{X: 10.01, Y: 5, Z: 1}) {
			t.Error("expected point past max to be outside")
		}
	})
}

func TestWorldRoomAt(t *testing.T) {
	w := NewWorld()
	w.AddRoom(&Room{ID: "market", Min: Position{}, Max: Position{X: 10, Y: 10, Z: 3}})
	w.AddRoom(&Room{ID: "gate", Min: Position{Y: 11}, Max: Position{X: 10, Y: 20, Z: 3}})

	t.Run("finds containing room", func(t *testing.T) {
		room, ok := w.RoomAt(Position{X: 5, Y: 15, Z: 0})
		if !ok || room.ID != "gate" {
			t.Errorf("expected gate, got %v", room)
		}
	})

	t.Run("no room for unbounded position", func(t *testing.T) {
		if _, ok := w.RoomAt(Position{X: 100, Y: 100, Z: 100}); ok {
			t.Error("expected no room")
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		room, ok := w.Room("market")
		if !ok || room.ID != "market" {
			t.Errorf("expected market, got %v", room)
		}
		if _, ok := w.Room("cellar"); ok {
			t.Error("expected no room for unknown id")
		}
	})
}
