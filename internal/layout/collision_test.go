package layout

import (
	"errors"
	"testing"
)

func placed(id string, x, y, w, h float64) Placeable {
	return Placeable{ID: id, X: x, Y: y, W: w, H: h, Placed: true}
}

func TestOverlaps(t *testing.T) {
	tests := map[string]struct {
		a, b Placeable
		want bool
	}{
		"overlapping placed": {
			a:    placed("a", 0, 0, 100, 100),
			b:    placed("b", 50, 50, 100, 100),
			want: true,
		},
		"touching edges": {
			a:    placed("a", 0, 0, 100, 100),
			b:    placed("b", 100, 0, 100, 100),
			want: false,
		},
		"unplaced never collides": {
			a:    placed("a", 0, 0, 100, 100),
			b:    Placeable{ID: "b", X: 50, Y: 50, W: 100, H: 100},
			want: false,
		},
		"rotation swaps footprint into overlap": {
			// 200x20 rotated is 20x200 and reaches down into b.
			a:    Placeable{ID: "a", X: 0, Y: 0, W: 200, H: 20, Rotation: Rotate90, Placed: true},
			b:    placed("b", 0, 150, 50, 50),
			want: true,
		},
		"rotation swaps footprint out of overlap": {
			a:    Placeable{ID: "a", X: 0, Y: 0, W: 20, H: 200, Rotation: Rotate90, Placed: true},
			b:    placed("b", 0, 150, 50, 50),
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyOverlap(t *testing.T) {
	others := []Placeable{
		placed("a", 0, 0, 100, 100),
		placed("b", 300, 300, 50, 50),
	}

	if !AnyOverlap(placed("c", 320, 320, 50, 50), others) {
		t.Error("expected overlap with b")
	}
	if AnyOverlap(placed("c", 100, 100, 50, 50), others) {
		t.Error("corner touch reported as overlap")
	}
	// The candidate's own previous state is not an obstacle.
	if AnyOverlap(placed("a", 10, 10, 100, 100), others) {
		t.Error("candidate collided with itself")
	}
	if AnyOverlap(placed("c", 0, 0, 10, 10), nil) {
		t.Error("overlap against empty set")
	}
}

func TestInsideRoom(t *testing.T) {
	room := Room{Width: 800, Height: 500}

	if !InsideRoom(placed("a", 650, 420, 150, 80), room) {
		t.Error("flush object reported outside")
	}
	rotated := Placeable{ID: "a", X: 650, Y: 420, W: 150, H: 80, Rotation: Rotate90}
	if InsideRoom(rotated, room) {
		t.Error("rotated object past bottom edge reported inside")
	}
}

func TestCheckInvariants(t *testing.T) {
	room := Room{Width: 800, Height: 500}

	ok := []Placeable{placed("a", 0, 0, 100, 100), placed("b", 100, 0, 100, 100), {ID: "c", X: -50, Y: 0, W: 10, H: 10}}
	if err := CheckInvariants(ok, room); err != nil {
		t.Errorf("CheckInvariants() = %v, want nil", err)
	}

	overlap := []Placeable{placed("a", 0, 0, 100, 100), placed("b", 50, 50, 100, 100)}
	if err := CheckInvariants(overlap, room); !errors.Is(err, ErrPlacedOverlap) {
		t.Errorf("CheckInvariants() = %v, want ErrPlacedOverlap", err)
	}

	outside := []Placeable{placed("a", 750, 0, 100, 100)}
	if err := CheckInvariants(outside, room); !errors.Is(err, ErrPlacedOutside) {
		t.Errorf("CheckInvariants() = %v, want ErrPlacedOutside", err)
	}
}
