package layout

import "fmt"

// Overlaps reports whether two placed objects occupy a common region of
// positive area. Unplaced objects never collide.
func Overlaps(a, b Placeable) bool {
	if !a.Placed || !b.Placed {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}

// AnyOverlap reports whether candidate overlaps any of others. Entries sharing
// the candidate's id are the candidate's own previous state and are skipped.
func AnyOverlap(candidate Placeable, others []Placeable) bool {
	for _, o := range others {
		if o.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, o) {
			return true
		}
	}
	return false
}

// InsideRoom reports whether the object's effective bounds lie within the room.
func InsideRoom(p Placeable, room Room) bool {
	return room.Contains(p.Bounds())
}

// CheckInvariants verifies that placed objects are inside the room and pairwise
// non-overlapping. It returns the first violation found.
func CheckInvariants(objects []Placeable, room Room) error {
	for i, a := range objects {
		if !a.Placed {
			continue
		}
		if !InsideRoom(a, room) {
			return fmt.Errorf("%w: %s at (%g, %g)", ErrPlacedOutside, a.ID, a.X, a.Y)
		}
		for _, b := range objects[i+1:] {
			if Overlaps(a, b) {
				return fmt.Errorf("%w: %s and %s", ErrPlacedOverlap, a.ID, b.ID)
			}
		}
	}
	return nil
}
