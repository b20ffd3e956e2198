package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/inamate/roomplanner/internal/typeid"
)

var (
	ErrInvalidRoom     = errors.New("invalid room")
	ErrInvalidSize     = errors.New("invalid furniture size")
	ErrTooLarge        = errors.New("furniture does not fit in room")
	ErrDuplicateID     = errors.New("duplicate furniture id")
	ErrInvalidRotation = errors.New("rotation must be 0, 90, 180 or 270")
	ErrPlacedOutside   = errors.New("placed furniture outside room")
	ErrPlacedOverlap   = errors.New("placed furniture overlaps")
	ErrLevelNotFound   = errors.New("level not found")
)

// minStagingUnit is the smallest spacing used to stage unpositioned furniture.
const minStagingUnit = 50

// Furniture is the configuration form of a Placeable. X and Y are optional;
// furniture without a position is staged in rows near the room origin.
type Furniture struct {
	ID       string   `json:"id,omitempty"`
	Label    string   `json:"label"`
	Category string   `json:"category,omitempty"`
	Color    string   `json:"color"`
	W        float64  `json:"w"`
	H        float64  `json:"h"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Rotation Rotation `json:"rotation,omitempty"`
	Placed   bool     `json:"placed,omitempty"`
}

// Level is the session configuration: a room and its initial furniture.
type Level struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Room      Room        `json:"room"`
	Furniture []Furniture `json:"furniture"`
}

// Build normalizes the level into a grid-aligned room and the initial object
// list. Malformed configuration is reported as a wrapped sentinel error.
func (l Level) Build() (Room, []Placeable, error) {
	room := l.Room
	if !finitePositive(room.Width) || !finitePositive(room.Height) {
		return Room{}, nil, fmt.Errorf("%w: %gx%g", ErrInvalidRoom, room.Width, room.Height)
	}
	if room.GridSize < 0 || math.IsNaN(room.GridSize) || math.IsInf(room.GridSize, 0) {
		return Room{}, nil, fmt.Errorf("%w: grid size %g", ErrInvalidRoom, room.GridSize)
	}
	room = room.AlignToGrid()

	unit := max(room.GridSize, minStagingUnit)

	objects := make([]Placeable, 0, len(l.Furniture))
	seen := make(map[string]bool, len(l.Furniture))

	for i, f := range l.Furniture {
		id := f.ID
		if id == "" {
			id = typeid.NewFurnitureID()
		}
		if seen[id] {
			return Room{}, nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true

		if !finitePositive(f.W) || !finitePositive(f.H) {
			return Room{}, nil, fmt.Errorf("%w: %s is %gx%g", ErrInvalidSize, id, f.W, f.H)
		}
		if !f.Rotation.Valid() {
			return Room{}, nil, fmt.Errorf("%w: %s has %d", ErrInvalidRotation, id, f.Rotation)
		}

		p := Placeable{
			ID:       id,
			W:        f.W,
			H:        f.H,
			Rotation: f.Rotation,
			Placed:   f.Placed,
			Color:    f.Color,
			Label:    f.Label,
			Category: f.Category,
		}

		ew, eh := p.EffectiveSize()
		if ew > room.Width || eh > room.Height {
			return Room{}, nil, fmt.Errorf("%w: %s is %gx%g in a %gx%g room", ErrTooLarge, id, ew, eh, room.Width, room.Height)
		}

		p.X = unit + float64(i%5)*unit*2
		p.Y = unit + float64(i/5)*unit*3
		if f.X != nil {
			p.X = *f.X
		}
		if f.Y != nil {
			p.Y = *f.Y
		}

		objects = append(objects, p)
	}

	if err := CheckInvariants(objects, room); err != nil {
		return Room{}, nil, err
	}

	return room, objects, nil
}

// Validate reports whether the level can start a session.
func (l Level) Validate() error {
	_, _, err := l.Build()
	return err
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
