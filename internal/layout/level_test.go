package layout

import (
	"errors"
	"strings"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestLevel_Build(t *testing.T) {
	lvl := Level{
		ID:   "test",
		Room: Room{Width: 500, Height: 350, GridSize: 50},
		Furniture: []Furniture{
			{ID: "bed", W: 150, H: 80, X: ptr(50), Y: ptr(50), Placed: true},
			{ID: "desk", W: 120, H: 60},
			{W: 50, H: 50},
		},
	}

	room, objects, err := lvl.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if room.Width != 500 || room.Height != 400 {
		t.Errorf("room = %vx%v, want 500x400", room.Width, room.Height)
	}
	if len(objects) != 3 {
		t.Fatalf("len(objects) = %d, want 3", len(objects))
	}

	bed := objects[0]
	if bed.X != 50 || bed.Y != 50 || !bed.Placed {
		t.Errorf("bed = %+v, want placed at (50,50)", bed)
	}

	// Second item is staged at unit + 1*2*unit.
	desk := objects[1]
	if desk.X != 150 || desk.Y != 50 || desk.Placed {
		t.Errorf("desk = %+v, want unplaced at (150,50)", desk)
	}

	if !strings.HasPrefix(objects[2].ID, "furn_") {
		t.Errorf("generated id = %q, want furn_ prefix", objects[2].ID)
	}
}

func TestLevel_BuildErrors(t *testing.T) {
	room := Room{Width: 800, Height: 500, GridSize: 50}

	tests := map[string]struct {
		lvl  Level
		want error
	}{
		"zero room": {
			lvl:  Level{Room: Room{Width: 0, Height: 500}},
			want: ErrInvalidRoom,
		},
		"negative grid": {
			lvl:  Level{Room: Room{Width: 800, Height: 500, GridSize: -1}},
			want: ErrInvalidRoom,
		},
		"zero width furniture": {
			lvl:  Level{Room: room, Furniture: []Furniture{{ID: "a", W: 0, H: 10}}},
			want: ErrInvalidSize,
		},
		"wider than room": {
			lvl:  Level{Room: room, Furniture: []Furniture{{ID: "a", W: 900, H: 10}}},
			want: ErrTooLarge,
		},
		"too tall once rotated": {
			lvl:  Level{Room: room, Furniture: []Furniture{{ID: "a", W: 600, H: 10, Rotation: Rotate90}}},
			want: ErrTooLarge,
		},
		"duplicate id": {
			lvl:  Level{Room: room, Furniture: []Furniture{{ID: "a", W: 10, H: 10}, {ID: "a", W: 10, H: 10}}},
			want: ErrDuplicateID,
		},
		"bad rotation": {
			lvl:  Level{Room: room, Furniture: []Furniture{{ID: "a", W: 10, H: 10, Rotation: 45}}},
			want: ErrInvalidRotation,
		},
		"placed outside": {
			lvl:  Level{Room: room, Furniture: []Furniture{{ID: "a", W: 100, H: 10, X: ptr(750), Y: ptr(0), Placed: true}}},
			want: ErrPlacedOutside,
		},
		"placed overlapping": {
			lvl: Level{Room: room, Furniture: []Furniture{
				{ID: "a", W: 100, H: 100, X: ptr(0), Y: ptr(0), Placed: true},
				{ID: "b", W: 100, H: 100, X: ptr(50), Y: ptr(50), Placed: true},
			}},
			want: ErrPlacedOverlap,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.lvl.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLevels_PresetsAreValid(t *testing.T) {
	levels := Levels()
	if len(levels) == 0 {
		t.Fatal("no presets")
	}
	for _, lvl := range levels {
		t.Run(lvl.ID, func(t *testing.T) {
			if err := lvl.Validate(); err != nil {
				t.Errorf("preset %s invalid: %v", lvl.ID, err)
			}
		})
	}
}

func TestLevelByID(t *testing.T) {
	lvl, err := LevelByID("office")
	if err != nil {
		t.Fatalf("LevelByID(office) error = %v", err)
	}
	if lvl.Name != "Office" || len(lvl.Furniture) != 3 {
		t.Errorf("office = %+v", lvl)
	}

	// Returned levels are copies.
	lvl.Furniture[0].Label = "changed"
	again, _ := LevelByID("office")
	if again.Furniture[0].Label != "Desk" {
		t.Error("preset mutated through returned copy")
	}

	if _, err := LevelByID("nope"); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("LevelByID(nope) = %v, want ErrLevelNotFound", err)
	}
}
