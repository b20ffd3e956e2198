package layout

import (
	"fmt"
	"slices"
)

// DefaultLevelID is used when a host does not name a level.
const DefaultLevelID = "small-bedroom"

// presets are the built-in levels, in menu order.
var presets = []Level{
	{
		ID:   "small-bedroom",
		Name: "Small Bedroom",
		Room: Room{Width: 800, Height: 600, GridSize: 50},
		Furniture: []Furniture{
			{ID: "bed", Label: "Bed", Category: "bed", W: 120, H: 60, Color: "#f28b82"},
			{ID: "table", Label: "Table", Category: "table", W: 60, H: 60, Color: "#34a853"},
		},
	},
	{
		ID:   "living-room",
		Name: "Living Room",
		Room: Room{Width: 600, Height: 400, GridSize: 50},
		Furniture: []Furniture{
			{ID: "sofa", Label: "Sofa", Category: "sofa", W: 150, H: 70, Color: "#fbbc04"},
			{ID: "tv", Label: "TV Stand", Category: "tv-stand", W: 100, H: 40, Color: "#4285f4"},
			{ID: "table", Label: "Table", Category: "table", W: 80, H: 80, Color: "#34a853"},
		},
	},
	{
		ID:   "office",
		Name: "Office",
		Room: Room{Width: 500, Height: 350, GridSize: 50},
		Furniture: []Furniture{
			{ID: "desk", Label: "Desk", Category: "desk", W: 120, H: 60, Color: "#a142f4"},
			{ID: "chair", Label: "Chair", Category: "chair", W: 50, H: 50, Color: "#f28b82"},
			{ID: "cabinet", Label: "Cabinet", Category: "storage", W: 80, H: 40, Color: "#fbbc04"},
		},
	},
	{
		ID:   "house",
		Name: "House",
		Room: Room{
			Width:    1600,
			Height:   1200,
			GridSize: 5,
			Zones: []Zone{
				{ID: "living", Label: "Living", X: 200, Y: 100, W: 500, H: 450, Color: "rgba(139, 92, 246, 0.08)"},
				{ID: "kitchen", Label: "Kitchen", X: 800, Y: 100, W: 350, H: 300, Color: "rgba(251, 191, 36, 0.08)"},
				{ID: "dining", Label: "Dining", X: 800, Y: 400, W: 350, H: 250, Color: "rgba(245, 158, 11, 0.08)"},
				{ID: "bedroom1", Label: "Master Bed", X: 50, Y: 600, W: 380, H: 320, Color: "rgba(59, 130, 246, 0.08)"},
				{ID: "bedroom2", Label: "Bedroom 2", X: 450, Y: 600, W: 280, H: 320, Color: "rgba(16, 185, 129, 0.08)"},
				{ID: "closet", Label: "Closet", X: 800, Y: 700, W: 200, H: 220, Color: "rgba(168, 85, 247, 0.08)"},
				{ID: "bathroom1", Label: "Bathroom", X: 1050, Y: 700, W: 200, H: 110, Color: "rgba(236, 72, 153, 0.08)"},
				{ID: "laundry", Label: "Laundry", X: 1050, Y: 810, W: 200, H: 110, Color: "rgba(100, 116, 139, 0.08)"},
				{ID: "bedroom3", Label: "Bedroom 3", X: 1300, Y: 100, W: 250, H: 300, Color: "rgba(14, 165, 233, 0.08)"},
				{ID: "bathroom2", Label: "Bath 2", X: 1300, Y: 420, W: 250, H: 180, Color: "rgba(217, 70, 239, 0.08)"},
				{ID: "balcony", Label: "Balcony", X: 1300, Y: 620, W: 250, H: 300, Color: "rgba(34, 197, 94, 0.12)"},
				{ID: "hallway", Label: "Entry", X: 1200, Y: 0, W: 350, H: 80, Color: "rgba(148, 163, 184, 0.08)"},
			},
		},
		Furniture: []Furniture{
			{ID: "master-bed", Label: "Bed", Category: "bed", W: 160, H: 200, Color: "#3b82f6"},
			{ID: "sofa", Label: "Sofa", Category: "sofa", W: 220, H: 90, Color: "#8b5cf6"},
			{ID: "armchair", Label: "Armchair", Category: "armchair", W: 80, H: 80, Color: "#a78bfa"},
			{ID: "dining-table", Label: "Dining Table", Category: "table", W: 180, H: 100, Color: "#f59e0b"},
			{ID: "counter", Label: "Counter", Category: "counter", W: 240, H: 60, Color: "#fbbf24"},
			{ID: "wardrobe", Label: "Wardrobe", Category: "wardrobe", W: 120, H: 60, Color: "#a855f7"},
			{ID: "desk", Label: "Desk", Category: "desk", W: 120, H: 60, Color: "#0ea5e9"},
			{ID: "bookshelf", Label: "Bookshelf", Category: "bookshelf", W: 100, H: 35, Color: "#10b981"},
			{ID: "washer", Label: "Washer", Category: "appliance", W: 60, H: 60, Color: "#64748b"},
			{ID: "tub", Label: "Tub", Category: "fixture", W: 170, H: 75, Color: "#ec4899"},
		},
	},
}

// Levels returns copies of the built-in levels in menu order.
func Levels() []Level {
	out := make([]Level, len(presets))
	for i, l := range presets {
		out[i] = cloneLevel(l)
	}
	return out
}

// LevelByID returns a copy of the built-in level with the given id.
func LevelByID(id string) (Level, error) {
	i := slices.IndexFunc(presets, func(l Level) bool { return l.ID == id })
	if i < 0 {
		return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
	}
	return cloneLevel(presets[i]), nil
}

func cloneLevel(l Level) Level {
	l.Room.Zones = slices.Clone(l.Room.Zones)
	l.Furniture = slices.Clone(l.Furniture)
	return l
}
