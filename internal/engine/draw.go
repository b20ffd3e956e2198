package engine

import (
	"encoding/json"

	"github.com/inamate/roomplanner/internal/geometry"
	"github.com/inamate/roomplanner/internal/layout"
)

// DrawCommand represents a single drawing operation for the renderer to execute.
// The renderer receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`                    // Operation: "path", "text"
	Layer       string        `json:"layer,omitempty"`       // "zone", "grid", "room", "object", "selection", "ghost"
	ObjectID    string        `json:"objectId,omitempty"`    // For hit correlation
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Path        []PathCommand `json:"path,omitempty"`        // Path data for "path" ops
	Text        string        `json:"text,omitempty"`        // Label for "text" ops
	X           float64       `json:"x,omitempty"`           // Text anchor
	Y           float64       `json:"y,omitempty"`           // Text anchor
	Fill        string        `json:"fill,omitempty"`        // Fill color
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width in world units
	Opacity     float64       `json:"opacity,omitempty"`     // Global alpha
}

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["Z"].
type PathCommand []interface{}

const (
	gridStroke      = "#333"
	roomStroke      = "#888"
	selectionStroke = "#fff"
	ghostFill       = "rgba(255, 255, 255, 0.3)"
	ghostInvalid    = "rgba(239, 68, 68, 0.35)"
	labelFill       = "#fff"
)

// CompileDrawCommands generates a draw command buffer from a snapshot.
// Commands are in painter's order (back to front); every transform maps
// world units to screen pixels.
func CompileDrawCommands(s Snapshot) []DrawCommand {
	view := s.Viewport.Matrix()
	zoom := s.Viewport.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	var commands []DrawCommand

	for _, z := range s.Room.Zones {
		r := geometry.NewRect(z.X, z.Y, z.W, z.H)
		commands = append(commands, DrawCommand{
			Op:        "path",
			Layer:     "zone",
			Transform: view.ToSlice(),
			Path:      rectPath(r),
			Fill:      z.Color,
			Opacity:   1,
		})
		cx, cy := r.Center()
		commands = append(commands, DrawCommand{
			Op:        "text",
			Layer:     "zone",
			Transform: view.ToSlice(),
			Text:      z.Label,
			X:         cx,
			Y:         cy,
			Fill:      labelFill,
			Opacity:   0.4,
		})
	}

	if grid := gridPath(s.Room); len(grid) > 0 {
		commands = append(commands, DrawCommand{
			Op:          "path",
			Layer:       "grid",
			Transform:   view.ToSlice(),
			Path:        grid,
			Stroke:      gridStroke,
			StrokeWidth: 0.5 / zoom,
			Opacity:     1,
		})
	}

	commands = append(commands, DrawCommand{
		Op:          "path",
		Layer:       "room",
		Transform:   view.ToSlice(),
		Path:        rectPath(s.Room.Bounds()),
		Stroke:      roomStroke,
		StrokeWidth: 4 / zoom,
		Opacity:     1,
	})

	for _, obj := range s.Objects {
		commands = append(commands, compileObject(obj, view, s.Selection == obj.ID, zoom)...)
	}

	if d := s.Drag; d != nil {
		fill := ghostFill
		if !d.Valid {
			fill = ghostInvalid
		}
		commands = append(commands, DrawCommand{
			Op:        "path",
			Layer:     "ghost",
			ObjectID:  d.ID,
			Transform: view.ToSlice(),
			Path:      rectPath(geometry.NewRect(d.X, d.Y, d.W, d.H)),
			Fill:      fill,
			Opacity:   1,
		})
	}

	return commands
}

// compileObject draws an object's intrinsic rect rotated about its center,
// preceded by a selection outline around its effective bounds.
func compileObject(obj ObjectView, view geometry.Matrix2D, selected bool, zoom float64) []DrawCommand {
	var out []DrawCommand

	bounds := obj.Bounds()
	if selected {
		out = append(out, DrawCommand{
			Op:          "path",
			Layer:       "selection",
			ObjectID:    obj.ID,
			Transform:   view.ToSlice(),
			Path:        rectPath(bounds.Inset(4 / zoom)),
			Stroke:      selectionStroke,
			StrokeWidth: 3 / zoom,
			Opacity:     1,
		})
	}

	cx, cy := bounds.Center()
	local := view.
		Multiply(geometry.Translate(cx, cy)).
		Multiply(geometry.RotateDegrees(float64(obj.Rotation)))

	opacity := 1.0
	if !obj.Placed {
		opacity = 0.6
	}

	out = append(out,
		DrawCommand{
			Op:        "path",
			Layer:     "object",
			ObjectID:  obj.ID,
			Transform: local.ToSlice(),
			Path:      rectPath(geometry.NewRect(-obj.W/2, -obj.H/2, obj.W, obj.H)),
			Fill:      obj.Color,
			Opacity:   opacity,
		},
		DrawCommand{
			Op:        "text",
			Layer:     "object",
			ObjectID:  obj.ID,
			Transform: local.ToSlice(),
			Text:      obj.Label,
			Fill:      labelFill,
			Opacity:   opacity,
		},
	)
	return out
}

func rectPath(r geometry.Rect) []PathCommand {
	return []PathCommand{
		{"M", r.X, r.Y},
		{"L", r.Right(), r.Y},
		{"L", r.Right(), r.Bottom()},
		{"L", r.X, r.Bottom()},
		{"Z"},
	}
}

// gridPath returns one segment per interior and boundary grid line.
func gridPath(room layout.Room) []PathCommand {
	g := room.GridSize
	if g <= 0 {
		return nil
	}

	var path []PathCommand
	for x := 0.0; x <= room.Width; x += g {
		path = append(path, PathCommand{"M", x, 0.0}, PathCommand{"L", x, room.Height})
	}
	for y := 0.0; y <= room.Height; y += g {
		path = append(path, PathCommand{"M", 0.0, y}, PathCommand{"L", room.Width, y})
	}
	return path
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
