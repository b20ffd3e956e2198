package layout

import (
	"math"

	"github.com/inamate/roomplanner/internal/geometry"
)

// Rotation is a clockwise rotation in 90° steps.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Valid reports whether r is one of the four quarter-turn values.
func (r Rotation) Valid() bool {
	return r == Rotate0 || r == Rotate90 || r == Rotate180 || r == Rotate270
}

// Next returns the rotation one quarter turn further.
func (r Rotation) Next() Rotation {
	return (r + 90) % 360
}

// Quarter reports whether width and height swap under this rotation.
func (r Rotation) Quarter() bool {
	return r%180 != 0
}

// Radians returns the rotation angle in radians.
func (r Rotation) Radians() float64 {
	return float64(r) * math.Pi / 180
}

// Placeable is a furniture instance on the floor plan.
//
// X and Y are the top-left corner of the effective (rotated) bounding box.
// W and H are intrinsic and never swap; only EffectiveSize does.
type Placeable struct {
	ID       string   `json:"id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	W        float64  `json:"w"`
	H        float64  `json:"h"`
	Rotation Rotation `json:"rotation"`
	Placed   bool     `json:"placed"`

	// Presentation only
	Color    string `json:"color,omitempty"`
	Label    string `json:"label,omitempty"`
	Category string `json:"category,omitempty"`
}

// EffectiveSize returns the axis-aligned width and height after rotation.
func (p Placeable) EffectiveSize() (float64, float64) {
	if p.Rotation.Quarter() {
		return p.H, p.W
	}
	return p.W, p.H
}

// Bounds returns the effective axis-aligned bounding box.
func (p Placeable) Bounds() geometry.Rect {
	w, h := p.EffectiveSize()
	return geometry.NewRect(p.X, p.Y, w, h)
}

// Center returns the center of the effective bounding box.
func (p Placeable) Center() (float64, float64) {
	return p.Bounds().Center()
}

// ContainsPoint reports whether the world point lies strictly inside the
// object's rotated footprint. The point is rotated back by -Rotation about the
// bounding box center and compared to the intrinsic half extents.
func (p Placeable) ContainsPoint(px, py float64) bool {
	cx, cy := p.Center()
	local := geometry.RotateDegrees(-float64(p.Rotation))
	lx, ly := local.TransformPoint(px-cx, py-cy)
	return lx > -p.W/2 && lx < p.W/2 && ly > -p.H/2 && ly < p.H/2
}

// MovedTo returns a copy positioned with its top-left at (x, y).
func (p Placeable) MovedTo(x, y float64) Placeable {
	p.X, p.Y = x, y
	return p
}

// CenteredAt returns a copy whose effective bounding box is centered on (cx, cy).
func (p Placeable) CenteredAt(cx, cy float64) Placeable {
	w, h := p.EffectiveSize()
	p.X, p.Y = cx-w/2, cy-h/2
	return p
}

// Rotated returns a copy turned one quarter step with its center kept fixed.
func (p Placeable) Rotated() Placeable {
	cx, cy := p.Center()
	p.Rotation = p.Rotation.Next()
	return p.CenteredAt(cx, cy)
}

// SnapCenter snaps the center of a w×h box whose top-left is (x, y) to the grid
// and returns the resulting top-left.
func SnapCenter(x, y, w, h, gridSize float64) (float64, float64) {
	cx := geometry.SnapToGrid(x+w/2, gridSize)
	cy := geometry.SnapToGrid(y+h/2, gridSize)
	return cx - w/2, cy - h/2
}

// Zone is a labelled area drawn on the floor plan. Zones do not constrain placement.
type Zone struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// Room is the fixed floor plan furniture must stay inside.
type Room struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	GridSize float64 `json:"gridSize"`
	Zones    []Zone  `json:"zones,omitempty"`
}

// Bounds returns [0, Width] × [0, Height].
func (r Room) Bounds() geometry.Rect {
	return geometry.NewRect(0, 0, r.Width, r.Height)
}

// Contains reports whether rect lies fully inside the room.
func (r Room) Contains(rect geometry.Rect) bool {
	return rect.Within(r.Bounds())
}

// ClampPosition clamps the top-left of a w×h box so the box stays in the room.
func (r Room) ClampPosition(x, y, w, h float64) (float64, float64) {
	return geometry.Clamp(x, 0, r.Width-w), geometry.Clamp(y, 0, r.Height-h)
}

// AlignToGrid returns the room with both dimensions rounded up to a grid multiple.
func (r Room) AlignToGrid() Room {
	r.Width = geometry.CeilToGrid(r.Width, r.GridSize)
	r.Height = geometry.CeilToGrid(r.Height, r.GridSize)
	return r
}
