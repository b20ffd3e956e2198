// Package viewport maps between screen pixels and world units under pan and zoom.
package viewport

import (
	"math"

	"github.com/inamate/roomplanner/internal/geometry"
)

const (
	MinZoom     = 0.3
	MaxZoom     = 3.0
	DefaultZoom = 0.7
	DefaultPanX = 150
	DefaultPanY = 80

	// WheelStep is the zoom factor for one modifier+wheel notch.
	WheelStep = 1.1
	// ButtonStep is the zoom factor for the zoom in/out buttons.
	ButtonStep = 1.2
)

// Viewport is the world-to-screen mapping: screen = world*Zoom + Pan.
type Viewport struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
}

// Default returns the initial view.
func Default() Viewport {
	return Viewport{Zoom: DefaultZoom, PanX: DefaultPanX, PanY: DefaultPanY}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - v.PanX) / v.Zoom, (sy - v.PanY) / v.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v Viewport) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*v.Zoom + v.PanX, wy*v.Zoom + v.PanY
}

// ZoomAt scales the view by factor while keeping the world point under
// (sx, sy) fixed on screen. The resulting zoom is clamped to [MinZoom, MaxZoom].
// A non-positive or non-finite factor, or a result that is not finite, leaves
// the view unchanged.
func (v Viewport) ZoomAt(sx, sy, factor float64) Viewport {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return v
	}

	wx, wy := v.ScreenToWorld(sx, sy)
	zoom := geometry.Clamp(v.Zoom*factor, MinZoom, MaxZoom)

	next := Viewport{
		Zoom: zoom,
		PanX: sx - wx*zoom,
		PanY: sy - wy*zoom,
	}
	if !next.Finite() {
		return v
	}
	return next
}

// PanBy translates the view by a screen-space delta. A delta that would make
// the pan non-finite leaves the view unchanged.
func (v Viewport) PanBy(dx, dy float64) Viewport {
	next := v
	next.PanX += dx
	next.PanY += dy
	if !next.Finite() {
		return v
	}
	return next
}

// Finite reports whether every component of the view is a finite number.
func (v Viewport) Finite() bool {
	return isFinite(v.Zoom) && isFinite(v.PanX) && isFinite(v.PanY)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Matrix returns the world-to-screen transform.
func (v Viewport) Matrix() geometry.Matrix2D {
	return geometry.Translate(v.PanX, v.PanY).Multiply(geometry.Scale(v.Zoom, v.Zoom))
}
