package engine

import (
	"math"
	"slices"

	"github.com/inamate/roomplanner/internal/layout"
	"github.com/inamate/roomplanner/internal/viewport"
)

// --- Pointer ---

// PointerDown starts a pan (space held) or picks the topmost object under the
// pointer and begins dragging it. Clicking empty floor clears the selection.
func (e *Engine) PointerDown(sx, sy float64) Result {
	if !finite(sx, sy) {
		return noop("", ErrInvalidInput)
	}
	e.pointerX, e.pointerY = sx, sy

	// A down without a matching up means the previous gesture was lost.
	e.drag = nil
	e.pan = nil

	if e.spaceHeld {
		e.pan = &panState{startX: sx, startY: sy, origin: e.view}
		return applied(OutcomeView, "")
	}

	wx, wy := e.view.ScreenToWorld(sx, sy)

	// Reverse paint order: the last drawn object wins.
	for i := len(e.objects) - 1; i >= 0; i-- {
		obj := e.objects[i]
		if !obj.ContainsPoint(wx, wy) {
			continue
		}
		e.selection = obj.ID
		e.drag = &dragState{
			id:      obj.ID,
			offsetX: wx - obj.X,
			offsetY: wy - obj.Y,
			snapX:   obj.X,
			snapY:   obj.Y,
		}
		return applied(OutcomeSelected, obj.ID)
	}

	if e.selection == "" {
		return noop("", nil)
	}
	e.selection = ""
	return applied(OutcomeSelected, "")
}

// PointerMove updates a pan gesture or the dragged object's snapped preview.
// The preview center is snapped to the grid, then clamped into the room.
func (e *Engine) PointerMove(sx, sy float64) Result {
	if !finite(sx, sy) {
		return noop("", ErrInvalidInput)
	}
	e.pointerX, e.pointerY = sx, sy

	if e.pan != nil {
		e.view = e.pan.origin.PanBy(sx-e.pan.startX, sy-e.pan.startY)
		return applied(OutcomeView, "")
	}

	if e.drag == nil || e.spaceHeld {
		return noop("", nil)
	}

	i := e.indexOf(e.drag.id)
	if i < 0 {
		id := e.drag.id
		e.drag = nil
		return noop(id, ErrNotFound)
	}
	obj := e.objects[i]
	w, h := obj.EffectiveSize()

	wx, wy := e.view.ScreenToWorld(sx, sy)
	x, y := layout.SnapCenter(wx-e.drag.offsetX, wy-e.drag.offsetY, w, h, e.room.GridSize)
	e.drag.snapX, e.drag.snapY = e.room.ClampPosition(x, y, w, h)

	return applied(OutcomePreview, obj.ID)
}

// PointerUp ends a pan, or drops the dragged object at its preview position.
// The drop commits only if the object would be inside the room and clear of
// every other placed object; otherwise the object stays where it was.
func (e *Engine) PointerUp() Result {
	wasPanning := e.pan != nil
	e.pan = nil

	if e.drag == nil {
		if wasPanning {
			return applied(OutcomeView, "")
		}
		return noop("", nil)
	}

	d := e.drag
	e.drag = nil

	i := e.indexOf(d.id)
	if i < 0 {
		return noop(d.id, ErrNotFound)
	}

	candidate := e.objects[i].MovedTo(d.snapX, d.snapY)
	candidate.Placed = true

	if err := e.validate(candidate); err != nil {
		return rejected(d.id, err)
	}

	e.commit(i, candidate)
	return applied(OutcomeCommitted, d.id)
}

// PointerLeave is handled exactly like PointerUp so a drag never gets stuck.
func (e *Engine) PointerLeave() Result {
	return e.PointerUp()
}

// --- Wheel / view ---

// Wheel zooms about the last pointer position when modifier is held, and
// otherwise pans by the negated scroll delta (trackpad scrolling) unless an
// object drag or a space pan is active.
func (e *Engine) Wheel(dx, dy float64, modifier bool) Result {
	if !finite(dx, dy) {
		return noop("", ErrInvalidInput)
	}
	if modifier {
		if dy == 0 {
			return noop("", nil)
		}
		factor := viewport.WheelStep
		if dy > 0 {
			factor = 1 / viewport.WheelStep
		}
		e.view = e.view.ZoomAt(e.pointerX, e.pointerY, factor)
		return applied(OutcomeView, "")
	}

	if e.drag != nil || e.spaceHeld || (dx == 0 && dy == 0) {
		return noop("", nil)
	}
	e.view = e.view.PanBy(-dx, -dy)
	return applied(OutcomeView, "")
}

// ZoomIn zooms one button step about the screen point (usually the canvas center).
func (e *Engine) ZoomIn(sx, sy float64) Result {
	if !finite(sx, sy) {
		return noop("", ErrInvalidInput)
	}
	e.view = e.view.ZoomAt(sx, sy, viewport.ButtonStep)
	return applied(OutcomeView, "")
}

// ZoomOut zooms out one button step about the screen point.
func (e *Engine) ZoomOut(sx, sy float64) Result {
	if !finite(sx, sy) {
		return noop("", ErrInvalidInput)
	}
	e.view = e.view.ZoomAt(sx, sy, 1/viewport.ButtonStep)
	return applied(OutcomeView, "")
}

// ResetView restores the default zoom and pan.
func (e *Engine) ResetView() Result {
	e.view = viewport.Default()
	return applied(OutcomeView, "")
}

// SetSpaceHeld toggles pan mode. While held, pointer drags pan the view
// instead of moving objects.
func (e *Engine) SetSpaceHeld(held bool) Result {
	if e.spaceHeld == held {
		return noop("", nil)
	}
	e.spaceHeld = held
	return applied(OutcomeView, "")
}

// --- Editing ---

// Select sets the selection to id, or clears it when id is empty.
func (e *Engine) Select(id string) Result {
	if id != "" && e.indexOf(id) < 0 {
		return noop(id, ErrNotFound)
	}
	e.selection = id
	return applied(OutcomeSelected, id)
}

// Rotate turns the selected object one quarter step.
func (e *Engine) Rotate() Result {
	if e.selection == "" {
		return noop("", ErrNoSelection)
	}
	return e.RotateObject(e.selection)
}

// RotateObject turns a placed object one quarter step about its center. The
// rotated box is clamped into the room and must not overlap another placed
// object; otherwise the rotation is not applied at all.
func (e *Engine) RotateObject(id string) Result {
	if e.drag != nil {
		return noop(id, ErrDragActive)
	}

	i := e.indexOf(id)
	if i < 0 {
		return noop(id, ErrNotFound)
	}

	obj := e.objects[i]
	if !obj.Placed {
		return noop(id, ErrNotPlaced)
	}

	candidate := obj.Rotated()
	w, h := candidate.EffectiveSize()
	candidate.X, candidate.Y = e.room.ClampPosition(candidate.X, candidate.Y, w, h)

	if err := e.validate(candidate); err != nil {
		return rejected(id, err)
	}

	e.commit(i, candidate)
	return applied(OutcomeCommitted, id)
}

// Undo restores the objects to the state before the last commit. Selection and
// view are left alone.
func (e *Engine) Undo() Result {
	n := len(e.history)
	if n == 0 {
		return noop("", ErrEmptyHistory)
	}

	e.objects = e.history[n-1]
	e.history[n-1] = nil
	e.history = e.history[:n-1]
	return applied(OutcomeUndone, "")
}

func (e *Engine) validate(candidate layout.Placeable) error {
	if layout.AnyOverlap(candidate, e.objects) {
		return ErrOverlap
	}
	if !layout.InsideRoom(candidate, e.room) {
		return ErrOutOfBounds
	}
	return nil
}

// commit records the current objects in history and replaces object i.
func (e *Engine) commit(i int, p layout.Placeable) {
	e.history = append(e.history, slices.Clone(e.objects))
	e.objects[i] = p
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
