package engine

import (
	"github.com/inamate/roomplanner/internal/layout"
	"github.com/inamate/roomplanner/internal/viewport"
)

// ObjectView is a committed object together with its effective size.
type ObjectView struct {
	layout.Placeable
	EffectiveW float64 `json:"effectiveW"`
	EffectiveH float64 `json:"effectiveH"`
}

// DragPreview is the ghost of the object being dragged at its snapped position.
// Valid reports whether releasing the pointer now would commit the move.
type DragPreview struct {
	ID       string          `json:"id"`
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
	W        float64         `json:"w"`
	H        float64         `json:"h"`
	Rotation layout.Rotation `json:"rotation"`
	Valid    bool            `json:"valid"`
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating a snapshot has no effect on the engine.
type Snapshot struct {
	LevelID      string            `json:"levelId"`
	Room         layout.Room       `json:"room"`
	Objects      []ObjectView      `json:"objects"`
	Drag         *DragPreview      `json:"drag,omitempty"`
	Selection    string            `json:"selection,omitempty"`
	Viewport     viewport.Viewport `json:"viewport"`
	Panning      bool              `json:"panning"`
	SpaceHeld    bool              `json:"spaceHeld"`
	HistoryDepth int               `json:"historyDepth"`
	PlacedCount  int               `json:"placedCount"`
	TotalCount   int               `json:"totalCount"`
	Complete     bool              `json:"complete"`
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		LevelID:      e.levelID,
		Room:         e.Room(),
		Objects:      make([]ObjectView, 0, len(e.objects)),
		Selection:    e.selection,
		Viewport:     e.view,
		Panning:      e.pan != nil,
		SpaceHeld:    e.spaceHeld,
		HistoryDepth: len(e.history),
		TotalCount:   len(e.objects),
	}

	for _, p := range e.objects {
		w, h := p.EffectiveSize()
		s.Objects = append(s.Objects, ObjectView{Placeable: p, EffectiveW: w, EffectiveH: h})
		if p.Placed {
			s.PlacedCount++
		}
	}
	s.Complete = s.TotalCount > 0 && s.PlacedCount == s.TotalCount

	if e.drag != nil {
		if i := e.indexOf(e.drag.id); i >= 0 {
			obj := e.objects[i]
			w, h := obj.EffectiveSize()
			candidate := obj.MovedTo(e.drag.snapX, e.drag.snapY)
			candidate.Placed = true
			s.Drag = &DragPreview{
				ID:       obj.ID,
				X:        e.drag.snapX,
				Y:        e.drag.snapY,
				W:        w,
				H:        h,
				Rotation: obj.Rotation,
				Valid:    e.validate(candidate) == nil,
			}
		}
	}

	return s
}
