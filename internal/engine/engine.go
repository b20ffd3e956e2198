package engine

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/inamate/roomplanner/internal/layout"
	"github.com/inamate/roomplanner/internal/viewport"
)

// Engine owns the furniture layout of one editing session and processes
// input commands against it. It is not safe for concurrent use; hosts that
// share an engine between goroutines must serialize calls.
type Engine struct {
	levelID string
	room    layout.Room
	initial []layout.Placeable

	// Committed state
	objects []layout.Placeable
	history [][]layout.Placeable

	// Transient interaction state
	selection string
	drag      *dragState
	pan       *panState
	spaceHeld bool

	// Last pointer position in screen space, used as the wheel zoom anchor
	pointerX float64
	pointerY float64

	view viewport.Viewport
}

// dragState is the in-flight move of one object. The snapped position is a
// preview only; objects are not touched until the drop is committed.
type dragState struct {
	id      string
	offsetX float64
	offsetY float64
	snapX   float64
	snapY   float64
}

// panState records a space+drag pan gesture.
type panState struct {
	startX float64
	startY float64
	origin viewport.Viewport
}

// New creates an engine for the given level. Malformed level configuration is
// returned as an error here rather than surfacing during interaction.
func New(level layout.Level) (*Engine, error) {
	room, objects, err := level.Build()
	if err != nil {
		return nil, fmt.Errorf("build level %q: %w", level.ID, err)
	}

	e := &Engine{
		levelID: level.ID,
		room:    room,
		initial: objects,
	}
	e.Reset()
	return e, nil
}

// Reset restarts the session: objects return to the level's initial layout and
// history, selection, drag and view state are cleared.
func (e *Engine) Reset() {
	e.objects = slices.Clone(e.initial)
	e.history = nil
	e.selection = ""
	e.drag = nil
	e.pan = nil
	e.spaceHeld = false
	e.pointerX, e.pointerY = 0, 0
	e.view = viewport.Default()
}

// --- Queries ---

// LevelID returns the id of the level the engine was created from.
func (e *Engine) LevelID() string {
	return e.levelID
}

// Room returns the floor plan.
func (e *Engine) Room() layout.Room {
	room := e.room
	room.Zones = slices.Clone(room.Zones)
	return room
}

// Objects returns a copy of the committed objects in paint order.
func (e *Engine) Objects() []layout.Placeable {
	return slices.Clone(e.objects)
}

// Object returns the committed state of one object.
func (e *Engine) Object(id string) (layout.Placeable, bool) {
	i := e.indexOf(id)
	if i < 0 {
		return layout.Placeable{}, false
	}
	return e.objects[i], true
}

// Selection returns the selected object id, or "" when nothing is selected.
func (e *Engine) Selection() string {
	return e.selection
}

// Viewport returns the current view.
func (e *Engine) Viewport() viewport.Viewport {
	return e.view
}

// HistoryDepth returns the number of undo steps available.
func (e *Engine) HistoryDepth() int {
	return len(e.history)
}

// IsDragging reports whether an object drag is in progress.
func (e *Engine) IsDragging() bool {
	return e.drag != nil
}

// IsPanning reports whether a space+drag pan is in progress.
func (e *Engine) IsPanning() bool {
	return e.pan != nil
}

// Render compiles the current state to draw commands as JSON.
func (e *Engine) Render() string {
	result, _ := DrawCommandsToJSON(CompileDrawCommands(e.Snapshot()))
	return result
}

// SnapshotJSON returns the current snapshot as JSON.
func (e *Engine) SnapshotJSON() string {
	data, err := json.Marshal(e.Snapshot())
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (e *Engine) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(e.objects, func(p layout.Placeable) bool { return p.ID == id })
}
