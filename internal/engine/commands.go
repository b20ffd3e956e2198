package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Reasons a command was not applied. Rejections (ErrOverlap, ErrOutOfBounds)
// come from validation; the rest mark commands that had nothing to act on.
var (
	ErrOverlap      = errors.New("would overlap another object")
	ErrOutOfBounds  = errors.New("would leave the room")
	ErrNoSelection  = errors.New("nothing selected")
	ErrNotPlaced    = errors.New("object has not been placed")
	ErrNotFound     = errors.New("object not found")
	ErrDragActive   = errors.New("drag in progress")
	ErrEmptyHistory = errors.New("nothing to undo")
	ErrUnknown      = errors.New("unknown command")
	ErrInvalidInput = errors.New("coordinates must be finite")
)

// CommandType names an input event or editor action.
type CommandType string

const (
	CmdPointerDown  CommandType = "pointer.down"
	CmdPointerMove  CommandType = "pointer.move"
	CmdPointerUp    CommandType = "pointer.up"
	CmdPointerLeave CommandType = "pointer.leave"
	CmdWheel        CommandType = "wheel"
	CmdRotate       CommandType = "key.rotate"
	CmdUndo         CommandType = "key.undo"
	CmdSpace        CommandType = "key.space"
	CmdZoomIn       CommandType = "view.zoomIn"
	CmdZoomOut      CommandType = "view.zoomOut"
	CmdResetView    CommandType = "view.reset"
	CmdSelect       CommandType = "select"
)

// Command is a host-independent input event. Which fields are read depends on Type:
// pointer.down/move and view.zoomIn/zoomOut use X, Y (screen space);
// wheel uses DX, DY and Modifier; key.space uses Held; select and key.rotate use ID
// (key.rotate falls back to the selection when ID is empty).
type Command struct {
	Type     CommandType `json:"type"`
	X        float64     `json:"x,omitempty"`
	Y        float64     `json:"y,omitempty"`
	DX       float64     `json:"dx,omitempty"`
	DY       float64     `json:"dy,omitempty"`
	Modifier bool        `json:"modifier,omitempty"`
	Held     bool        `json:"held,omitempty"`
	ID       string      `json:"id,omitempty"`
}

// Outcome classifies what a command did.
type Outcome string

const (
	OutcomeCommitted Outcome = "committed"
	OutcomeRejected  Outcome = "rejected"
	OutcomeUndone    Outcome = "undone"
	OutcomePreview   Outcome = "preview"
	OutcomeSelected  Outcome = "selected"
	OutcomeView      Outcome = "view"
	OutcomeNoop      Outcome = "noop"
	OutcomeIgnored   Outcome = "ignored"
)

// Result reports the effect of one command. Applied is true when engine state
// changed. Err carries the sentinel behind a rejection or no-op.
type Result struct {
	Outcome  Outcome `json:"outcome"`
	Applied  bool    `json:"applied"`
	ObjectID string  `json:"objectId,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	Err      error   `json:"-"`
}

func applied(outcome Outcome, objectID string) Result {
	return Result{Outcome: outcome, Applied: true, ObjectID: objectID}
}

func rejected(objectID string, err error) Result {
	return Result{Outcome: OutcomeRejected, ObjectID: objectID, Reason: err.Error(), Err: err}
}

func noop(objectID string, err error) Result {
	r := Result{Outcome: OutcomeNoop, ObjectID: objectID, Err: err}
	if err != nil {
		r.Reason = err.Error()
	}
	return r
}

// Apply dispatches a command to the matching engine operation.
// Unknown command types are ignored; Apply never panics on input.
func (e *Engine) Apply(cmd Command) Result {
	switch cmd.Type {
	case CmdPointerDown:
		return e.PointerDown(cmd.X, cmd.Y)
	case CmdPointerMove:
		return e.PointerMove(cmd.X, cmd.Y)
	case CmdPointerUp:
		return e.PointerUp()
	case CmdPointerLeave:
		return e.PointerLeave()
	case CmdWheel:
		return e.Wheel(cmd.DX, cmd.DY, cmd.Modifier)
	case CmdRotate:
		if cmd.ID != "" {
			return e.RotateObject(cmd.ID)
		}
		return e.Rotate()
	case CmdUndo:
		return e.Undo()
	case CmdSpace:
		return e.SetSpaceHeld(cmd.Held)
	case CmdZoomIn:
		return e.ZoomIn(cmd.X, cmd.Y)
	case CmdZoomOut:
		return e.ZoomOut(cmd.X, cmd.Y)
	case CmdResetView:
		return e.ResetView()
	case CmdSelect:
		return e.Select(cmd.ID)
	default:
		return Result{
			Outcome: OutcomeIgnored,
			Reason:  fmt.Sprintf("%s: %q", ErrUnknown, cmd.Type),
			Err:     ErrUnknown,
		}
	}
}

// ApplyJSON decodes a command from JSON and applies it.
func (e *Engine) ApplyJSON(data string) (Result, error) {
	var cmd Command
	if err := json.Unmarshal([]byte(data), &cmd); err != nil {
		return Result{}, fmt.Errorf("decode command: %w", err)
	}
	return e.Apply(cmd), nil
}

// ResultToJSON serializes a result to JSON.
func ResultToJSON(r Result) string {
	data, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(data)
}
