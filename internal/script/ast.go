package script

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/inamate/roomplanner/internal/engine"
)

// Script is a parsed replay script: one statement per line.
// Example:
//
//	# drag the bed into the corner
//	down 300 200
//	move 10 10
//	up
//	rotate
type Script struct {
	Steps []*Step `( @@ | EOL )*`
}

// Step is a single statement. Exactly one field is set.
type Step struct {
	Pos lexer.Position

	Down      *Point      `  "down" @@`
	Move      *Point      `| "move" @@`
	Up        bool        `| @"up"`
	Leave     bool        `| @"leave"`
	Wheel     *WheelStep  `| @@`
	Rotate    *RotateStep `| @@`
	Undo      bool        `| @"undo"`
	Space     *SpaceStep  `| @@`
	Zoom      *ZoomStep   `| @@`
	ResetView bool        `| @"resetview"`
	Select    *string     `| "select" @Ident`
	Deselect  bool        `| @"deselect"`
}

// Point is a screen-space coordinate pair.
type Point struct {
	X float64 `@Number`
	Y float64 `@Number`
}

// WheelStep is a scroll; "mod" marks the zoom modifier (ctrl/cmd) as held.
// Example: wheel 0 -3 mod
type WheelStep struct {
	DX       float64 `"wheel" @Number`
	DY       float64 `@Number`
	Modifier bool    `@"mod"?`
}

// RotateStep rotates the named object, or the selection when no id is given.
type RotateStep struct {
	ID string `"rotate" @Ident?`
}

// SpaceStep presses or releases the pan key.
type SpaceStep struct {
	Held bool `"space" ( @"on" | "off" )`
}

// ZoomStep is a zoom button press anchored at At, or at the canvas origin
// when no point is given.
// Example: zoomin 400 300
type ZoomStep struct {
	Out bool   `( "zoomin" | @"zoomout" )`
	At  *Point `@@?`
}

// Command converts the statement to an engine command.
func (s *Step) Command() engine.Command {
	switch {
	case s.Down != nil:
		return engine.Command{Type: engine.CmdPointerDown, X: s.Down.X, Y: s.Down.Y}
	case s.Move != nil:
		return engine.Command{Type: engine.CmdPointerMove, X: s.Move.X, Y: s.Move.Y}
	case s.Up:
		return engine.Command{Type: engine.CmdPointerUp}
	case s.Leave:
		return engine.Command{Type: engine.CmdPointerLeave}
	case s.Wheel != nil:
		return engine.Command{Type: engine.CmdWheel, DX: s.Wheel.DX, DY: s.Wheel.DY, Modifier: s.Wheel.Modifier}
	case s.Rotate != nil:
		return engine.Command{Type: engine.CmdRotate, ID: s.Rotate.ID}
	case s.Undo:
		return engine.Command{Type: engine.CmdUndo}
	case s.Space != nil:
		return engine.Command{Type: engine.CmdSpace, Held: s.Space.Held}
	case s.Zoom != nil:
		cmd := engine.Command{Type: engine.CmdZoomIn}
		if s.Zoom.Out {
			cmd.Type = engine.CmdZoomOut
		}
		if s.Zoom.At != nil {
			cmd.X, cmd.Y = s.Zoom.At.X, s.Zoom.At.Y
		}
		return cmd
	case s.ResetView:
		return engine.Command{Type: engine.CmdResetView}
	case s.Select != nil:
		return engine.Command{Type: engine.CmdSelect, ID: *s.Select}
	case s.Deselect:
		return engine.Command{Type: engine.CmdSelect}
	}
	return engine.Command{}
}

// Commands converts every statement in order.
func (s *Script) Commands() []engine.Command {
	cmds := make([]engine.Command, 0, len(s.Steps))
	for _, step := range s.Steps {
		cmds = append(cmds, step.Command())
	}
	return cmds
}
