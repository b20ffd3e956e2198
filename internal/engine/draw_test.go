package engine

import (
	"encoding/json"
	"testing"

	"github.com/inamate/roomplanner/internal/layout"
)

func layers(cmds []DrawCommand) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Layer)
	}
	return out
}

func TestCompileDrawCommands_Order(t *testing.T) {
	room := layout.Room{
		Width: 200, Height: 100, GridSize: 50,
		Zones: []layout.Zone{{ID: "z", Label: "Zone", X: 0, Y: 0, W: 100, H: 100, Color: "#111"}},
	}
	e := newTestEngine(t, room, placedAt("a", 0, 0, 50, 50))
	e.Select("a")
	e.PointerDown(25, 25)
	e.PointerMove(125, 25)

	cmds := CompileDrawCommands(e.Snapshot())
	want := []string{"zone", "zone", "grid", "room", "selection", "object", "object", "ghost"}
	got := layers(cmds)
	if len(got) != len(want) {
		t.Fatalf("layers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("layers = %v, want %v", got, want)
		}
	}

	ghost := cmds[len(cmds)-1]
	if ghost.ObjectID != "a" || ghost.Fill != ghostFill {
		t.Errorf("ghost = %+v, want valid ghost for a", ghost)
	}
}

func TestCompileDrawCommands_GridLines(t *testing.T) {
	e := newTestEngine(t, layout.Room{Width: 200, Height: 100, GridSize: 50})
	cmds := CompileDrawCommands(e.Snapshot())

	var grid *DrawCommand
	for i := range cmds {
		if cmds[i].Layer == "grid" {
			grid = &cmds[i]
		}
	}
	if grid == nil {
		t.Fatal("no grid command")
	}
	// 5 vertical and 3 horizontal lines, two segments each.
	if got := len(grid.Path); got != 16 {
		t.Errorf("grid path has %d segments, want 16", got)
	}
}

func TestCompileDrawCommands_RotatedObjectTransform(t *testing.T) {
	e := newTestEngine(t, layout.Room{Width: 800, Height: 500, GridSize: 50},
		layout.Furniture{ID: "bed", W: 150, H: 80, X: ptr(100), Y: ptr(100), Rotation: layout.Rotate90, Placed: true},
	)

	var obj *DrawCommand
	cmds := CompileDrawCommands(e.Snapshot())
	for i := range cmds {
		if cmds[i].Layer == "object" && cmds[i].Op == "path" {
			obj = &cmds[i]
		}
	}
	if obj == nil {
		t.Fatal("no object path")
	}

	// Effective box is 80x150 at (100,100), so the center is (140,175).
	want := []float64{0, 1, -1, 0, 140, 175}
	for i, v := range want {
		if obj.Transform[i] != v {
			t.Fatalf("transform = %v, want %v", obj.Transform, want)
		}
	}
	if first := obj.Path[0]; first[1] != -75.0 || first[2] != -40.0 {
		t.Errorf("path starts at %v, want intrinsic corner (-75,-40)", first)
	}
}

func TestCompileDrawCommands_InvalidGhostAndUnplaced(t *testing.T) {
	e := newTestEngine(t, layout.Room{Width: 800, Height: 500, GridSize: 50},
		placedAt("a", 0, 0, 100, 100),
		unplacedAt("b", 300, 300, 100, 100),
	)
	e.PointerDown(350, 350)
	e.PointerMove(100, 100)

	cmds := CompileDrawCommands(e.Snapshot())
	for _, c := range cmds {
		if c.Layer == "object" && c.ObjectID == "b" && c.Opacity != 0.6 {
			t.Errorf("unplaced object opacity = %v, want 0.6", c.Opacity)
		}
	}
	if ghost := cmds[len(cmds)-1]; ghost.Layer != "ghost" || ghost.Fill != ghostInvalid {
		t.Errorf("ghost = %+v, want invalid fill", ghost)
	}
}

func TestRender_IsValidJSON(t *testing.T) {
	lvl, err := layout.LevelByID("house")
	if err != nil {
		t.Fatal(err)
	}
	e, err := New(lvl)
	if err != nil {
		t.Fatal(err)
	}

	var cmds []DrawCommand
	if err := json.Unmarshal([]byte(e.Render()), &cmds); err != nil {
		t.Fatalf("Render() produced invalid JSON: %v", err)
	}
	if len(cmds) == 0 {
		t.Error("Render() produced no commands")
	}

	if got, _ := DrawCommandsToJSON(nil); got != "[]" {
		t.Errorf("DrawCommandsToJSON(nil) = %q, want []", got)
	}
}
