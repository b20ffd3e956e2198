//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/inamate/roomplanner/internal/engine"
	"github.com/inamate/roomplanner/internal/layout"
)

var eng *engine.Engine

func main() {
	var err error
	eng, err = engine.New(mustLevel(layout.DefaultLevelID))
	if err != nil {
		panic(err)
	}

	// Create the engine API object
	roomEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	roomEngine.Set("loadLevel", js.FuncOf(loadLevel))
	roomEngine.Set("reset", js.FuncOf(reset))
	roomEngine.Set("apply", js.FuncOf(apply))
	roomEngine.Set("pointerDown", js.FuncOf(pointerDown))
	roomEngine.Set("pointerMove", js.FuncOf(pointerMove))
	roomEngine.Set("pointerUp", js.FuncOf(pointerUp))
	roomEngine.Set("pointerLeave", js.FuncOf(pointerLeave))
	roomEngine.Set("wheel", js.FuncOf(wheel))
	roomEngine.Set("rotate", js.FuncOf(rotate))
	roomEngine.Set("undo", js.FuncOf(undo))
	roomEngine.Set("setSpaceHeld", js.FuncOf(setSpaceHeld))
	roomEngine.Set("zoomIn", js.FuncOf(zoomIn))
	roomEngine.Set("zoomOut", js.FuncOf(zoomOut))
	roomEngine.Set("resetView", js.FuncOf(resetView))

	// --- Queries (frontend ← engine) ---
	roomEngine.Set("render", js.FuncOf(render))
	roomEngine.Set("getSnapshot", js.FuncOf(getSnapshot))
	roomEngine.Set("getSelection", js.FuncOf(getSelection))
	roomEngine.Set("getLevels", js.FuncOf(getLevels))

	// Register on global scope
	js.Global().Set("roomEngine", roomEngine)

	// Signal that WASM is ready
	js.Global().Set("roomWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func mustLevel(id string) layout.Level {
	lvl, err := layout.LevelByID(id)
	if err != nil {
		panic(err)
	}
	return lvl
}

func result(r engine.Result) interface{} {
	return js.ValueOf(engine.ResultToJSON(r))
}

func floatArg(args []js.Value, i int) float64 {
	if len(args) <= i || args[i].Type() != js.TypeNumber {
		return 0
	}
	return args[i].Float()
}

// --- Command Handlers ---

func loadLevel(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing level id"})
	}

	lvl, err := layout.LevelByID(args[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	next, err := engine.New(lvl)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	eng = next
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func reset(this js.Value, args []js.Value) interface{} {
	eng.Reset()
	return nil
}

// apply takes a JSON-encoded command and returns the JSON-encoded result.
func apply(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing command JSON"})
	}

	r, err := eng.ApplyJSON(args[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return result(r)
}

func pointerDown(this js.Value, args []js.Value) interface{} {
	return result(eng.PointerDown(floatArg(args, 0), floatArg(args, 1)))
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	return result(eng.PointerMove(floatArg(args, 0), floatArg(args, 1)))
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	return result(eng.PointerUp())
}

func pointerLeave(this js.Value, args []js.Value) interface{} {
	return result(eng.PointerLeave())
}

func wheel(this js.Value, args []js.Value) interface{} {
	modifier := len(args) > 2 && args[2].Truthy()
	return result(eng.Wheel(floatArg(args, 0), floatArg(args, 1), modifier))
}

func rotate(this js.Value, args []js.Value) interface{} {
	if len(args) > 0 && args[0].Type() == js.TypeString {
		return result(eng.RotateObject(args[0].String()))
	}
	return result(eng.Rotate())
}

func undo(this js.Value, args []js.Value) interface{} {
	return result(eng.Undo())
}

func setSpaceHeld(this js.Value, args []js.Value) interface{} {
	held := len(args) > 0 && args[0].Truthy()
	return result(eng.SetSpaceHeld(held))
}

func zoomIn(this js.Value, args []js.Value) interface{} {
	return result(eng.ZoomIn(floatArg(args, 0), floatArg(args, 1)))
}

func zoomOut(this js.Value, args []js.Value) interface{} {
	return result(eng.ZoomOut(floatArg(args, 0), floatArg(args, 1)))
}

func resetView(this js.Value, args []js.Value) interface{} {
	return result(eng.ResetView())
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

func getSnapshot(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.SnapshotJSON())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Selection())
}

func getLevels(this js.Value, args []js.Value) interface{} {
	levels := layout.Levels()
	ids := make([]interface{}, 0, len(levels))
	for _, lvl := range levels {
		ids = append(ids, lvl.ID)
	}
	return js.ValueOf(ids)
}
