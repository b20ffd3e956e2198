package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestApply_Dispatch(t *testing.T) {
	tests := map[string]struct {
		cmds []Command
		want Outcome
	}{
		"pointer down on object": {
			cmds: []Command{{Type: CmdPointerDown, X: 50, Y: 50}},
			want: OutcomeSelected,
		},
		"drag preview": {
			cmds: []Command{
				{Type: CmdPointerDown, X: 50, Y: 50},
				{Type: CmdPointerMove, X: 250, Y: 250},
			},
			want: OutcomePreview,
		},
		"drop": {
			cmds: []Command{
				{Type: CmdPointerDown, X: 50, Y: 50},
				{Type: CmdPointerMove, X: 250, Y: 250},
				{Type: CmdPointerUp},
			},
			want: OutcomeCommitted,
		},
		"leave drops": {
			cmds: []Command{
				{Type: CmdPointerDown, X: 50, Y: 50},
				{Type: CmdPointerLeave},
			},
			want: OutcomeCommitted,
		},
		"rotate by id": {
			cmds: []Command{{Type: CmdRotate, ID: "a"}},
			want: OutcomeCommitted,
		},
		"rotate selection": {
			cmds: []Command{
				{Type: CmdSelect, ID: "a"},
				{Type: CmdRotate},
			},
			want: OutcomeCommitted,
		},
		"undo": {
			cmds: []Command{
				{Type: CmdRotate, ID: "a"},
				{Type: CmdUndo},
			},
			want: OutcomeUndone,
		},
		"space": {
			cmds: []Command{{Type: CmdSpace, Held: true}},
			want: OutcomeView,
		},
		"wheel": {
			cmds: []Command{{Type: CmdWheel, DY: -1, Modifier: true}},
			want: OutcomeView,
		},
		"zoom in":    {cmds: []Command{{Type: CmdZoomIn, X: 400, Y: 250}}, want: OutcomeView},
		"zoom out":   {cmds: []Command{{Type: CmdZoomOut, X: 400, Y: 250}}, want: OutcomeView},
		"reset view": {cmds: []Command{{Type: CmdResetView}}, want: OutcomeView},
		"select unknown": {
			cmds: []Command{{Type: CmdSelect, ID: "ghost"}},
			want: OutcomeNoop,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine(t, room800x500, placedAt("a", 0, 0, 100, 100))

			var r Result
			for _, cmd := range tt.cmds {
				r = e.Apply(cmd)
			}
			if r.Outcome != tt.want {
				t.Errorf("last Apply() = %+v, want %s", r, tt.want)
			}
		})
	}
}

func TestApply_UnknownCommandIgnored(t *testing.T) {
	e := newTestEngine(t, room800x500, placedAt("a", 0, 0, 100, 100))
	before := e.SnapshotJSON()

	r := e.Apply(Command{Type: "key.explode"})
	if r.Outcome != OutcomeIgnored || !errors.Is(r.Err, ErrUnknown) || r.Applied {
		t.Errorf("Apply() = %+v, want ignored", r)
	}
	if !strings.Contains(r.Reason, "key.explode") {
		t.Errorf("Reason = %q, want command type mentioned", r.Reason)
	}
	if e.SnapshotJSON() != before {
		t.Error("unknown command changed state")
	}
}

func TestApplyJSON(t *testing.T) {
	e := newTestEngine(t, room800x500, placedAt("a", 0, 0, 100, 100))

	r, err := e.ApplyJSON(`{"type":"select","id":"a"}`)
	if err != nil {
		t.Fatalf("ApplyJSON() error = %v", err)
	}
	if r.Outcome != OutcomeSelected || e.Selection() != "a" {
		t.Errorf("ApplyJSON() = %+v", r)
	}

	if _, err := e.ApplyJSON(`{"type":`); err == nil {
		t.Error("ApplyJSON() with malformed input returned nil error")
	}
}

func TestResultToJSON(t *testing.T) {
	e := newTestEngine(t, room800x500,
		placedAt("a", 0, 0, 100, 100),
		placedAt("b", 200, 0, 100, 100),
	)

	e.PointerDown(250, 50)
	e.PointerMove(100, 100)
	r := e.PointerUp()

	var decoded map[string]any
	if err := json.Unmarshal([]byte(ResultToJSON(r)), &decoded); err != nil {
		t.Fatalf("ResultToJSON() produced invalid JSON: %v", err)
	}
	if decoded["outcome"] != "rejected" || decoded["objectId"] != "b" {
		t.Errorf("decoded = %v", decoded)
	}
	if decoded["reason"] != ErrOverlap.Error() {
		t.Errorf("reason = %v, want %q", decoded["reason"], ErrOverlap.Error())
	}
	if _, ok := decoded["Err"]; ok {
		t.Error("Err leaked into JSON")
	}
}
