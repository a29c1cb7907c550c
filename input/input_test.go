package input

import (
	"bytes"
	"strings"
	"testing"

	"glitch-corridor/internal/logger"
)

const (
	keyW = 87
	keyA = 65
	keyS = 83
	keyD = 68
	keyQ = 81
)

func wasd() KeyMap {
	return KeyMap{keyW: DirForward, keyS: DirBackward, keyA: DirLeft, keyD: DirRight}
}

func TestStateReset(t *testing.T) {
	s := State{Forward: true, Backward: true, Left: true, Right: true}
	s.Reset()
	if s.Any() {
		t.Errorf("Reset must clear every flag, got %+v", s)
	}
}

func TestStateAxes(t *testing.T) {
	tests := []struct {
		s    State
		z, x float32
	}{
		{State{}, 0, 0},
		{State{Forward: true}, 1, 0},
		{State{Backward: true, Left: true}, -1, -1},
		{State{Forward: true, Backward: true, Right: true}, 0, 1},
	}
	for _, tt := range tests {
		z, x := tt.s.Axes()
		if z != tt.z || x != tt.x {
			t.Errorf("%+v: expected (%v,%v), got (%v,%v)", tt.s, tt.z, tt.x, z, x)
		}
	}
}

func TestKeyboard(t *testing.T) {
	var s State
	kb := NewKeyboard(&s, wasd())

	kb.HandleKey(keyW, true)
	kb.HandleKey(keyD, true)
	if !s.Forward || !s.Right || s.Left || s.Backward {
		t.Errorf("unexpected state after presses: %+v", s)
	}
	kb.HandleKey(keyW, false)
	if s.Forward {
		t.Error("release must clear the flag")
	}
	if kb.HandleKey(keyQ, true) {
		t.Error("unmapped key must be ignored")
	}
}

func TestBindTouchControlsMissingControl(t *testing.T) {
	var buf bytes.Buffer
	var s State
	pad := NewGamepadPad()
	lookup := func(name string) Control {
		if name == "s" {
			return nil
		}
		return pad.Control(name)
	}
	tc := BindTouchControls(&s, lookup, logger.New(&buf, "debug"))
	if tc.Bound() {
		t.Fatal("binding must be skipped when a control is missing")
	}
	tc.SetActive(true)
	pad.Update(DPad{Present: true, Up: true})
	if s.Forward {
		t.Error("unbound controls must not change state")
	}
	if !strings.Contains(buf.String(), "touch input disabled") {
		t.Errorf("expected a debug note, got %q", buf.String())
	}

	// Keyboard is unaffected.
	NewKeyboard(&s, wasd()).HandleKey(keyS, true)
	if !s.Backward {
		t.Error("keyboard must still work")
	}
}

func TestGamepadTouchControls(t *testing.T) {
	var s State
	pad := NewGamepadPad()
	tc := BindTouchControls(&s, pad.Control, logger.New(&bytes.Buffer{}, "error"))
	if !tc.Bound() {
		t.Fatal("expected all four controls to bind")
	}

	// Inactive controls are ignored.
	pad.Update(DPad{Present: true, Up: true})
	if s.Forward {
		t.Error("inactive controls must not change state")
	}
	pad.Update(DPad{Present: true})

	tc.SetActive(true)
	pad.Update(DPad{Present: true, Up: true, Left: true})
	if !s.Forward || !s.Left {
		t.Errorf("expected forward+left, got %+v", s)
	}
	pad.Update(DPad{Present: true, Left: true})
	if s.Forward || !s.Left {
		t.Errorf("expected left only, got %+v", s)
	}

	// Unplugging releases everything.
	pad.Update(DPad{Present: false, Left: true})
	if s.Any() || pad.Present() {
		t.Errorf("disconnect must release all buttons, got %+v", s)
	}
	if pad.Control("x") != nil {
		t.Error("unknown control must be nil")
	}
}
