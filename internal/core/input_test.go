package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Elapsed = 16 * time.Millisecond
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("Has() mismatch after Set(Left): %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Elapsed != 0 {
		t.Errorf("Clear() should reset actions and elapsed, got %v / %v", f.Actions, f.Elapsed)
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionRight: "Right",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
