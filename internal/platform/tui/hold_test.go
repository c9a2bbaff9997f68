package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(150 * time.Millisecond)

	h.Press(core.ActionLeft, t0)

	tests := []struct {
		after time.Duration
		held  bool
	}{
		{0, true},
		{100 * time.Millisecond, true},
		{149 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{time.Second, false},
	}
	for _, tc := range tests {
		if got := h.Held(core.ActionLeft, t0.Add(tc.after)); got != tc.held {
			t.Errorf("Held after %v = %v, expected %v", tc.after, got, tc.held)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(150 * time.Millisecond)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRight, t0.Add(100*time.Millisecond))

	if !h.Held(core.ActionRight, t0.Add(200*time.Millisecond)) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(150 * time.Millisecond)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Held(core.ActionLeft, now) {
		t.Error("left should be released by pressing right")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerFill(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(150 * time.Millisecond)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionQuit, t0)
	h.Press(core.ActionNone, t0)

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(50*time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should have left")
	}
	if frame.Has(core.ActionQuit) || frame.Has(core.ActionNone) {
		t.Error("only directions are tracked")
	}

	frame = core.NewInputFrame()
	h.Fill(&frame, t0.Add(time.Second))
	if frame.Has(core.ActionLeft) {
		t.Error("expired hold should not fill the frame")
	}
	if len(h.until) != 0 {
		t.Errorf("expired holds should be forgotten, %d left", len(h.until))
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(time.Second)

	h.Press(core.ActionRight, t0)
	h.Release()
	if h.Held(core.ActionRight, t0) {
		t.Error("Release should drop every hold")
	}
}
