package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HoldTracker turns key presses into held actions. Terminals only report
// presses and auto-repeats, so an action counts as held until window has
// passed since its last press.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now. Pressing one direction releases the
// opposite one immediately.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	case core.ActionNone, core.ActionQuit:
		return
	}
	h.until[a] = now.Add(h.window)
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Fill sets every action held at now on frame and forgets expired ones.
func (h *HoldTracker) Fill(frame *core.InputFrame, now time.Time) {
	for a := range h.until {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
