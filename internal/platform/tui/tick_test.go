package tui

import (
	"testing"
	"time"
)

func TestFrameClockDelta(t *testing.T) {
	var c frameClock
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if dt := c.delta(start); dt != 0 {
		t.Errorf("first delta = %v, want 0", dt)
	}
	if dt := c.delta(start.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Errorf("second delta = %v, want 16ms", dt)
	}
	if dt := c.delta(start.Add(50 * time.Millisecond)); dt != 34*time.Millisecond {
		t.Errorf("third delta = %v, want 34ms", dt)
	}
	if dt := c.delta(start); dt != 0 {
		t.Errorf("delta after clock went backwards = %v, want 0", dt)
	}
}
