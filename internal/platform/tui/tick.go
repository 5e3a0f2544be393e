// Package tui provides the Bubble Tea integration for the game platform.
// It drives the frame loop, maps keys to actions, and renders screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame. It carries the time it fired.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one frame interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures the elapsed time between consecutive ticks.
type frameClock struct {
	last time.Time
}

// delta returns the time since the previous tick, zero for the first tick,
// and never a negative value.
func (c *frameClock) delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
