// Package tui provides the Bubble Tea integration for the arcade platform.
// It drives the simulation clock, maps terminal keys to game keys and
// turns the game's screen buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock produces session timestamps in milliseconds.
// Time spent paused is excluded, so a resumed session continues where it stopped.
type frameClock struct {
	start    time.Time
	last     time.Time
	pausedAt time.Time
	paused   bool
}

func newFrameClock(now time.Time) *frameClock {
	return &frameClock{start: now, last: now}
}

// Next returns the timestamp of a frame at now and the time since the previous frame.
func (c *frameClock) Next(now time.Time) (ts, delta float64) {
	ts = millis(now.Sub(c.start))
	delta = millis(now.Sub(c.last))
	c.last = now
	return ts, delta
}

// Pause stops the clock at now.
func (c *frameClock) Pause(now time.Time) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume restarts the clock, dropping the paused interval.
func (c *frameClock) Resume(now time.Time) {
	if !c.paused {
		return
	}
	gap := now.Sub(c.pausedAt)
	c.start = c.start.Add(gap)
	c.last = c.last.Add(gap)
	c.paused = false
}

// Restart zeroes the clock for a new session.
func (c *frameClock) Restart(now time.Time) {
	*c = frameClock{start: now, last: now}
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
