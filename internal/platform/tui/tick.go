// Package tui runs the game in a terminal through Bubble Tea, standing
// in for the firmware main loop: it latches key presses into the button
// line, steps the controller at the configured tick rate and presents
// the framebuffer as half-block pixels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// after the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
