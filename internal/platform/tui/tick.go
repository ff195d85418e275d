// Package tui provides the Bubble Tea integration for termtris.
// It handles the terminal UI loop, input mapping, the gravity timer,
// score persistence on game over and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is a gravity tick. Gen identifies the session that scheduled it;
// ticks from an earlier session are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules one gravity tick after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
