package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyPlaying(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"up rotates", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"down drops", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop},
		{"letter quits", runeKey('x'), core.ActionQuit},
		{"r quits while playing", runeKey('r'), core.ActionQuit},
		{"space quits", tea.KeyMsg{Type: tea.KeySpace}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, false); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyGameOver(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"arrow quits", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionQuit},
		{"letter quits", runeKey('q'), core.ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, true); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp has %d bindings, want 5", len(keys.ShortHelp()))
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp has %d groups, want 2", len(keys.FullHelp()))
	}
}
