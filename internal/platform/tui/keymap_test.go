package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name      string
		msg       tea.KeyMsg
		want      core.Action
		wantForce bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"k", runeKey("k"), core.ActionUp, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"j", runeKey("j"), core.ActionDown, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"redraw", tea.KeyMsg{Type: tea.KeyCtrlL}, core.ActionRedraw, false},
		{"quit", runeKey("q"), core.ActionQuit, false},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, force := keys.MapKey(tt.msg)
			if got != tt.want || force != tt.wantForce {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, force, tt.want, tt.wantForce)
			}
		})
	}
}

func TestMapPromptKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey("y"), core.ActionConfirm},
		{runeKey("Y"), core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey("n"), core.ActionCancel},
		{runeKey("q"), core.ActionCancel},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
	}

	for _, tt := range tests {
		if got := keys.MapPromptKey(tt.msg); got != tt.want {
			t.Errorf("MapPromptKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
