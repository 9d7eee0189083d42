package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
)

// keyProbeHistory is how many presses the probe keeps on screen.
const keyProbeHistory = 10

// KeyProbeModel shows how each key press is decoded and which action it
// maps to. It is a troubleshooting aid for terminals that send unusual
// escape sequences.
type KeyProbeModel struct {
	keys    KeyMap
	logger  *log.Logger
	entries []string
	quit    bool
}

// NewKeyProbeModel creates a key probe.
func NewKeyProbeModel(logger *log.Logger) KeyProbeModel {
	return KeyProbeModel{keys: DefaultKeyMap(), logger: logger}
}

// Init implements tea.Model.
func (m KeyProbeModel) Init() tea.Cmd {
	return nil
}

// Update records key presses; q or ctrl+c leaves.
func (m KeyProbeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	action, _ := m.keys.MapKey(km)
	entry := describeKey(km, action)
	if m.logger != nil {
		m.logger.Debug("key", "name", km.String(), "type", int(km.Type), "action", action)
	}

	m.entries = append(m.entries, entry)
	if len(m.entries) > keyProbeHistory {
		m.entries = m.entries[len(m.entries)-keyProbeHistory:]
	}

	if action == core.ActionQuit {
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the probe history.
func (m KeyProbeModel) View() string {
	var b strings.Builder
	b.WriteString("PRESS A KEY (q to quit)\n\n")
	for _, e := range m.entries {
		b.WriteString(e)
		b.WriteString("\n")
	}
	return b.String()
}

// Entries returns the recorded lines, oldest first.
func (m KeyProbeModel) Entries() []string {
	return m.entries
}

func describeKey(km tea.KeyMsg, action core.Action) string {
	codes := make([]string, 0, len(km.Runes))
	for _, r := range km.Runes {
		codes = append(codes, fmt.Sprintf("%d", r))
	}
	return fmt.Sprintf("key %-10q type %-4d chars [%s] -> %s", km.String(), int(km.Type), strings.Join(codes, " "), action)
}

// RunKeyProbe runs the key probe until q or ctrl+c.
func RunKeyProbe(ctx context.Context, logger *log.Logger) error {
	p := tea.NewProgram(NewKeyProbeModel(logger), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
