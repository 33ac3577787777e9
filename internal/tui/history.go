// Package tui provides terminal UI views for Reckon.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danreyes/reckon/internal/history"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	entryStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			MarginTop(1)
)

// HistoryModel is the bubbletea model for browsing the persisted history
// metadata snapshot. The view is read-only: the snapshot is advisory and
// cannot replay commands.
type HistoryModel struct {
	snapshot history.Snapshot
	found    bool
	width    int
	height   int
}

// NewHistoryModel creates a history browser over a loaded snapshot.
func NewHistoryModel(snapshot history.Snapshot, found bool) *HistoryModel {
	return &HistoryModel{snapshot: snapshot, found: found}
}

// Init initializes the model.
func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the history browser.
func (m *HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Reckon operation history"))
	b.WriteString("\n\n")

	if !m.found {
		b.WriteString(mutedStyle.Render("No history recorded yet."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("Undoable (%d)", m.snapshot.UndoCount)))
	b.WriteString("\n")
	b.WriteString(renderEntries(m.snapshot.UndoDescriptions))

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Redoable (%d)", m.snapshot.RedoCount)))
	b.WriteString("\n")
	b.WriteString(renderEntries(m.snapshot.RedoDescriptions))

	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}

// renderEntries lists descriptions newest-last, matching stack order.
func renderEntries(entries []string) string {
	if len(entries) == 0 {
		return entryStyle.Render(mutedStyle.Render("(empty)")) + "\n"
	}

	var b strings.Builder
	for i, entry := range entries {
		b.WriteString(entryStyle.Render(fmt.Sprintf("%2d. %s", i+1, entry)))
		b.WriteString("\n")
	}
	return b.String()
}

// RunHistoryBrowser starts the interactive history view.
func RunHistoryBrowser(snapshot history.Snapshot, found bool) error {
	p := tea.NewProgram(NewHistoryModel(snapshot, found), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
