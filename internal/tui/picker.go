// Package tui implements the interactive pattern picker.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerItem is one selectable saved pattern with its resolved
// invocation details for the preview line.
type PickerItem struct {
	Name    string
	Engine  string
	Flags   string
	Pattern string
}

// PickerModel holds the state for the pattern picker.
type PickerModel struct {
	Items  []PickerItem
	Cursor int
	Width  int
	Height int

	// Choice is set when the user confirms a selection with enter.
	Choice *PickerItem

	Quitting bool
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	previewStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewPickerModel creates a picker over the given items.
func NewPickerModel(items []PickerItem) PickerModel {
	return PickerModel{Items: items}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "g":
			m.Cursor = 0
		case "G":
			m.Cursor = len(m.Items) - 1
		case "enter":
			choice := m.Items[m.Cursor]
			m.Choice = &choice
			m.Quitting = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.Quitting || len(m.Items) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Saved patterns"))
	b.WriteString("\n\n")

	for i, item := range m.Items {
		if i == m.Cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(item.Name))
		} else {
			b.WriteString("  ")
			b.WriteString(item.Name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(previewStyle.Render(previewLine(m.Items[m.Cursor])))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("j/k: move • g/G: top/bottom • enter: run • q: quit"))
	b.WriteString("\n")

	return b.String()
}

// previewLine renders the command the highlighted pattern would run.
func previewLine(item PickerItem) string {
	if item.Flags == "" {
		return fmt.Sprintf("%s %q", item.Engine, item.Pattern)
	}
	return fmt.Sprintf("%s %s %q", item.Engine, item.Flags, item.Pattern)
}
