package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ComboboxModel is a plain text input. It has no suggestion logic yet.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ComboboxModel struct {
	input textinput.Model
}

// NewComboboxModel returns a focused combobox showing placeholder.
func NewComboboxModel(placeholder string) ComboboxModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return ComboboxModel{input: ti}
}

// Value returns the typed text.
func (m ComboboxModel) Value() string {
	return m.input.Value()
}

// Init initializes the model (Bubble Tea interface).
func (m ComboboxModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ComboboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, quitKeys) {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the model (Bubble Tea interface).
func (m ComboboxModel) View() string {
	return m.input.View()
}
