package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ButtonSize is the rendered size of a button.
type ButtonSize string

// Supported button sizes.
const (
	ButtonMedium ButtonSize = "medium"
	ButtonLarge  ButtonSize = "large"
)

// ButtonClickedMsg is emitted when a button without an OnClick command is pressed.
type ButtonClickedMsg struct {
	Label string
}

//nolint:gochecknoglobals // Immutable key bindings.
var (
	buttonPressKeys = key.NewBinding(key.WithKeys("enter", " "))
	quitKeys        = key.NewBinding(key.WithKeys("esc", "ctrl+c"))
)

// ButtonModel is the primary call-to-action button.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ButtonModel struct {
	Label   string
	Primary bool
	Size    ButtonSize
	// OnClick runs on press. When nil a ButtonClickedMsg is emitted instead.
	OnClick tea.Cmd

	presses int
}

// NewButtonModel returns a primary, medium button.
func NewButtonModel(label string) ButtonModel {
	return ButtonModel{
		Label:   label,
		Primary: true,
		Size:    ButtonMedium,
	}
}

// Presses returns how many times the button was pressed.
func (m ButtonModel) Presses() int {
	return m.presses
}

// Init initializes the model (Bubble Tea interface).
func (m ButtonModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ButtonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			return m, tea.Quit
		}
		if key.Matches(msg, buttonPressKeys) {
			return m.press()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.press()
		}
	}
	return m, nil
}

func (m ButtonModel) press() (tea.Model, tea.Cmd) {
	m.presses++
	if m.OnClick != nil {
		return m, m.OnClick
	}
	label := m.Label
	return m, func() tea.Msg { return ButtonClickedMsg{Label: label} }
}

// View renders the model (Bubble Tea interface).
func (m ButtonModel) View() string {
	return m.style().Render(m.Label)
}

func (m ButtonModel) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 2)
	if m.Size == ButtonLarge {
		s = s.Padding(1, 4)
	}
	if m.Primary {
		return s.Foreground(ColorValue).Background(ColorPrimary)
	}
	return s.Foreground(ColorLabel).Background(ColorSecondary)
}
