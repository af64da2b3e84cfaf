package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonModel_Defaults(t *testing.T) {
	b := NewButtonModel("Save")

	assert.True(t, b.Primary)
	assert.Equal(t, ButtonMedium, b.Size)
	assert.Nil(t, b.Init())
	assert.Contains(t, ansi.Strip(b.View()), "Save")
}

func TestButtonModel_PressEmitsClicked(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}},
		{"left click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, cmd := NewButtonModel("Save").Update(tt.msg)

			require.NotNil(t, cmd)
			assert.Equal(t, ButtonClickedMsg{Label: "Save"}, cmd())
			assert.Equal(t, 1, updated.(ButtonModel).Presses())
		})
	}
}

func TestButtonModel_OnClick(t *testing.T) {
	type saved struct{}
	b := NewButtonModel("Save")
	b.OnClick = func() tea.Msg { return saved{} }

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, saved{}, cmd())
}

func TestButtonModel_IgnoresOtherInput(t *testing.T) {
	b := NewButtonModel("Save")

	updated, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, updated.(ButtonModel).Presses())

	updated, cmd = b.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, updated.(ButtonModel).Presses())
}

func TestButtonModel_Quit(t *testing.T) {
	_, cmd := NewButtonModel("Save").Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestButtonModel_LargeSecondary(t *testing.T) {
	b := NewButtonModel("Cancel")
	b.Primary = false
	b.Size = ButtonLarge

	lines := len(strings.Split(b.View(), "\n"))

	assert.Equal(t, 3, lines, "large buttons carry vertical padding")
	assert.Contains(t, ansi.Strip(b.View()), "Cancel")
}

