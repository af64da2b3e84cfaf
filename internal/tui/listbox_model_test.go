package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listbox/internal/listbox"
)

func cityListbox(def *string) *listbox.Listbox {
	cfg := listbox.DefaultConfig()
	cfg.DefaultValue = def
	return listbox.New(cfg, []listbox.OptionDecl{
		{Value: listbox.Ref("default"), Content: "Choose a city"},
		{Value: listbox.Ref("ny"), Content: "New York"},
		{Value: listbox.Ref("nj"), Content: "New Jersey"},
	})
}

func longListbox(n int, def *string) *listbox.Listbox {
	decls := make([]listbox.OptionDecl, n)
	for i := range decls {
		decls[i] = listbox.OptionDecl{Value: listbox.Ref(fmt.Sprintf("opt-%d", i)), Content: fmt.Sprintf("Option %d", i)}
	}
	cfg := listbox.DefaultConfig()
	cfg.DefaultValue = def
	return listbox.New(cfg, decls)
}

func press(m *ListboxModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// TestListboxModel_KeyboardFlow tests tab focus, navigation and commit through Update.
func TestListboxModel_KeyboardFlow(t *testing.T) {
	m := NewListboxModel(context.Background(), cityListbox(listbox.Ref("default")), "City", 5, 40)

	// Keys are ignored until the listbox has input focus.
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "default", *m.Listbox().Snapshot().FocusedValue)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.Listbox().Focused())

	cmd := press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd, "focus moves do not emit selection changes")
	assert.Equal(t, "nj", *m.Listbox().Snapshot().FocusedValue)

	cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectionChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "nj", *msg.Value)
	assert.Equal(t, m.Listbox().ID(), msg.ListboxID)
	assert.Equal(t, "nj", *m.Selected())

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.Listbox().Focused())
}

// TestListboxModel_FocusMessages tests terminal focus reporting.
func TestListboxModel_FocusMessages(t *testing.T) {
	m := NewListboxModel(context.Background(), cityListbox(nil), "", 5, 40)

	press(m, tea.FocusMsg{})
	assert.True(t, m.Listbox().Focused())
	assert.Equal(t, "default", *m.Listbox().Snapshot().FocusedValue, "first focus initializes the cursor")

	press(m, tea.BlurMsg{})
	assert.False(t, m.Listbox().Focused())
}

// TestListboxModel_ScrollIntoView tests nearest-edge scrolling as focus moves.
func TestListboxModel_ScrollIntoView(t *testing.T) {
	m := NewListboxModel(context.Background(), longListbox(20, nil), "", 5, 40)
	press(m, tea.FocusMsg{})
	assert.Equal(t, 0, m.YOffset())

	for i := 0; i < 4; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 0, m.YOffset(), "row 4 is still visible")

	for i := 0; i < 2; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.YOffset(), "row 6 is aligned to the bottom edge")

	for i := 0; i < 5; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 1, m.YOffset(), "row 1 is aligned to the top edge")

	assert.False(t, m.ScrollIntoView("missing"))
	assert.Equal(t, 1, m.YOffset())
}

// TestListboxModel_InitialScroll tests that a default far down the list starts visible.
func TestListboxModel_InitialScroll(t *testing.T) {
	m := NewListboxModel(context.Background(), longListbox(20, listbox.Ref("opt-15")), "", 5, 40)

	assert.Equal(t, 11, m.YOffset())
}

// TestListboxModel_MouseClick tests pointer selection of a row.
func TestListboxModel_MouseClick(t *testing.T) {
	m := NewListboxModel(context.Background(), cityListbox(listbox.Ref("default")), "", 5, 40)

	cmd := press(m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	require.NotNil(t, cmd)
	snap := m.Listbox().Snapshot()
	assert.Equal(t, "ny", *snap.SelectedValue)
	assert.Equal(t, "ny", *snap.FocusedValue)
	assert.True(t, m.Listbox().Focused())

	// Border and out-of-range lines select nothing.
	assert.Nil(t, press(m, tea.MouseMsg{Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	assert.Nil(t, press(m, tea.MouseMsg{Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	assert.Equal(t, "ny", *m.Selected())
}

// TestListboxModel_View tests the rendered frame, rows and status line.
func TestListboxModel_View(t *testing.T) {
	m := NewListboxModel(context.Background(), cityListbox(listbox.Ref("default")), "City", 5, 40)
	press(m, tea.FocusMsg{}, tea.KeyMsg{Type: tea.KeyDown})

	view := ansi.Strip(m.View())

	assert.Contains(t, view, "City")
	assert.Contains(t, view, "  ✓ Choose a city")
	assert.Contains(t, view, "›   New York")
	assert.Contains(t, view, "3 options · focused: ny · selected: default")
	assert.Contains(t, view, "select")
}

// TestListboxModel_TruncatesLongLabels tests width-aware truncation.
func TestListboxModel_TruncatesLongLabels(t *testing.T) {
	lb := listbox.New(listbox.DefaultConfig(), []listbox.OptionDecl{
		{Value: listbox.Ref("long"), Content: "An option label that is far too long for the frame"},
	})
	m := NewListboxModel(context.Background(), lb, "", 3, 20)

	view := ansi.Strip(m.View())

	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "far too long")
}

// TestListboxModel_EmptyList tests that an empty listbox cannot take focus.
func TestListboxModel_EmptyList(t *testing.T) {
	m := NewListboxModel(context.Background(), listbox.New(listbox.DefaultConfig(), nil), "", 5, 40)

	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.FocusMsg{})

	assert.False(t, m.Listbox().Focused())
	assert.Contains(t, ansi.Strip(m.View()), "No options")
	assert.Contains(t, ansi.Strip(m.View()), "0 options · focused: none · selected: none")
}

// TestListboxModel_Resize tests that rows shrink to fit a short window.
func TestListboxModel_Resize(t *testing.T) {
	m := NewListboxModel(context.Background(), longListbox(20, nil), "Title", 10, 40)

	press(m, tea.WindowSizeMsg{Width: 60, Height: 8})

	assert.Equal(t, 3, m.viewport.Height)
	assert.Equal(t, 58, m.viewport.Width)
}

// TestListboxModel_RunsOnAltScreen tests that the model requests the alternate screen,
// which anchors row coordinates at screen line 0.
func TestListboxModel_RunsOnAltScreen(t *testing.T) {
	m := NewListboxModel(context.Background(), cityListbox(nil), "City", 5, 40)

	cmd := m.Init()

	require.NotNil(t, cmd)
	assert.Equal(t, tea.EnterAltScreen(), cmd())

	// With a title the first row sits below the title and the top border.
	press(m, tea.MouseMsg{Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "nj", *m.Selected())
}

// TestListboxModel_Quit tests the quit binding.
func TestListboxModel_Quit(t *testing.T) {
	m := NewListboxModel(context.Background(), cityListbox(nil), "", 5, 40)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
