package listbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is a navigation or commit action produced by the key router.
type Command int

const (
	// CommandNone means the key is not handled and its default behavior passes through.
	CommandNone Command = iota
	// CommandFocusNext moves focus down.
	CommandFocusNext
	// CommandFocusPrev moves focus up.
	CommandFocusPrev
	// CommandCommit commits the focused value as the selection.
	CommandCommit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandFocusNext:
		return "focus_next"
	case CommandFocusPrev:
		return "focus_prev"
	case CommandCommit:
		return "commit"
	case CommandNone:
		return "none"
	default:
		return "unknown"
	}
}

// KeyMap defines the listbox key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Commit key.Binding
}

// DefaultKeyMap binds the arrow keys for navigation and Enter/Space for commit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
	}
}

// VimKeyMap extends DefaultKeyMap with j/k navigation.
func VimKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/↑", "previous"),
	)
	km.Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "next"),
	)
	return km
}

// ShortHelp returns bindings for a one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Commit}
}

// KeyRouter translates key presses into listbox commands.
type KeyRouter struct {
	keys KeyMap
}

// NewKeyRouter creates a router over keys.
func NewKeyRouter(keys KeyMap) KeyRouter {
	return KeyRouter{keys: keys}
}

// Keys returns the router's key map.
func (r KeyRouter) Keys() KeyMap {
	return r.keys
}

// Route maps msg to a command. Unbound keys yield CommandNone.
func (r KeyRouter) Route(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, r.keys.Down):
		return CommandFocusNext
	case key.Matches(msg, r.keys.Up):
		return CommandFocusPrev
	case key.Matches(msg, r.keys.Commit):
		return CommandCommit
	default:
		return CommandNone
	}
}
