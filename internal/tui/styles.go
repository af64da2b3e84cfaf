package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette shared by all widgets.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("212")
	ColorPrimary   = lipgloss.Color("63")
	ColorSecondary = lipgloss.Color("238")
)

// Shared text styles.
//
//nolint:gochecknoglobals // Immutable style values.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	// Listbox row styles.
	RowStyle         = lipgloss.NewStyle().Foreground(ColorValue)
	ActiveRowStyle   = lipgloss.NewStyle().Foreground(ColorHighlight).Reverse(true)
	SelectedRowStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	DisabledRowStyle = lipgloss.NewStyle().Foreground(ColorMuted).Strikethrough(true)

	// ListboxFrameStyle frames the listbox; the border color tracks input focus.
	ListboxFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary)
)

// defaultWidth is used when no terminal width is known.
const defaultWidth = 80

// TerminalWidth returns the width of stdout, or defaultWidth when it is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// DisableColor makes every style render plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
