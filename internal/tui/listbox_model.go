package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/listbox/internal/listbox"
	"github.com/rshade/listbox/internal/logging"
)

// Row layout.
const (
	frameWidth     = 2 // left and right border
	frameTopLines  = 1
	rowMarkerWidth = 4 // cursor, space, check, space
	truncateTail   = "…"
	cursorMarker   = "›"
	checkMarker    = "✓"
	emptyListText  = "No options"
	unsetValueText = "none"
)

// SelectionChangedMsg is emitted when the listbox selection changes.
type SelectionChangedMsg struct {
	ListboxID string
	Value     *string
}

// listboxKeys are the model-level bindings layered over the listbox key map.
type listboxKeys struct {
	listbox listbox.KeyMap
	Tab     key.Binding
	Quit    key.Binding
}

func newListboxKeys(km listbox.KeyMap) listboxKeys {
	return listboxKeys{
		listbox: km,
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k listboxKeys) ShortHelp() []key.Binding {
	return append(k.listbox.ShortHelp(), k.Tab, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k listboxKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ListboxModel renders a listbox.Listbox inside a scrollable frame and feeds it
// Bubble Tea key, mouse and focus messages. It is the listbox's Scroller.
type ListboxModel struct {
	ctx      context.Context
	lb       *listbox.Listbox
	title    string
	viewport viewport.Model
	help     help.Model
	keys     listboxKeys
	width    int
	rows     int
	printer  *message.Printer
	quitting bool
	logger   zerolog.Logger
}

// NewListboxModel creates a model showing rows option lines at most width columns wide.
func NewListboxModel(ctx context.Context, lb *listbox.Listbox, title string, rows, width int) *ListboxModel {
	if rows < 1 {
		rows = 1
	}
	if width <= frameWidth+rowMarkerWidth {
		width = defaultWidth
	}

	logger := logging.ComponentLogger(*logging.FromContext(ctx), "tui")
	m := &ListboxModel{
		ctx:     ctx,
		lb:      lb,
		title:   title,
		help:    help.New(),
		keys:    newListboxKeys(lb.Keys()),
		width:   width,
		rows:    rows,
		printer: message.NewPrinter(language.English),
		logger:  logger,
	}
	m.viewport = viewport.New(width-frameWidth, rows)
	m.viewport.KeyMap = viewport.KeyMap{}

	lb.SetLogger(logging.ComponentLogger(*logging.FromContext(ctx), "listbox"))
	lb.SetScroller(m)
	m.refresh()
	lb.SyncViewport()
	return m
}

// Listbox returns the wrapped listbox.
func (m *ListboxModel) Listbox() *listbox.Listbox {
	return m.lb
}

// Selected returns the selected value, or nil.
func (m *ListboxModel) Selected() *string {
	return m.lb.Snapshot().SelectedValue
}

// YOffset returns the index of the first visible row.
func (m *ListboxModel) YOffset() int {
	return m.viewport.YOffset
}

// Init initializes the model (Bubble Tea interface). The model runs on the alternate
// screen so mouse coordinates line up with the rendered view.
func (m *ListboxModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m *ListboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.lb.Snapshot()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.FocusMsg:
		m.focus()
	case tea.BlurMsg:
		m.lb.Blur()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			if m.lb.Focused() {
				m.lb.Blur()
			} else {
				m.focus()
			}
		default:
			m.lb.HandleKey(msg)
		}
	case tea.MouseMsg:
		return m, m.handleMouse(msg, before)
	}

	return m, m.afterUpdate(before)
}

// focus gives the listbox input focus unless it is out of the tab order.
func (m *ListboxModel) focus() {
	if !m.lb.Tabbable() {
		return
	}
	m.lb.Focus()
}

func (m *ListboxModel) handleMouse(msg tea.MouseMsg, before listbox.Snapshot) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if row := m.rowAt(msg.Y); row >= 0 {
			m.lb.ClickIndex(row)
		}
	}
	return m.afterUpdate(before)
}

// afterUpdate re-renders rows, then reveals the focused row against the new layout.
func (m *ListboxModel) afterUpdate(before listbox.Snapshot) tea.Cmd {
	m.refresh()
	m.lb.SyncViewport()

	after := m.lb.Snapshot()
	if sameValue(before.SelectedValue, after.SelectedValue) {
		return nil
	}
	m.logger.Debug().
		Ctx(m.ctx).
		Str("listbox_id", m.lb.ID()).
		Str("value", valueText(after.SelectedValue)).
		Msg("selection changed")
	changed := SelectionChangedMsg{ListboxID: m.lb.ID(), Value: after.SelectedValue}
	return func() tea.Msg { return changed }
}

func (m *ListboxModel) resize(width, height int) {
	if width > frameWidth+rowMarkerWidth {
		m.width = width
		m.viewport.Width = width - frameWidth
	}
	rows := m.rows
	if avail := height - m.chromeLines(); avail > 0 && avail < rows {
		rows = avail
	}
	m.viewport.Height = rows
}

// chromeLines is the number of lines rendered around the rows.
func (m *ListboxModel) chromeLines() int {
	return m.rowsTop() + frameTopLines + 2 // bottom border, status, help
}

// rowsTop is the screen line of the first visible row.
func (m *ListboxModel) rowsTop() int {
	if m.title != "" {
		return 1 + frameTopLines
	}
	return frameTopLines
}

// rowAt maps a screen line to a declared row index, or -1. The view starts at line 0 of
// the alternate screen.
func (m *ListboxModel) rowAt(y int) int {
	line := y - m.rowsTop()
	if line < 0 || line >= m.viewport.Height {
		return -1
	}
	row := line + m.viewport.YOffset
	if row >= len(m.lb.Decls()) {
		return -1
	}
	return row
}

// ScrollIntoView scrolls the minimum distance that makes the row bound to id visible.
func (m *ListboxModel) ScrollIntoView(id string) bool {
	row := firstDeclIndex(m.lb.Decls(), &id)
	if row < 0 {
		return false
	}

	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	switch {
	case row < top:
		m.viewport.SetYOffset(row)
	case row > bottom:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
	return true
}

// refresh renders every declared row into the viewport.
func (m *ListboxModel) refresh() {
	decls := m.lb.Decls()
	if len(decls) == 0 {
		m.viewport.SetContent(InfoStyle.Render(emptyListText))
		return
	}

	snap := m.lb.Snapshot()
	focusedRow := firstDeclIndex(decls, snap.FocusedValue)
	selectedRow := firstDeclIndex(decls, snap.SelectedValue)

	lines := make([]string, len(decls))
	for i, d := range decls {
		lines[i] = m.renderRow(m.lb.Label(i), d.Disabled, i == focusedRow, i == selectedRow)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *ListboxModel) renderRow(label string, disabled, focused, selected bool) string {
	cursor := " "
	if focused {
		cursor = cursorMarker
	}
	check := " "
	if selected {
		check = checkMarker
	}

	avail := m.viewport.Width - rowMarkerWidth
	line := cursor + " " + check + " " + ansi.Truncate(label, avail, truncateTail)

	var style lipgloss.Style
	switch {
	case focused && m.lb.Focused():
		style = ActiveRowStyle
	case disabled:
		style = DisabledRowStyle
	case selected:
		style = SelectedRowStyle
	default:
		style = RowStyle
	}
	return style.Render(line)
}

// View renders the model (Bubble Tea interface).
func (m *ListboxModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(HeaderStyle.Render(m.title))
		b.WriteString("\n")
	}

	frame := ListboxFrameStyle
	if m.lb.Focused() {
		frame = frame.BorderForeground(ColorHighlight)
	}
	b.WriteString(frame.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *ListboxModel) status() string {
	snap := m.lb.Snapshot()
	return m.printer.Sprintf("%d options · focused: %s · selected: %s",
		len(m.lb.Decls()), valueText(snap.FocusedValue), valueText(snap.SelectedValue))
}

func firstDeclIndex(decls []listbox.OptionDecl, value *string) int {
	if value == nil {
		return -1
	}
	for i, d := range decls {
		if d.Value != nil && *d.Value == *value {
			return i
		}
	}
	return -1
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func valueText(v *string) string {
	if v == nil {
		return unsetValueText
	}
	return *v
}
