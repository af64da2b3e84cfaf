package listbox

import (
	"github.com/rs/zerolog"
)

// Direction is a keyboard navigation direction.
type Direction int

const (
	// Up moves focus toward the first option.
	Up Direction = iota
	// Down moves focus toward the last option.
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

func (d Direction) step() int {
	if d == Up {
		return -1
	}
	return 1
}

// Phase summarizes the focus/selection state of a listbox.
type Phase int

const (
	// PhaseUnfocused means no option is focused.
	PhaseUnfocused Phase = iota
	// PhaseFocusedNoSelection means focus is set and differs from the selection,
	// or the selection is unset or stale.
	PhaseFocusedNoSelection
	// PhaseFocusedWithSelection means focus and selection reference the same value.
	PhaseFocusedWithSelection
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUnfocused:
		return "unfocused"
	case PhaseFocusedNoSelection:
		return "focused_no_selection"
	case PhaseFocusedWithSelection:
		return "focused_with_selection"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of listbox state handed to rows and renderers.
type Snapshot struct {
	Options       []OptionDescriptor
	FocusedValue  *string
	SelectedValue *string
}

// IsFocused reports whether o is the row bound to the focused value.
// With duplicate values only the first matching row counts.
func (s Snapshot) IsFocused(o OptionDescriptor) bool {
	return o.Matches(s.FocusedValue) && firstMatch(s.Options, s.FocusedValue) == o.Index
}

// IsSelected reports whether o carries the selected value.
func (s Snapshot) IsSelected(o OptionDescriptor) bool {
	return o.Matches(s.SelectedValue) && firstMatch(s.Options, s.SelectedValue) == o.Index
}

func firstMatch(options []OptionDescriptor, value *string) int {
	for _, o := range options {
		if o.Matches(value) {
			return o.Index
		}
	}
	return -1
}

// RowIntents are the only mutation paths exposed to option rows.
type RowIntents struct {
	RequestFocus     func(value *string)
	RequestSelection func(value *string)
}

// FocusObserver is notified after the focused value has changed.
type FocusObserver func(value *string)

// Controller owns listbox state and is its single writer.
type Controller struct {
	registry *Registry
	focused  *string
	selected *string
	observer FocusObserver
	logger   zerolog.Logger
}

// NewController creates a controller over registry seeded with defaultValue.
func NewController(registry *Registry, defaultValue *string, logger zerolog.Logger) *Controller {
	c := &Controller{
		registry: registry,
		logger:   logger,
	}
	c.focused = cloneValue(defaultValue)
	c.selected = cloneValue(defaultValue)
	return c
}

// OnFocusChange registers the observer invoked after every focus change.
func (c *Controller) OnFocusChange(fn FocusObserver) {
	c.observer = fn
}

// Initialize sets both focus and selection to defaultValue.
func (c *Controller) Initialize(defaultValue *string) {
	c.selected = cloneValue(defaultValue)
	c.setFocused(defaultValue)
	c.logger.Debug().
		Str("operation", "initialize").
		Str("value", display(defaultValue)).
		Msg("listbox state reset to default value")
}

// MoveFocus moves focus one option in dir. It never wraps and returns whether focus changed.
// Navigation starts from index 0 when the focused value is unset or stale. Placeholder rows
// without a value are stepped over; disabled rows are not.
func (c *Controller) MoveFocus(dir Direction) bool {
	current := c.registry.IndexOf(c.focused)
	if current < 0 {
		current = 0
	}

	target := current + dir.step()
	for {
		opt, ok := c.registry.At(target)
		if !ok {
			c.logger.Debug().
				Str("operation", "move_focus").
				Str("direction", dir.String()).
				Int("index", current).
				Msg("focus at boundary, ignoring")
			return false
		}
		if !opt.HasValue() {
			target += dir.step()
			continue
		}
		if opt.Matches(c.focused) {
			return false
		}
		c.setFocused(opt.Value)
		return true
	}
}

// CommitSelection sets the selection to the focused value.
func (c *Controller) CommitSelection() bool {
	if equalValues(c.selected, c.focused) {
		return false
	}
	c.selected = cloneValue(c.focused)
	c.logger.Debug().
		Str("operation", "commit_selection").
		Str("value", display(c.selected)).
		Msg("selection committed")
	return true
}

// SetFocus moves focus directly to value.
func (c *Controller) SetFocus(value *string) {
	c.setFocused(value)
}

// SetSelection selects value and moves focus with it.
func (c *Controller) SetSelection(value *string) {
	c.selected = cloneValue(value)
	c.setFocused(value)
	c.logger.Debug().
		Str("operation", "set_selection").
		Str("value", display(value)).
		Msg("selection set")
}

// FocusFirstIfUnset focuses the first option when nothing is focused.
func (c *Controller) FocusFirstIfUnset() bool {
	if c.focused != nil {
		return false
	}
	first, ok := c.registry.First()
	if !ok {
		return false
	}
	c.setFocused(first.Value)
	return true
}

// Focused returns the focused value, or nil.
func (c *Controller) Focused() *string {
	return cloneValue(c.focused)
}

// Selected returns the selected value, or nil.
func (c *Controller) Selected() *string {
	return cloneValue(c.selected)
}

// FocusedIndex returns the index of the focused option, or -1 when unset or stale.
func (c *Controller) FocusedIndex() int {
	return c.registry.IndexOf(c.focused)
}

// SelectedIndex returns the index of the selected option, or -1 when unset or stale.
func (c *Controller) SelectedIndex() int {
	return c.registry.IndexOf(c.selected)
}

// Phase reports the current state-machine phase.
func (c *Controller) Phase() Phase {
	switch {
	case c.focused == nil:
		return PhaseUnfocused
	case c.registry.IndexOf(c.selected) >= 0 && equalValues(c.focused, c.selected):
		return PhaseFocusedWithSelection
	default:
		return PhaseFocusedNoSelection
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Options:       c.registry.All(),
		FocusedValue:  cloneValue(c.focused),
		SelectedValue: cloneValue(c.selected),
	}
}

// Intents returns row callbacks bound to this controller.
func (c *Controller) Intents() RowIntents {
	return RowIntents{
		RequestFocus:     c.SetFocus,
		RequestSelection: c.SetSelection,
	}
}

func (c *Controller) setFocused(value *string) {
	if equalValues(c.focused, value) {
		return
	}
	prev := c.focused
	c.focused = cloneValue(value)
	c.logger.Debug().
		Str("from", display(prev)).
		Str("to", display(c.focused)).
		Msg("focus changed")
	if c.observer != nil {
		c.observer(cloneValue(c.focused))
	}
}
