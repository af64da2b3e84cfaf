package listbox

import (
	"github.com/rs/zerolog"
)

// Scroller is the view-layer capability used to keep the focused row visible.
// ScrollIntoView makes the row bound to id visible within its scroll container,
// scrolling the minimum distance, and reports whether such a row exists.
type Scroller interface {
	ScrollIntoView(id string) bool
}

// ViewportSync requests scroll-into-view for the focused row after each focus change.
// Requests are deferred until Flush so the view can update its layout first.
type ViewportSync struct {
	scroller Scroller
	pending  *string
	dirty    bool
	logger   zerolog.Logger
}

// NewViewportSync creates a sync without a scroller; Flush is a no-op until one is set.
func NewViewportSync(logger zerolog.Logger) *ViewportSync {
	return &ViewportSync{logger: logger}
}

// SetScroller binds the view layer.
func (v *ViewportSync) SetScroller(s Scroller) {
	v.scroller = s
}

// FocusChanged records value as the row to reveal on the next Flush.
func (v *ViewportSync) FocusChanged(value *string) {
	v.pending = cloneValue(value)
	v.dirty = true
}

// Pending reports whether a focus change awaits Flush.
func (v *ViewportSync) Pending() bool {
	return v.dirty
}

// Flush issues the deferred scroll request. Unset values and values with no
// registered row are ignored. It reports whether a row was scrolled into view.
func (v *ViewportSync) Flush(registry *Registry) bool {
	if !v.dirty {
		return false
	}
	value := v.pending
	v.pending = nil
	v.dirty = false

	if v.scroller == nil || value == nil || registry.IndexOf(value) < 0 {
		return false
	}

	found := v.scroller.ScrollIntoView(*value)
	if !found {
		v.logger.Debug().
			Str("operation", "scroll_into_view").
			Str("value", *value).
			Msg("no row bound to focused value")
	}
	return found
}
