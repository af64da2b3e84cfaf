package listbox

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config is the construction-time configuration of a Listbox.
type Config struct {
	// DefaultValue seeds focus and selection, and resets both whenever it changes.
	DefaultValue *string
	// RebuildOnOptionsChange rebuilds the registry when SetOptions changes the declared set.
	// When false the registry stays frozen at its construction-time options.
	RebuildOnOptionsChange bool
	// Policy controls the accessibility projection.
	Policy AnnotationPolicy
	// Keys binds navigation and commit keys.
	Keys KeyMap
}

// DefaultConfig returns a Config with registry rebuilds enabled and the default key map.
func DefaultConfig() Config {
	return Config{
		RebuildOnOptionsChange: true,
		Keys:                   DefaultKeyMap(),
	}
}

// Result describes the outcome of routing one key press.
type Result struct {
	Command Command
	// Handled is true when the key was consumed and its default behavior suppressed.
	Handled bool
	// Changed is true when focus or selection changed.
	Changed bool
}

// Listbox is the container: it owns the registry and controller and routes input to them.
type Listbox struct {
	id       string
	cfg      Config
	decls    []OptionDecl
	registry *Registry
	ctrl     *Controller
	router   KeyRouter
	sync     *ViewportSync
	focused  bool
	logger   zerolog.Logger
}

// New creates a listbox over decls. Logging is disabled until SetLogger is called.
func New(cfg Config, decls []OptionDecl) *Listbox {
	lb := &Listbox{
		id:       "listbox-" + strings.ToLower(ulid.Make().String()),
		cfg:      cfg,
		decls:    cloneDecls(decls),
		registry: NewRegistry(decls),
		router:   NewKeyRouter(cfg.Keys),
		logger:   zerolog.Nop(),
	}
	lb.cfg.DefaultValue = cloneValue(cfg.DefaultValue)
	lb.sync = NewViewportSync(lb.logger)
	lb.ctrl = NewController(lb.registry, cfg.DefaultValue, lb.logger)
	lb.ctrl.OnFocusChange(lb.sync.FocusChanged)
	if cfg.DefaultValue != nil {
		lb.sync.FocusChanged(cfg.DefaultValue)
	}
	return lb
}

// SetLogger attaches logger to the listbox and its components.
func (lb *Listbox) SetLogger(logger zerolog.Logger) {
	lb.logger = logger.With().Str("listbox_id", lb.id).Logger()
	lb.ctrl.logger = lb.logger
	lb.sync.logger = lb.logger
}

// SetScroller binds the view layer used to reveal the focused row.
func (lb *Listbox) SetScroller(s Scroller) {
	lb.sync.SetScroller(s)
}

// ID returns the container's unique identifier.
func (lb *Listbox) ID() string {
	return lb.id
}

// Keys returns the active key map.
func (lb *Listbox) Keys() KeyMap {
	return lb.router.Keys()
}

// Decls returns the currently declared options, including any not yet registered.
func (lb *Listbox) Decls() []OptionDecl {
	return cloneDecls(lb.decls)
}

// Registry exposes the option registry for lookups.
func (lb *Listbox) Registry() *Registry {
	return lb.registry
}

// Controller exposes the state owner for inspection.
func (lb *Listbox) Controller() *Controller {
	return lb.ctrl
}

// Snapshot returns a read-only copy of the state.
func (lb *Listbox) Snapshot() Snapshot {
	return lb.ctrl.Snapshot()
}

// Intents returns the row callbacks.
func (lb *Listbox) Intents() RowIntents {
	return lb.ctrl.Intents()
}

// Annotation projects the current state onto accessibility attributes.
func (lb *Listbox) Annotation() Annotation {
	a := Annotate(lb.ctrl.Snapshot(), lb.cfg.Policy)
	a.Container.ID = lb.id
	return a
}

// Tabbable reports whether the container participates in the tab sequence.
func (lb *Listbox) Tabbable() bool {
	return lb.registry.Len() > 0
}

// Focused reports whether the container holds input focus.
func (lb *Listbox) Focused() bool {
	return lb.focused
}

// Focus gives the container input focus and focuses the first option if none is focused.
func (lb *Listbox) Focus() {
	lb.focused = true
	if lb.ctrl.FocusFirstIfUnset() {
		lb.logger.Debug().Msg("focus initialized to first option")
	}
}

// Blur removes input focus. State is retained.
func (lb *Listbox) Blur() {
	lb.focused = false
}

// HandleKey routes a key press. Keys are ignored while the container lacks input focus.
func (lb *Listbox) HandleKey(msg tea.KeyMsg) Result {
	if !lb.focused {
		return Result{}
	}

	cmd := lb.router.Route(msg)
	res := Result{Command: cmd, Handled: cmd != CommandNone}
	switch cmd {
	case CommandFocusNext:
		res.Changed = lb.ctrl.MoveFocus(Down)
	case CommandFocusPrev:
		res.Changed = lb.ctrl.MoveFocus(Up)
	case CommandCommit:
		res.Changed = lb.ctrl.CommitSelection()
	case CommandNone:
	}

	if res.Handled {
		lb.logger.Debug().
			Str("key", msg.String()).
			Str("command", cmd.String()).
			Bool("changed", res.Changed).
			Msg("key handled")
	}
	return res
}

// Click handles a pointer press on the row bound to value. The row's value becomes both
// selected and focused, and input focus moves to the container unless it is out of the tab
// order. Placeholders are ignored.
func (lb *Listbox) Click(value *string) bool {
	if value == nil {
		return false
	}
	if lb.Tabbable() {
		lb.focused = true
	}
	before := lb.ctrl.Snapshot()
	lb.ctrl.SetSelection(value)
	return !equalValues(before.SelectedValue, value) || !equalValues(before.FocusedValue, value)
}

// ClickIndex clicks the declared row at index i.
func (lb *Listbox) ClickIndex(i int) bool {
	if i < 0 || i >= len(lb.decls) {
		return false
	}
	return lb.Click(lb.decls[i].Value)
}

// DefaultValue returns the configured default value.
func (lb *Listbox) DefaultValue() *string {
	return cloneValue(lb.cfg.DefaultValue)
}

// SetDefaultValue applies a controlled reset when value differs from the current default,
// overriding any interactive focus and selection.
func (lb *Listbox) SetDefaultValue(value *string) bool {
	if equalValues(lb.cfg.DefaultValue, value) {
		return false
	}
	lb.cfg.DefaultValue = cloneValue(value)
	lb.ctrl.Initialize(value)
	return true
}

// SetOptions replaces the declared options. The registry is rebuilt when the set changed,
// unless RebuildOnOptionsChange is disabled.
func (lb *Listbox) SetOptions(decls []OptionDecl) bool {
	lb.decls = cloneDecls(decls)
	if lb.registry.sameShape(decls) {
		return false
	}
	if !lb.cfg.RebuildOnOptionsChange {
		lb.logger.Debug().
			Int("registered", lb.registry.Len()).
			Int("declared", len(decls)).
			Msg("option set changed but registry is frozen")
		return false
	}
	lb.registry.Rebuild(decls)
	lb.logger.Debug().Int("options", lb.registry.Len()).Msg("registry rebuilt")
	return true
}

// SyncViewport reveals the focused row after the view has laid out the latest state.
func (lb *Listbox) SyncViewport() bool {
	return lb.sync.Flush(lb.registry)
}

// Label returns the display text of declared row i.
func (lb *Listbox) Label(i int) string {
	if i < 0 || i >= len(lb.decls) {
		return ""
	}
	d := lb.decls[i]
	switch c := d.Content.(type) {
	case nil:
		if d.Value != nil {
			return *d.Value
		}
		return ""
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// Labels returns the display text of every declared row.
func (lb *Listbox) Labels() []string {
	out := make([]string, len(lb.decls))
	for i := range lb.decls {
		out[i] = lb.Label(i)
	}
	return out
}

// Markup renders the accessibility projection with row labels.
func (lb *Listbox) Markup() string {
	return lb.Annotation().Markup(lb.Labels())
}

func cloneDecls(decls []OptionDecl) []OptionDecl {
	out := make([]OptionDecl, len(decls))
	for i, d := range decls {
		out[i] = d
		out[i].Value = cloneValue(d.Value)
	}
	return out
}
