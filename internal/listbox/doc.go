// Package listbox implements the headless core of an accessible single-selection list.
//
// A Listbox tracks two independent cursors over an ordered set of options: the focused
// value (the row highlighted for keyboard interaction) and the selected value (the row the
// user committed). Key features:
//   - Registry of option descriptors rebuilt whenever the declared option set changes
//   - Non-wrapping Up/Down navigation with explicit Enter/Space commit
//   - Pure projection of ARIA attributes (roles, aria-selected, aria-disabled,
//     aria-activedescendant, roving tab index)
//   - Scroll-into-view requests on every focus change, delegated to a view-layer Scroller
//
// The container is the only writer of its state. Rows receive a read-only Snapshot and
// two upward intents (RequestFocus, RequestSelection). The package performs no terminal
// I/O; internal/tui renders it with Bubble Tea.
package listbox
