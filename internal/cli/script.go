package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/listbox/internal/listbox"
)

// ErrUnknownStep is returned for a render script token that is not recognized.
var ErrUnknownStep = errors.New("unknown script step")

// Script step operations.
const (
	opFocus   = "focus"
	opBlur    = "blur"
	opKey     = "key"
	opClick   = "click"
	opDefault = "default"
	opOptions = "options"
)

// step is one scripted interaction with a listbox.
type step struct {
	op     string
	key    tea.KeyMsg
	value  *string
	values []string
	raw    string
}

//nolint:gochecknoglobals // Immutable token table.
var keySteps = map[string]tea.KeyMsg{
	"down":  {Type: tea.KeyDown},
	"up":    {Type: tea.KeyUp},
	"enter": {Type: tea.KeyEnter},
	"space": {Type: tea.KeySpace, Runes: []rune{' '}},
	"tab":   {Type: tea.KeyTab},
	"home":  {Type: tea.KeyHome},
	"end":   {Type: tea.KeyEnd},
}

// parseScript parses whitespace or comma separated steps:
//
//	focus | blur | down | up | enter | space | tab | home | end
//	key:<rune>            a printable key
//	click:<value>         pointer press on the row bound to value
//	default:<value>       controlled default change; bare "default" clears it
//	options:<v1>|<v2>...  replace the declared options
func parseScript(args []string) ([]step, error) {
	var steps []step
	for _, arg := range args {
		for _, tok := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			s, err := parseStep(tok)
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)
		}
	}
	return steps, nil
}

func parseStep(tok string) (step, error) {
	name, arg, hasArg := strings.Cut(tok, ":")
	switch {
	case name == opFocus && !hasArg:
		return step{op: opFocus, raw: tok}, nil
	case name == opBlur && !hasArg:
		return step{op: opBlur, raw: tok}, nil
	case name == opKey && hasArg && len([]rune(arg)) == 1:
		return step{op: opKey, key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(arg)}, raw: tok}, nil
	case name == opClick && hasArg && arg != "":
		return step{op: opClick, value: listbox.Ref(arg), raw: tok}, nil
	case name == opDefault && !hasArg:
		return step{op: opDefault, raw: tok}, nil
	case name == opDefault && arg != "":
		return step{op: opDefault, value: listbox.Ref(arg), raw: tok}, nil
	case name == opOptions && hasArg:
		var values []string
		if arg != "" {
			values = strings.Split(arg, "|")
		}
		return step{op: opOptions, values: values, raw: tok}, nil
	}
	if k, ok := keySteps[tok]; ok {
		return step{op: opKey, key: k, raw: tok}, nil
	}
	return step{}, fmt.Errorf("%w %q", ErrUnknownStep, tok)
}

// apply performs s against lb and reports whether any state changed.
func (s step) apply(lb *listbox.Listbox) bool {
	before := lb.Snapshot()
	wasFocused := lb.Focused()

	switch s.op {
	case opFocus:
		if lb.Tabbable() {
			lb.Focus()
		}
	case opBlur:
		lb.Blur()
	case opKey:
		lb.HandleKey(s.key)
	case opClick:
		lb.Click(s.value)
	case opDefault:
		lb.SetDefaultValue(s.value)
	case opOptions:
		decls := make([]listbox.OptionDecl, len(s.values))
		for i, v := range s.values {
			decls[i] = listbox.OptionDecl{Value: listbox.Ref(v)}
		}
		lb.SetOptions(decls)
	}
	lb.SyncViewport()

	after := lb.Snapshot()
	return wasFocused != lb.Focused() ||
		!sameRef(before.FocusedValue, after.FocusedValue) ||
		!sameRef(before.SelectedValue, after.SelectedValue)
}

func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
