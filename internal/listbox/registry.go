package listbox

// OptionDecl declares one row of a listbox, in the order it should appear.
type OptionDecl struct {
	// Value is the row's identity. A nil Value declares a non-selectable placeholder.
	Value *string
	// Disabled is surfaced as aria-disabled. It does not affect navigation.
	Disabled bool
	// Content is rendered by the presentation layer and never inspected by the core.
	Content any
}

// OptionDescriptor is the registry's immutable record of a declared option.
type OptionDescriptor struct {
	Index    int
	Value    *string
	Disabled bool
}

// HasValue reports whether the option carries an identity.
func (o OptionDescriptor) HasValue() bool {
	return o.Value != nil
}

// Matches reports whether the option's value equals value. Placeholders never match.
func (o OptionDescriptor) Matches(value *string) bool {
	return o.Value != nil && value != nil && *o.Value == *value
}

// Ref returns a pointer to a copy of v, for building optional values inline.
func Ref(v string) *string {
	return &v
}

// Registry holds the ordered option descriptors of one listbox.
type Registry struct {
	options []OptionDescriptor
}

// NewRegistry builds a registry from decls, capturing each declaration's position.
func NewRegistry(decls []OptionDecl) *Registry {
	r := &Registry{}
	r.Rebuild(decls)
	return r
}

// Rebuild replaces the option set wholesale.
func (r *Registry) Rebuild(decls []OptionDecl) {
	options := make([]OptionDescriptor, len(decls))
	for i, d := range decls {
		options[i] = OptionDescriptor{
			Index:    i,
			Value:    cloneValue(d.Value),
			Disabled: d.Disabled,
		}
	}
	r.options = options
}

// All returns a copy of the options in declaration order.
func (r *Registry) All() []OptionDescriptor {
	out := make([]OptionDescriptor, len(r.options))
	copy(out, r.options)
	return out
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}

// At returns the option at index i.
func (r *Registry) At(i int) (OptionDescriptor, bool) {
	if i < 0 || i >= len(r.options) {
		return OptionDescriptor{}, false
	}
	return r.options[i], true
}

// First returns the earliest option that carries a value, skipping placeholders.
func (r *Registry) First() (OptionDescriptor, bool) {
	for _, o := range r.options {
		if o.HasValue() {
			return o, true
		}
	}
	return OptionDescriptor{}, false
}

// Find returns the first option whose value equals value.
// Duplicate values resolve to the earliest declaration.
func (r *Registry) Find(value *string) (OptionDescriptor, bool) {
	i := r.IndexOf(value)
	if i < 0 {
		return OptionDescriptor{}, false
	}
	return r.options[i], true
}

// IndexOf returns the index of the first option matching value, or -1.
func (r *Registry) IndexOf(value *string) int {
	if value == nil {
		return -1
	}
	for i, o := range r.options {
		if o.Matches(value) {
			return i
		}
	}
	return -1
}

// sameShape reports whether decls would produce the registry's current descriptors.
func (r *Registry) sameShape(decls []OptionDecl) bool {
	if len(decls) != len(r.options) {
		return false
	}
	for i, d := range decls {
		o := r.options[i]
		if o.Disabled != d.Disabled || !equalValues(o.Value, d.Value) {
			return false
		}
	}
	return true
}

func cloneValue(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// equalValues treats two unset values as equal, unlike OptionDescriptor.Matches.
func equalValues(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// display renders an optional value for logs.
func display(v *string) string {
	if v == nil {
		return "<unset>"
	}
	return *v
}
