package listbox

import (
	"html"
	"strconv"
	"strings"
)

// ARIA roles and tab indexes emitted by the annotator.
const (
	RoleListbox = "listbox"
	RoleOption  = "option"

	TabIndexInOrder    = 0
	TabIndexOutOfOrder = -1
)

// AnnotationPolicy controls presentation choices of the annotator.
type AnnotationPolicy struct {
	// UnsetActiveDescendant, when non-nil, is emitted as aria-activedescendant while no
	// option is focused. When nil the attribute is omitted.
	UnsetActiveDescendant *string
}

// ContainerAttrs are the accessibility attributes of the listbox container.
type ContainerAttrs struct {
	ID                  string
	Role                string
	TabIndex            int
	ActiveDescendant    string
	HasActiveDescendant bool
}

// RowAttrs are the accessibility attributes of one option row.
type RowAttrs struct {
	Index    int
	Role     string
	ID       string
	HasID    bool
	Selected bool
	Disabled bool
	TabIndex int
}

// Annotation is the full accessibility projection of a listbox.
type Annotation struct {
	Container ContainerAttrs
	Rows      []RowAttrs
}

// Annotate projects snap onto container and row attributes. It holds no state.
func Annotate(snap Snapshot, policy AnnotationPolicy) Annotation {
	a := Annotation{
		Container: ContainerAttrs{
			Role:     RoleListbox,
			TabIndex: TabIndexOutOfOrder,
		},
		Rows: make([]RowAttrs, len(snap.Options)),
	}
	if len(snap.Options) > 0 {
		a.Container.TabIndex = TabIndexInOrder
	}

	switch {
	case snap.FocusedValue != nil:
		a.Container.ActiveDescendant = *snap.FocusedValue
		a.Container.HasActiveDescendant = true
	case policy.UnsetActiveDescendant != nil:
		a.Container.ActiveDescendant = *policy.UnsetActiveDescendant
		a.Container.HasActiveDescendant = true
	}

	for i, o := range snap.Options {
		row := RowAttrs{
			Index:    o.Index,
			Role:     RoleOption,
			Selected: snap.IsSelected(o),
			Disabled: o.Disabled,
			TabIndex: TabIndexOutOfOrder,
		}
		if o.Value != nil {
			row.ID = *o.Value
			row.HasID = true
		}
		a.Rows[i] = row
	}
	return a
}

// SelectedCount returns how many rows carry aria-selected="true".
func (a Annotation) SelectedCount() int {
	n := 0
	for _, r := range a.Rows {
		if r.Selected {
			n++
		}
	}
	return n
}

// Attrs renders the container attributes in emission order.
func (c ContainerAttrs) Attrs() string {
	var b strings.Builder
	if c.ID != "" {
		writeAttr(&b, "id", c.ID)
	}
	writeAttr(&b, "role", c.Role)
	writeAttr(&b, "tabindex", strconv.Itoa(c.TabIndex))
	if c.HasActiveDescendant {
		writeAttr(&b, "aria-activedescendant", c.ActiveDescendant)
	}
	return b.String()
}

// Attrs renders the row attributes in emission order.
func (r RowAttrs) Attrs() string {
	var b strings.Builder
	writeAttr(&b, "role", r.Role)
	if r.HasID {
		writeAttr(&b, "id", r.ID)
	}
	writeAttr(&b, "aria-selected", strconv.FormatBool(r.Selected))
	writeAttr(&b, "aria-disabled", strconv.FormatBool(r.Disabled))
	writeAttr(&b, "tabindex", strconv.Itoa(r.TabIndex))
	return b.String()
}

// Markup renders the annotation as list markup. labels supplies row content by
// index; missing entries render empty rows.
func (a Annotation) Markup(labels []string) string {
	var b strings.Builder
	b.WriteString("<ul")
	b.WriteString(a.Container.Attrs())
	b.WriteString(">\n")
	for _, r := range a.Rows {
		b.WriteString("  <li")
		b.WriteString(r.Attrs())
		b.WriteString(">")
		if r.Index < len(labels) {
			b.WriteString(html.EscapeString(labels[r.Index]))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
