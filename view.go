package hxform

import "github.com/a-h/templ"

// View is the rendering-facing projection of a form, organized as a tree
// mirroring field structure. Views are produced by the form engine's
// CreateView; hxform consumes them, annotates them with binding attributes,
// and extracts value snapshots from them.
//
// The attribute map is templ.Attributes so decorated nodes can be spread
// directly into templates:
//
//	<input name={ field.FullName(prefix) } { field.Attrs... }/>
type View struct {
	// Name is the field's local name within its parent.
	Name string

	// Value is the field's current display value: scalar, slice, or nested
	// structure, depending on the field type.
	Value any

	// Expanded marks a field whose children are presentational only (e.g.
	// a choice rendered as a radio button group): the field's own Value is
	// authoritative and value extraction does not descend into children.
	Expanded bool

	// Checkable marks a field with boolean-input semantics (checkbox,
	// single radio). Checked is only meaningful when Checkable is true.
	Checkable bool
	Checked   bool

	// Children are the nested field views, in render order.
	Children []*View

	// Errors are the validation error messages attached to this field.
	Errors []string

	// Attrs is the mutable attribute map the decoration pass writes
	// data-model and data-successful into.
	Attrs templ.Attributes
}

// FullName returns the field's fully qualified bracketed path under the
// given parent prefix, matching how the form engine names submitted
// parameters: FullName("post") for a field named "title" is "post[title]".
// An empty prefix returns the bare name.
func (v *View) FullName(prefix string) string {
	if prefix == "" {
		return v.Name
	}
	return prefix + "[" + v.Name + "]"
}

// SetAttr writes a single attribute, allocating the map on first use.
func (v *View) SetAttr(key string, value any) {
	if v.Attrs == nil {
		v.Attrs = templ.Attributes{}
	}
	v.Attrs[key] = value
}

// Find returns the direct child with the given name, or nil.
func (v *View) Find(name string) *View {
	for _, child := range v.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}
