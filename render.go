package hxform

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// FieldAttrs returns the binding attributes for a decorated field node,
// ready to spread into a templ element:
//
//	<input name={ field.FullName(prefix) } { hxform.FieldAttrs(field)... }/>
//
// Returns an empty attribute set for undecorated nodes so templates never
// nil-check.
func FieldAttrs(v *View) templ.Attributes {
	if v.Attrs == nil {
		return templ.Attributes{}
	}
	return v.Attrs
}

// ErrorList renders a field's validation errors as an unordered list.
//
// Produces nothing when the field has no errors, so it can be dropped
// unconditionally next to every input:
//
//	@hxform.ErrorList(field)
func ErrorList(v *View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(v.Errors) == 0 {
			return nil
		}

		var sb strings.Builder
		sb.WriteString(`<ul class="hxform-errors">`)
		for _, msg := range v.Errors {
			sb.WriteString(`<li>`)
			sb.WriteString(html.EscapeString(msg))
			sb.WriteString(`</li>`)
		}
		sb.WriteString(`</ul>`)

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// StateInput renders the encoded state blob as a hidden input named after
// StateParam. Forms rendered outside the registry include this so the next
// round trip carries the snapshot back:
//
//	@hxform.StateInput(encoded)
func StateInput(encoded string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<input type="hidden" name="`+StateParam+`" value="`+html.EscapeString(encoded)+`"/>`)
		return err
	})
}
