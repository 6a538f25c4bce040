package hxform

// Values is the hierarchical snapshot of a form's current values, stripped
// of validation and display metadata. Nested compound fields appear as
// nested Values. This is the only form-related state that crosses the
// network boundary, and it is what gets re-submitted into the form engine
// on every render cycle.
type Values map[string]any

// ExtractValues walks a view tree and produces the value snapshot for its
// fields. The root node itself contributes no entry; each child maps its
// name to one of:
//   - a nested Values, when the child is collapsed and has children
//   - its Value if checked, nil otherwise, when the child is checkable
//   - its Value verbatim, in every other case (including expanded fields
//     with children - their children are presentational)
//
// The resulting tree re-submits into the form engine as raw submission
// data without further shaping.
func ExtractValues(view *View) Values {
	values := make(Values, len(view.Children))
	for _, child := range view.Children {
		switch {
		case !child.Expanded && len(child.Children) > 0:
			values[child.Name] = ExtractValues(child)
		case child.Checkable:
			if child.Checked {
				values[child.Name] = child.Value
			} else {
				values[child.Name] = nil
			}
		default:
			values[child.Name] = child.Value
		}
	}
	return values
}

// Nested returns the sub-tree stored under name, or nil when the entry is
// absent or not a nested Values.
func (v Values) Nested(name string) Values {
	sub, _ := v[name].(Values)
	return sub
}
