package hxform

import "strconv"

// Binding attributes written by the decoration pass. The client reads
// data-model to know when to sync a field and data-successful to style
// fields that survived a submitted form's validation.
const (
	AttrModel      = "data-model"
	AttrSuccessful = "data-successful"
)

// decorateView annotates every descendant field of view with its binding
// directive and success marker. The root node is not decorated. The pass
// takes ownership of the tree: nodes are mutated in place and the tree
// should not be shared with code that expects it unannotated.
//
// Decoration is idempotent: re-running with an unchanged model rewrites
// the same attribute values.
func decorateView(view *View, model *Model, submitted bool) {
	decorateChildren(view, view.Name, model, submitted)
}

func decorateChildren(parent *View, prefix string, model *Model, submitted bool) {
	for _, child := range parent.Children {
		path := child.FullName(prefix)
		child.SetAttr(AttrModel, model.TriggerFor(path))
		child.SetAttr(AttrSuccessful, strconv.FormatBool(submitted && len(child.Errors) == 0))
		decorateChildren(child, path, model, submitted)
	}
}
