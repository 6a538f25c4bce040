package hxform

// DefaultTrigger is the binding trigger applied to any field without an
// explicit override.
const DefaultTrigger = "on(change)"

// Model maps field paths to client-binding trigger expressions.
//
// A trigger expression tells the client when to treat a field's change as
// meaningful (e.g. on value change vs. on every input event). The
// expression syntax is opaque to hxform - it is written into the markup
// verbatim and interpreted client-side.
//
// A fresh Model is passed to the component's ConfigureModel hook on every
// decoration pass and discarded afterwards:
//
//	func (c *ContactForm) ConfigureModel(m *hxform.Model) {
//	    m.Default("on(change)")
//	    m.Field("contact[email]", "on(input)")
//	}
type Model struct {
	defaultTrigger string
	fields         map[string]string
}

// NewModel creates a Model with the default trigger and no overrides.
func NewModel() *Model {
	return &Model{defaultTrigger: DefaultTrigger}
}

// Default overwrites the fallback trigger applied to fields without an
// explicit override. The expression is not validated.
func (m *Model) Default(trigger string) *Model {
	m.defaultTrigger = trigger
	return m
}

// Field sets the trigger for a single field path. Repeated calls with the
// same path replace the prior value.
func (m *Model) Field(name, trigger string) *Model {
	if m.fields == nil {
		m.fields = make(map[string]string)
	}
	m.fields[name] = trigger
	return m
}

// TriggerFor returns the binding directive for a field path: the field's
// trigger (override or default) joined to the path with "|". Unknown paths
// silently fall back to the default trigger.
func (m *Model) TriggerFor(name string) string {
	trigger, ok := m.fields[name]
	if !ok {
		trigger = m.defaultTrigger
	}
	return trigger + "|" + name
}
