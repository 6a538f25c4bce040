// Package hxform provides form hydration and model binding for
// server-rendered, interactive web components built with Go, Templ
// templates, and HTMX.
//
// hxform sits between a form engine (anything that can build a form,
// accept a submission, validate it, and project it as a view tree) and a
// component framework that re-renders on every client round trip. It owns
// the part in the middle: turning the engine's view into a client-bindable
// form, extracting the value snapshot that crosses the wire, and
// re-submitting and re-validating that snapshot on every render cycle.
//
// # Core Concepts
//
// Components embed *FormComponent and implement FormProvider:
//
//	type ContactForm struct {
//	    *hxform.FormComponent
//	}
//
//	func (c *ContactForm) InstantiateForm() hxform.Form {
//	    return contactDescriptor.Build()
//	}
//
//	func (c *ContactForm) ConfigureModel(m *hxform.Model) {
//	    m.Field("contact[email]", "on(input)")
//	}
//
// The lifecycle is formalized through named methods the hosting framework
// calls directly:
//   - OnMount runs once after construction with mount-time data.
//   - BeforeRender runs before every re-render, re-submitting the held
//     value snapshot into the form and enforcing the validation policy.
//   - Submit runs on an explicit user action and is always strict.
//
// # Model Binding
//
// During decoration every descendant field of the view receives a
// data-model attribute telling the client when a change to that field is
// meaningful. Triggers are configured per field with a default fallback:
//
//	m.Default("on(change)")
//	m.Field("post[title]", "on(input)")
//
// The rendered directive is the trigger joined to the field path:
// "on(input)|post[title]".
//
// # Validation Policy
//
// Two strictness modes govern what happens when a re-render submission
// fails validation:
//   - ValidateEarly: every render enforces validity; invalid data is
//     rejected immediately with ErrUnprocessable.
//   - ValidateLate (default): validity is only enforced once the user has
//     explicitly submitted. Before that, validation errors are suppressed
//     so a partially filled form renders cleanly.
//
// An explicit Submit is strict under both modes.
//
// # State Round Trip
//
// The only form state that survives a client round trip is the value
// snapshot plus the submitted flag and validation mode. State is encoded
// with msgpack and either HMAC-signed (default, visible but tamper-proof)
// or AES-GCM encrypted (via Sensitive, fully opaque). The Registry decodes
// incoming state, drives the lifecycle, and emits fresh state with the
// rendered response.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit lifecycle (OnMount/BeforeRender/Submit methods, no
//     reflection-discovered hooks)
//   - Explicit engine contract (the Form interface, not a concrete engine)
//   - Explicit decoration (a pass that owns the tree it annotates)
//   - Explicit security (Signed vs Encrypted via Sensitive)
package hxform
