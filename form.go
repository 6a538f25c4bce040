package hxform

// Form is the contract hxform consumes from a form engine. A Form holds
// field definitions, submitted data, and validation results; hxform never
// inspects those directly, it only drives the submit/validate/project
// cycle through this interface.
//
// Implementations are trusted collaborators: hxform does not defensively
// check the shapes they return. A view tree that doesn't mirror the form's
// field structure is a contract violation, not a handled runtime error.
type Form interface {
	// Submit feeds a raw value snapshot into the form, as if it had been
	// submitted by a client. Calling Submit transitions IsSubmitted to true.
	Submit(values Values)

	// IsSubmitted reports whether the form has received a submission.
	IsSubmitted() bool

	// IsValid reports the validation outcome of the last submission.
	IsValid() bool

	// CreateView projects the form into its rendering-facing view tree.
	// Called after Submit, the view reflects submitted (possibly coerced
	// or normalized) values and any validation errors.
	CreateView() *View

	// Fields returns the named child forms, mirroring the view tree.
	Fields() []Form
}

// ErrorClearer is implemented by forms (or individual fields) that support
// wiping their validation errors. Late-mode hydration uses it to suppress
// errors on a form the user hasn't explicitly submitted yet.
type ErrorClearer interface {
	ClearErrors(recursive bool)
}

// FormProvider is the contract a component embedding *FormComponent must
// implement.
//
// InstantiateForm builds the engine-side form. It is called at most once
// per component instance; the result is memoized.
//
// ConfigureModel is the binding-hint configuration hook, called once per
// decoration pass with a fresh Model. Leave it empty to accept the default
// trigger for every field.
type FormProvider interface {
	InstantiateForm() Form
	ConfigureModel(m *Model)
}
