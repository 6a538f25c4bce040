package hxform

// ValidationMode selects when re-render validation failures are enforced.
type ValidationMode string

const (
	// ValidateEarly enforces validity on every render cycle. Submitting
	// invalid data always fails with ErrUnprocessable.
	ValidateEarly ValidationMode = "early"

	// ValidateLate defers enforcement until the user has explicitly
	// submitted. Until then, re-render validation errors are suppressed so
	// the form renders cleanly over empty or partial data.
	ValidateLate ValidationMode = "late"
)

// MountFormKey is the mount-data key an externally constructed view is
// supplied under. OnMount consumes and removes it.
const MountFormKey = "form"

// FormComponent is the base type embedded by form-backed components.
//
// It orchestrates form instantiation, view construction, value extraction,
// resubmission, and validation-error suppression across render cycles. The
// embedding component supplies the form itself and its binding hints via
// the FormProvider interface:
//
//	type ContactForm struct {
//	    *hxform.FormComponent
//	}
//
//	func NewContactForm() *ContactForm {
//	    c := &ContactForm{}
//	    c.FormComponent = hxform.NewFormComponent(c)
//	    return c
//	}
//
// The hosting framework drives the lifecycle: OnMount once after
// construction, BeforeRender before every re-render, Submit on an explicit
// user action. Between cycles the only state worth persisting is the
// Snapshot (value tree, submitted flag, validation mode); the form
// instance, its view, and the form name are per-request memoized caches.
//
// A FormComponent is not safe for concurrent use; each instance belongs to
// a single request/response cycle.
type FormComponent struct {
	provider  FormProvider
	sensitive bool

	// Per-request memoized caches, each built at most once per instance.
	form     Form
	view     *View
	formName string

	// Round-trip state.
	values    Values
	submitted bool
	mode      ValidationMode
}

// NewFormComponent creates the embedded base for a form component. The
// provider is normally the embedding component itself.
func NewFormComponent(provider FormProvider) *FormComponent {
	return &FormComponent{
		provider: provider,
		mode:     ValidateLate,
	}
}

// EarlyValidation switches the component to ValidateEarly.
func (c *FormComponent) EarlyValidation() *FormComponent {
	c.mode = ValidateEarly
	return c
}

// LateValidation switches the component to ValidateLate (the default).
func (c *FormComponent) LateValidation() *FormComponent {
	c.mode = ValidateLate
	return c
}

// Sensitive marks the component's persisted state for encrypted encoding.
//
// Signed mode (default) is debuggable - state is visible on the wire but
// tamper-proof. Use Sensitive for forms carrying data the client should
// not be able to read back out of the blob.
func (c *FormComponent) Sensitive() *FormComponent {
	c.sensitive = true
	return c
}

// IsSensitive returns whether the component's state is encrypted.
func (c *FormComponent) IsSensitive() bool {
	return c.sensitive
}

// Mode returns the component's validation mode.
func (c *FormComponent) Mode() ValidationMode {
	return c.mode
}

// Submitted reports whether an explicit user action has submitted the form.
func (c *FormComponent) Submitted() bool {
	return c.submitted
}

// Values returns the current value snapshot.
func (c *FormComponent) Values() Values {
	return c.values
}

// OnMount runs once after construction with mount-time data. If the data
// carries a pre-built view under MountFormKey, that view is decorated and
// adopted; otherwise the view is built lazily on first access. Either way
// the value snapshot is (re)computed from the current view. Returns the
// residual data map, with MountFormKey removed, for downstream mount
// processing.
func (c *FormComponent) OnMount(data map[string]any) map[string]any {
	if data != nil {
		if view, ok := data[MountFormKey].(*View); ok {
			c.decorate(view)
			c.view = view
			delete(data, MountFormKey)
		}
	}
	c.values = ExtractValues(c.Form())
	return data
}

// BeforeRender runs before every re-render: it re-submits the held value
// snapshot into the form, validates, and applies the validation policy.
// Returns ErrUnprocessable when the policy demands strictness and the
// submission was invalid.
func (c *FormComponent) BeforeRender() error {
	_, err := c.hydrateForm()
	return err
}

// Submit marks the form as explicitly submitted and hydrates it. An
// explicit submission is always strictly validated: invalid data fails
// with ErrUnprocessable regardless of the validation mode.
func (c *FormComponent) Submit() error {
	c.submitted = true
	form, err := c.hydrateForm()
	if err != nil {
		return err
	}
	// The hydrate pass short-circuits when the engine already holds a
	// submission from earlier in the cycle; validity still has to hold.
	if !form.IsValid() {
		return ErrUnprocessable
	}
	return nil
}

// Form returns the decorated view tree, building it on first access.
func (c *FormComponent) Form() *View {
	if c.view == nil {
		view := c.instance().CreateView()
		c.decorate(view)
		c.view = view
	}
	return c.view
}

// FormName returns the root view's declared name, cached after first read.
func (c *FormComponent) FormName() string {
	if c.formName == "" {
		c.formName = c.Form().Name
	}
	return c.formName
}

// instance returns the memoized form, constructing it on first call.
func (c *FormComponent) instance() Form {
	if c.form == nil {
		c.form = c.provider.InstantiateForm()
	}
	return c.form
}

// hydrateForm is the state machine core shared by BeforeRender and Submit:
//
//  1. Submit the held value snapshot into the form, unless the engine
//     already holds a submission from this cycle.
//  2. Decide whether an invalid outcome is fatal under the current mode:
//     early mode always, late mode only once explicitly submitted. A late
//     form that hasn't been submitted yet instead gets its validation
//     errors suppressed so it renders cleanly.
//  3. Re-extract the value snapshot from the refreshed view - submission
//     may have coerced or normalized values, and the snapshot must never
//     drift from what the engine actually holds.
//  4. Only then surface ErrUnprocessable, so the snapshot is current even
//     on the failure path.
func (c *FormComponent) hydrateForm() (Form, error) {
	form := c.instance()
	if form.IsSubmitted() {
		return form, nil
	}

	form.Submit(c.values)

	unprocessable := false
	if !form.IsValid() {
		switch c.mode {
		case ValidateEarly:
			unprocessable = true
		case ValidateLate:
			if c.submitted {
				unprocessable = true
			} else {
				suppressErrors(form)
			}
		}
	}

	c.values = ExtractValues(c.Form())

	if unprocessable {
		return form, ErrUnprocessable
	}
	return form, nil
}

// decorate runs a decoration pass over the view with a freshly configured
// Model. The provider's ConfigureModel hook is invoked once per pass.
func (c *FormComponent) decorate(view *View) {
	model := NewModel()
	c.provider.ConfigureModel(model)
	decorateView(view, model, c.submitted)
}

// suppressErrors clears validation errors on every part of the form that
// supports clearing. This is deliberately blunt: the whole tree is wiped,
// not just fields the user hasn't touched yet.
func suppressErrors(form Form) {
	if clearer, ok := form.(ErrorClearer); ok {
		clearer.ClearErrors(true)
		return
	}
	for _, field := range form.Fields() {
		suppressErrors(field)
	}
}
