package hxform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countingForm wraps StubForm to track engine calls.
type countingForm struct {
	*StubForm
	createViews int
	submits     int
}

func (f *countingForm) CreateView() *View {
	f.createViews++
	return f.StubForm.CreateView()
}

func (f *countingForm) Submit(values Values) {
	f.submits++
	f.StubForm.Submit(values)
}

// countingProvider tracks how often the component calls its hooks.
type countingProvider struct {
	form         Form
	configure    func(*Model)
	instantiated int
	configured   int
}

func (p *countingProvider) InstantiateForm() Form {
	p.instantiated++
	return p.form
}

func (p *countingProvider) ConfigureModel(m *Model) {
	p.configured++
	if p.configure != nil {
		p.configure(m)
	}
}

// noClearForm is a Form without error-clearing support; suppression has to
// descend into its fields.
type noClearForm struct {
	valid     bool
	kids      []Form
	view      *View
	submitted bool
}

func (f *noClearForm) Submit(values Values) { f.submitted = true }
func (f *noClearForm) IsSubmitted() bool    { return f.submitted }
func (f *noClearForm) IsValid() bool        { return f.valid }
func (f *noClearForm) CreateView() *View    { return f.view }
func (f *noClearForm) Fields() []Form       { return f.kids }

func newTestComponent(form Form) (*FormComponent, *countingProvider) {
	provider := &countingProvider{form: form}
	return NewFormComponent(provider), provider
}

func TestEarlyModeRejectsInvalid(t *testing.T) {
	for _, submitted := range []bool{false, true} {
		form := NewStubForm("f", NewStubForm("a").WithErrors("required"))
		form.Valid = false

		c, _ := newTestComponent(form)
		c.EarlyValidation()
		c.submitted = submitted

		if err := c.BeforeRender(); !errors.Is(err, ErrUnprocessable) {
			t.Errorf("submitted=%v: BeforeRender() = %v, want ErrUnprocessable", submitted, err)
		}
	}
}

func TestEarlyModeAcceptsValid(t *testing.T) {
	form := NewStubForm("f", NewStubForm("a"))

	c, _ := newTestComponent(form)
	c.EarlyValidation()

	if err := c.BeforeRender(); err != nil {
		t.Fatalf("BeforeRender() = %v, want nil", err)
	}
	if !form.IsSubmitted() {
		t.Error("form should have been submitted during hydration")
	}
}

func TestLateModeBeforeSubmission(t *testing.T) {
	field := NewStubForm("a").WithErrors("required")
	form := NewStubForm("f", field)
	form.Valid = false

	c, _ := newTestComponent(form)

	if err := c.BeforeRender(); err != nil {
		t.Fatalf("BeforeRender() = %v, want nil (late mode, not submitted)", err)
	}

	// Errors are suppressed across the whole tree.
	if len(field.Errs) != 0 {
		t.Errorf("field errors = %v, want cleared", field.Errs)
	}

	// The value snapshot is still refreshed from the post-submission view.
	if c.Values() == nil {
		t.Error("values should have been extracted despite invalid submission")
	}
}

func TestLateModeAfterSubmission(t *testing.T) {
	field := NewStubForm("a").WithErrors("required")
	form := NewStubForm("f", field)
	form.Valid = false

	c, _ := newTestComponent(form)
	c.Restore(State{Submitted: true})

	if err := c.BeforeRender(); !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("BeforeRender() = %v, want ErrUnprocessable", err)
	}

	// No suppression once the user has submitted: errors stay visible.
	if len(field.Errs) == 0 {
		t.Error("field errors should not be suppressed after explicit submission")
	}
}

func TestSubmitAlwaysStrict(t *testing.T) {
	form := NewStubForm("f", NewStubForm("a"))
	form.Valid = false

	c, _ := newTestComponent(form)
	// Late mode, never submitted before - Submit is still strict.
	if err := c.Submit(); !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("Submit() = %v, want ErrUnprocessable", err)
	}
	if !c.Submitted() {
		t.Error("Submitted() = false after explicit Submit")
	}
}

func TestSubmitValid(t *testing.T) {
	form := NewStubForm("f", NewStubForm("a"))

	c, _ := newTestComponent(form)
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit() = %v, want nil", err)
	}
}

func TestSubmitChecksValidityAfterShortCircuit(t *testing.T) {
	// The engine already holds an invalid submission from earlier in the
	// cycle: hydration short-circuits, but Submit still rejects.
	form := NewStubForm("f", NewStubForm("a"))
	form.Valid = false
	form.Submit(Values{"a": "x"})

	c, _ := newTestComponent(form)
	if err := c.Submit(); !errors.Is(err, ErrUnprocessable) {
		t.Fatalf("Submit() = %v, want ErrUnprocessable", err)
	}
}

func TestHydrateShortCircuitsSubmittedEngine(t *testing.T) {
	form := &countingForm{StubForm: NewStubForm("f", NewStubForm("a"))}
	form.StubForm.Submit(Values{"a": "x"})

	c, _ := newTestComponent(form)
	if err := c.BeforeRender(); err != nil {
		t.Fatalf("BeforeRender() = %v", err)
	}
	if form.submits != 0 {
		t.Errorf("engine re-submitted %d times, want 0 (already submitted)", form.submits)
	}
}

func TestFormMemoization(t *testing.T) {
	form := &countingForm{StubForm: NewStubForm("f", NewStubForm("a"))}
	c, provider := newTestComponent(form)

	c.Form()
	c.Form()
	if err := c.BeforeRender(); err != nil {
		t.Fatalf("BeforeRender() = %v", err)
	}
	c.Form()

	if provider.instantiated != 1 {
		t.Errorf("InstantiateForm called %d times, want 1", provider.instantiated)
	}
	if form.createViews != 1 {
		t.Errorf("CreateView called %d times, want 1", form.createViews)
	}
}

func TestValuesRefreshedFromNormalizedView(t *testing.T) {
	// The engine normalizes on submission; the snapshot must follow the
	// view, not the raw input.
	form := NewStubForm("f")
	form.ViewFunc = func(f *StubForm) *View {
		value := any(nil)
		if f.LastSubmitted != nil {
			value = "normalized"
		}
		return &View{Name: "f", Children: []*View{{Name: "a", Value: value}}}
	}

	c, _ := newTestComponent(form)
	c.Restore(State{Values: Values{"a": "  raw  "}})

	if err := c.BeforeRender(); err != nil {
		t.Fatalf("BeforeRender() = %v", err)
	}
	if diff := cmp.Diff(Values{"a": "normalized"}, c.Values()); diff != "" {
		t.Errorf("values not refreshed (-want +got):\n%s", diff)
	}
}

func TestSuppressionDescendsWithoutRootClearer(t *testing.T) {
	field := NewStubForm("a").WithErrors("required")
	root := &noClearForm{
		valid: false,
		kids:  []Form{field},
		view:  &View{Name: "f", Children: []*View{{Name: "a"}}},
	}

	c, _ := newTestComponent(root)
	if err := c.BeforeRender(); err != nil {
		t.Fatalf("BeforeRender() = %v", err)
	}
	if len(field.Errs) != 0 {
		t.Errorf("field errors = %v, want cleared via Fields() descent", field.Errs)
	}
}

func TestOnMountWithExternalView(t *testing.T) {
	form := &countingForm{StubForm: NewStubForm("f", NewStubForm("a"))}
	c, provider := newTestComponent(form)

	external := &View{Name: "f", Children: []*View{{Name: "a", Value: "seeded"}}}
	data := map[string]any{MountFormKey: external, "other": 1}

	rest := c.OnMount(data)

	if _, ok := rest[MountFormKey]; ok {
		t.Error("mount data should no longer carry the form key")
	}
	if rest["other"] != 1 {
		t.Error("residual mount data lost")
	}

	// The external view was adopted (no engine view build) and decorated.
	if form.createViews != 0 {
		t.Errorf("CreateView called %d times, want 0", form.createViews)
	}
	if got := external.Find("a").Attrs[AttrModel]; got != "on(change)|f[a]" {
		t.Errorf("external view not decorated: data-model = %v", got)
	}
	if provider.configured != 1 {
		t.Errorf("ConfigureModel called %d times, want 1", provider.configured)
	}

	if diff := cmp.Diff(Values{"a": "seeded"}, c.Values()); diff != "" {
		t.Errorf("initial values (-want +got):\n%s", diff)
	}
}

func TestOnMountWithoutExternalView(t *testing.T) {
	form := &countingForm{StubForm: NewStubForm("f", NewStubForm("a"))}
	c, _ := newTestComponent(form)

	if rest := c.OnMount(nil); rest != nil {
		t.Errorf("OnMount(nil) = %v, want nil", rest)
	}

	// Lazy build happened exactly once, during value extraction.
	if form.createViews != 1 {
		t.Errorf("CreateView called %d times, want 1", form.createViews)
	}
}

func TestFormName(t *testing.T) {
	form := &countingForm{StubForm: NewStubForm("contact")}
	c, _ := newTestComponent(form)

	if got := c.FormName(); got != "contact" {
		t.Errorf("FormName() = %q, want %q", got, "contact")
	}
	c.FormName()
	if form.createViews != 1 {
		t.Errorf("CreateView called %d times, want 1 (name cached)", form.createViews)
	}
}

func TestModeConfiguration(t *testing.T) {
	c, _ := newTestComponent(NewStubForm("f"))

	if c.Mode() != ValidateLate {
		t.Errorf("default mode = %v, want ValidateLate", c.Mode())
	}
	if c.EarlyValidation().Mode() != ValidateEarly {
		t.Error("EarlyValidation did not switch mode")
	}
	if c.LateValidation().Mode() != ValidateLate {
		t.Error("LateValidation did not switch mode")
	}
}
