package hxform

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// StubForm is a configurable in-memory form engine for tests. It records
// submissions, reports a fixed validity, and projects a view tree that
// mirrors its own field structure, so component tests never need a real
// engine.
//
//	form := hxform.NewStubForm("contact",
//	    hxform.NewStubForm("email").WithErrors("invalid address"),
//	    hxform.NewStubForm("name"),
//	)
//	form.Valid = false
//
// StubForm implements ErrorClearer, so late-mode suppression wipes its
// error lists.
type StubForm struct {
	FormName string
	Valid    bool
	Errs     []string
	Kids     []*StubForm

	// ViewFunc overrides the default view projection when set.
	ViewFunc func(f *StubForm) *View

	// LastSubmitted holds the values from the most recent Submit.
	LastSubmitted Values

	submitted bool
}

// NewStubForm creates a valid stub form with the given child fields.
func NewStubForm(name string, kids ...*StubForm) *StubForm {
	return &StubForm{FormName: name, Valid: true, Kids: kids}
}

// WithErrors attaches validation error messages to this field.
func (f *StubForm) WithErrors(errs ...string) *StubForm {
	f.Errs = append(f.Errs, errs...)
	return f
}

// Submit records the values and propagates nested subtrees into child
// fields by name.
func (f *StubForm) Submit(values Values) {
	f.submitted = true
	f.LastSubmitted = values
	for _, kid := range f.Kids {
		if sub := values.Nested(kid.FormName); sub != nil {
			kid.Submit(sub)
		}
	}
}

// IsSubmitted reports whether Submit has been called.
func (f *StubForm) IsSubmitted() bool {
	return f.submitted
}

// IsValid returns the configured validity.
func (f *StubForm) IsValid() bool {
	return f.Valid
}

// CreateView projects the stub into a view tree. Each field's view carries
// its last submitted value and a copy of its error messages.
func (f *StubForm) CreateView() *View {
	if f.ViewFunc != nil {
		return f.ViewFunc(f)
	}
	return f.viewNode(nil)
}

func (f *StubForm) viewNode(value any) *View {
	view := &View{
		Name:   f.FormName,
		Value:  value,
		Errors: append([]string(nil), f.Errs...),
	}
	for _, kid := range f.Kids {
		view.Children = append(view.Children, kid.viewNode(f.LastSubmitted[kid.FormName]))
	}
	return view
}

// Fields returns the child fields.
func (f *StubForm) Fields() []Form {
	fields := make([]Form, len(f.Kids))
	for i, kid := range f.Kids {
		fields[i] = kid
	}
	return fields
}

// ClearErrors wipes this field's errors, and every descendant's when
// recursive is true.
func (f *StubForm) ClearErrors(recursive bool) {
	f.Errs = nil
	if recursive {
		for _, kid := range f.Kids {
			kid.ClearErrors(true)
		}
	}
}

// StubProvider is a FormProvider built from plain values, for tests that
// exercise a bare *FormComponent without a full component type.
type StubProvider struct {
	Form      Form
	Configure func(*Model)
}

func (p *StubProvider) InstantiateForm() Form {
	return p.Form
}

func (p *StubProvider) ConfigureModel(m *Model) {
	if p.Configure != nil {
		p.Configure(m)
	}
}

// TestResult holds the outcome of a simulated registry request.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header

	// State is the refreshed state blob from the response header, ready to
	// round-trip into a follow-up request.
	State string
}

// HTMLContains reports whether the rendered output contains s.
func (tr *TestResult) HTMLContains(s string) bool {
	return strings.Contains(tr.HTML, s)
}

// IsOK reports a 2xx status.
func (tr *TestResult) IsOK() bool {
	return tr.StatusCode >= 200 && tr.StatusCode < 300
}

// TestRequest simulates one component round trip against a registry.
//
// The path is relative to the registry mount point (e.g. "/contact" or
// "/contact/submit"). Form parameters are sent as a urlencoded body for
// mutating methods and as query parameters for GET. The HX-Request header
// is always set so the CSRF guard passes.
//
//	result := hxform.TestRequest(reg, http.MethodPost, "/contact", map[string]string{
//	    hxform.StateParam: prior.State,
//	})
func TestRequest(reg *Registry, method, path string, params map[string]string) *TestResult {
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	var req *http.Request
	if method == http.MethodGet || method == http.MethodHead {
		target := path
		if len(form) > 0 {
			target += "?" + form.Encode()
		}
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
		State:      rec.Header().Get(StateHeader),
	}
}
