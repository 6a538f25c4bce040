package hxform

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders using the request's context.
// The Registry renders components through this; it is exported for
// handlers that render form markup outside the registry.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests. The registry uses this as
// its CSRF guard for mutating methods.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// TriggerName returns the name attribute of the element that triggered the
// request. Useful to distinguish which submit control fired:
//
//	if hxform.TriggerName(r) == "save-draft" {
//	    // skip strict submission
//	}
//
// Returns empty string if not present.
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}
