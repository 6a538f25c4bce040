package hxform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/a-h/templ"
)

// Request and response plumbing for the component round trip.
const (
	// StateParam is the request parameter carrying the encoded state blob.
	StateParam = "s"

	// UpdatesParam optionally carries a JSON object of client-side value
	// edits, merged into the decoded snapshot before hydration. Values are
	// client-writable state; the signed blob protects transport integrity
	// only.
	UpdatesParam = "u"

	// StateHeader is the response header carrying the refreshed state blob.
	StateHeader = "X-Hxform-State"
)

// LiveForm is the contract the registry drives. Embedding *FormComponent
// provides everything except Render.
type LiveForm interface {
	OnMount(data map[string]any) map[string]any
	BeforeRender() error
	Submit() error
	Snapshot() State
	Restore(State)
	IsSensitive() bool

	// Render produces the component's markup for the current cycle.
	Render(ctx context.Context) templ.Component
}

// Registry hosts form components and drives their lifecycle over HTTP.
//
// Each registered name gets two routes under the registry's mount point:
// the re-render route (GET mounts, POST re-renders from round-tripped
// state) and the explicit-submit route. Components are constructed fresh
// per request from their factory and revived from the state blob.
type Registry struct {
	mu      sync.Mutex
	mux     *http.ServeMux
	encoder *Encoder
	names   map[string]bool
	logger  *slog.Logger

	// OnError is called when a lifecycle step fails. The default maps
	// ErrUnprocessable to 422, state decode failures to 400, and anything
	// else to 500.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a component registry with the given secret key.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxform: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:     http.NewServeMux(),
		encoder: enc,
		names:   make(map[string]bool),
		logger:  slog.Default(),
	}

	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		switch {
		case IsUnprocessable(err):
			http.Error(w, "Unprocessable", http.StatusUnprocessableEntity)
		case IsStateError(err):
			http.Error(w, "Bad request", http.StatusBadRequest)
		default:
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}

	return reg
}

// Encoder returns the registry's state encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// SetLogger replaces the registry's logger (default slog.Default()).
func (reg *Registry) SetLogger(logger *slog.Logger) {
	reg.logger = logger
}

// Add registers a component factory under a name. The factory is invoked
// once per request. Panics on a name collision.
func (reg *Registry) Add(name string, factory func() LiveForm) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.names[name] {
		panic(fmt.Sprintf("hxform: component name collision for %q", name))
	}
	reg.names[name] = true

	reg.mux.HandleFunc("/"+name, reg.handle(name, factory, false))
	reg.mux.HandleFunc("/"+name+"/submit", reg.handle(name, factory, true))
}

// Handler returns the HTTP handler for component routes. Mount it at a
// path prefix with http.StripPrefix:
//
//	http.Handle("/_f/", http.StripPrefix("/_f", reg.Handler()))
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require the HX-Request header
		// that HTMX sends on every request.
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !IsHTMX(r) {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mux.ServeHTTP(w, r)
	})
}

// handle runs one lifecycle cycle: revive from state (or mount fresh),
// hydrate (strictly on the explicit-submit route), and respond with the
// rendered markup plus the refreshed state blob.
func (reg *Registry) handle(name string, factory func() LiveForm, explicit bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comp := factory()

		encoded := r.FormValue(StateParam)
		if encoded == "" {
			// Initial mount: no round-tripped state yet.
			comp.OnMount(nil)
			reg.respond(w, r, name, comp)
			return
		}

		state, err := DecodeState(reg.encoder, encoded, comp.IsSensitive())
		if err != nil {
			reg.logger.Warn("hxform: state decode failed", "component", name, "err", err)
			reg.OnError(w, r, err)
			return
		}

		if raw := r.FormValue(UpdatesParam); raw != "" {
			var updates map[string]any
			if err := json.Unmarshal([]byte(raw), &updates); err != nil {
				reg.OnError(w, r, fmt.Errorf("%w: updates: %v", ErrInvalidFormat, err))
				return
			}
			state.Values = mergeValues(state.Values, updates)
		}

		comp.Restore(state)

		if explicit {
			err = comp.Submit()
		} else {
			err = comp.BeforeRender()
		}
		if err != nil {
			reg.logger.Debug("hxform: hydration rejected", "component", name, "err", err)
			reg.OnError(w, r, err)
			return
		}

		reg.respond(w, r, name, comp)
	}
}

// respond emits the refreshed state header and renders the component.
func (reg *Registry) respond(w http.ResponseWriter, r *http.Request, name string, comp LiveForm) {
	encoded, err := EncodeState(reg.encoder, comp.Snapshot(), comp.IsSensitive())
	if err != nil {
		reg.OnError(w, r, err)
		return
	}
	w.Header().Set(StateHeader, encoded)

	if err := Render(w, r, comp.Render(r.Context())); err != nil {
		reg.logger.Error("hxform: render failed", "component", name, "err", err)
	}
}

// mergeValues overlays client edits onto a value snapshot. Nested objects
// merge recursively when the snapshot already holds a subtree under the
// same name; everything else overwrites.
func mergeValues(values Values, updates map[string]any) Values {
	if values == nil {
		values = make(Values, len(updates))
	}
	for name, update := range updates {
		if sub, ok := update.(map[string]any); ok {
			if existing := values.Nested(name); existing != nil {
				values[name] = mergeValues(existing, sub)
				continue
			}
			values[name] = normalizeValues(Values(sub))
			continue
		}
		values[name] = update
	}
	return values
}
