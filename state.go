package hxform

// State is the serialized form of a component's round-trip state: the
// value snapshot plus the submitted flag and validation mode. Everything
// else (form instance, view, form name) is rebuilt per request.
//
// All three fields are client-writable by design - the client owns the
// value tree between renders. The encoding layer's signing protects
// transport integrity, not these fields' authority.
type State struct {
	Values    Values         `msgpack:"v"`
	Submitted bool           `msgpack:"s"`
	Mode      ValidationMode `msgpack:"m,omitempty"`
}

// Snapshot captures the component's persistable state.
func (c *FormComponent) Snapshot() State {
	return State{
		Values:    c.values,
		Submitted: c.submitted,
		Mode:      c.mode,
	}
}

// Restore revives a component from a decoded snapshot. Memoized caches are
// left empty; they rebuild lazily. An empty mode keeps the component's
// configured default.
func (c *FormComponent) Restore(s State) {
	c.values = normalizeValues(s.Values)
	c.submitted = s.Submitted
	if s.Mode != "" {
		c.mode = s.Mode
	}
}

// EncodeState serializes a snapshot with the given encoder.
func EncodeState(enc *Encoder, s State, sensitive bool) (string, error) {
	encoded, err := enc.Encode(s, sensitive)
	return encoded, wrapEncodingError(err)
}

// DecodeState deserializes a snapshot with the given encoder.
func DecodeState(enc *Encoder, encoded string, sensitive bool) (State, error) {
	var s State
	if err := enc.Decode(encoded, sensitive, &s); err != nil {
		return State{}, wrapEncodingError(err)
	}
	s.Values = normalizeValues(s.Values)
	return s, nil
}

// normalizeValues retypes nested maps as Values all the way down. Msgpack
// decodes nested trees as map[string]any; the form engine contract takes
// Values at every level.
func normalizeValues(values Values) Values {
	if values == nil {
		return nil
	}
	normalized := make(Values, len(values))
	for name, value := range values {
		switch nested := value.(type) {
		case map[string]any:
			normalized[name] = normalizeValues(Values(nested))
		case Values:
			normalized[name] = normalizeValues(nested)
		default:
			normalized[name] = value
		}
	}
	return normalized
}
