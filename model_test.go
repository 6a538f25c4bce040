package hxform

import "testing"

func TestModelDefaultFallback(t *testing.T) {
	m := NewModel()

	for _, name := range []string{"x", "post[title]", "a[b][c]", ""} {
		got := m.TriggerFor(name)
		want := "on(change)|" + name
		if got != want {
			t.Errorf("TriggerFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestModelOverridePrecedence(t *testing.T) {
	m := NewModel().Field("a", "on(input)")

	if got := m.TriggerFor("a"); got != "on(input)|a" {
		t.Errorf("TriggerFor(a) = %q, want %q", got, "on(input)|a")
	}
	// Other fields stay on the default.
	if got := m.TriggerFor("b"); got != "on(change)|b" {
		t.Errorf("TriggerFor(b) = %q, want %q", got, "on(change)|b")
	}
}

func TestModelLastWriteWins(t *testing.T) {
	m := NewModel().
		Field("a", "on(input)").
		Field("a", "on(blur)")

	if got := m.TriggerFor("a"); got != "on(blur)|a" {
		t.Errorf("TriggerFor(a) = %q, want %q", got, "on(blur)|a")
	}
}

func TestModelCustomDefault(t *testing.T) {
	m := NewModel().Default("on(input)")

	if got := m.TriggerFor("anything"); got != "on(input)|anything" {
		t.Errorf("TriggerFor = %q, want %q", got, "on(input)|anything")
	}

	// Explicit overrides still take precedence over the new default.
	m.Field("special", "on(blur)")
	if got := m.TriggerFor("special"); got != "on(blur)|special" {
		t.Errorf("TriggerFor(special) = %q, want %q", got, "on(blur)|special")
	}
}
