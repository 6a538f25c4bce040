package hxform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractValues(t *testing.T) {
	tests := []struct {
		name string
		view *View
		want Values
	}{
		{
			name: "flat scalars",
			view: &View{Name: "contact", Children: []*View{
				{Name: "email", Value: "a@b.c"},
				{Name: "age", Value: 42},
			}},
			want: Values{"email": "a@b.c", "age": 42},
		},
		{
			name: "collapsed compound recurses",
			view: &View{Name: "post", Children: []*View{
				{Name: "author", Children: []*View{
					{Name: "first", Value: "Ada"},
					{Name: "last", Value: "Lovelace"},
				}},
			}},
			want: Values{"author": Values{"first": "Ada", "last": "Lovelace"}},
		},
		{
			name: "checked box keeps value",
			view: &View{Name: "f", Children: []*View{
				{Name: "subscribe", Checkable: true, Checked: true, Value: "yes"},
			}},
			want: Values{"subscribe": "yes"},
		},
		{
			name: "unchecked box extracts nil regardless of value",
			view: &View{Name: "f", Children: []*View{
				{Name: "subscribe", Checkable: true, Checked: false, Value: "yes"},
			}},
			want: Values{"subscribe": nil},
		},
		{
			name: "expanded field ignores children",
			view: &View{Name: "f", Children: []*View{
				{Name: "color", Expanded: true, Value: "red", Children: []*View{
					{Name: "0", Value: "red"},
					{Name: "1", Value: "green"},
				}},
			}},
			want: Values{"color": "red"},
		},
		{
			name: "root contributes no entry",
			view: &View{Name: "f", Value: "ignored"},
			want: Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractValues(tt.view)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractValues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractValuesRoundTrip(t *testing.T) {
	// Extracting, submitting back into an equivalent form, and projecting
	// again yields a deep-equal value tree.
	build := func() *StubForm {
		return NewStubForm("profile",
			NewStubForm("name"),
			NewStubForm("address",
				NewStubForm("street"),
				NewStubForm("city"),
			),
		)
	}

	first := build()
	first.Submit(Values{
		"name": "Grace",
		"address": Values{
			"street": "1 Main St",
			"city":   "Springfield",
		},
	})
	extracted := ExtractValues(first.CreateView())

	second := build()
	second.Submit(extracted)
	again := ExtractValues(second.CreateView())

	if diff := cmp.Diff(extracted, again); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestValuesNested(t *testing.T) {
	v := Values{
		"sub":    Values{"x": 1},
		"scalar": "s",
	}

	if got := v.Nested("sub"); got == nil || got["x"] != 1 {
		t.Errorf("Nested(sub) = %v, want subtree", got)
	}
	if got := v.Nested("scalar"); got != nil {
		t.Errorf("Nested(scalar) = %v, want nil", got)
	}
	if got := v.Nested("missing"); got != nil {
		t.Errorf("Nested(missing) = %v, want nil", got)
	}
}
