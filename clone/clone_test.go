package clone

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/deepkit/value"
)

func sample() *value.Map {
	return value.NewMap().
		Set("name", value.String("note")).
		Set("n", value.Number(42)).
		Set("empty", nil).
		Set("tags", value.NewList(value.String("a"), value.NewMap().Set("deep", value.Bool(true)))).
		Set("meta", value.NewMap().Set("z", value.Number(1)).Set("a", value.Number(2)))
}

func TestClone_Primitives(t *testing.T) {
	fn := &value.Func{Name: "f"}
	tests := []struct {
		name string
		in   value.Value
	}{
		{"null", nil},
		{"bool", value.Bool(true)},
		{"number", value.Number(3.5)},
		{"string", value.String("s")},
		{"func", fn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clone(tt.in); got != tt.in {
				t.Errorf("Clone(%v) = %v, want same value", tt.in, got)
			}
		})
	}
}

func TestClone_DeepEqualAndOrdered(t *testing.T) {
	in := sample()
	out := Clone(in)

	if diff := cmp.Diff(value.ToAny(in), value.ToAny(out)); diff != "" {
		t.Errorf("Clone() mismatch (-want +got):\n%s", diff)
	}

	m := out.(*value.Map)
	if diff := cmp.Diff(in.Keys(), m.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	meta, _ := m.Get("meta")
	if diff := cmp.Diff([]string{"z", "a"}, meta.(*value.Map).Keys()); diff != "" {
		t.Errorf("nested key order mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_Idempotent(t *testing.T) {
	once := Clone(sample())
	twice := Clone(once)

	if diff := cmp.Diff(value.ToAny(once), value.ToAny(twice)); diff != "" {
		t.Errorf("Clone(Clone(x)) != Clone(x) (-want +got):\n%s", diff)
	}
}

func TestClone_Independent(t *testing.T) {
	in := sample()
	out := Clone(in).(*value.Map)

	meta, _ := out.Get("meta")
	meta.(*value.Map).Set("z", value.String("changed"))
	tags, _ := out.Get("tags")
	tags.(*value.List).Append(value.String("extra"))
	nested := tags.(*value.List).At(1).(*value.Map)
	nested.Set("deep", value.Bool(false))
	out.Set("name", value.String("other"))

	if diff := cmp.Diff(value.ToAny(sample()), value.ToAny(in)); diff != "" {
		t.Errorf("original mutated through clone (-want +got):\n%s", diff)
	}
}

func TestClone_ListOfLists(t *testing.T) {
	in := value.NewList(value.NewList(value.Number(1)), value.NewList())
	out := Clone(in).(*value.List)

	if out == in {
		t.Fatal("Clone() returned the same list")
	}
	if out.At(0) == in.At(0) {
		t.Error("inner list was aliased, want a copy")
	}
	if diff := cmp.Diff([]any{[]any{1.0}, []any{}}, value.ToAny(out)); diff != "" {
		t.Errorf("Clone() mismatch (-want +got):\n%s", diff)
	}
}
