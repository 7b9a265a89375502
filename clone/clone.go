// Package clone deep-copies document values.
package clone

import "github.com/taigrr/deepkit/value"

// Clone returns a deep copy of v. Lists and maps are copied recursively with
// order preserved; primitives and funcs are returned as is.
//
// Cyclic inputs are not detected and recurse until the stack is exhausted.
func Clone(v value.Value) value.Value {
	switch t := v.(type) {
	case *value.List:
		if t == nil {
			return v
		}
		out := value.NewList()
		for _, item := range t.Values() {
			out.Append(Clone(item))
		}
		return out
	case *value.Map:
		if t == nil {
			return v
		}
		out := value.NewMap()
		for _, k := range t.Keys() {
			item, _ := t.Get(k)
			out.Set(k, Clone(item))
		}
		return out
	}
	return v
}
