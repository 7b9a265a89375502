// Package extend merges one document value into another.
package extend

import (
	"strconv"

	"github.com/taigrr/deepkit/clone"
	"github.com/taigrr/deepkit/value"
)

// Extend merges source into target and returns the result.
//
// A null target starts out as an empty map. When target is a primitive or a
// func the result is source (cloned unless inPlace). When source is not a map
// or list it replaces target outright. Otherwise every own key of source is
// written into target: nested maps present on both sides are merged
// recursively, anything else (lists and funcs included) is assigned by
// reference.
//
// Unless inPlace is set, target is cloned first and left untouched. Source is
// never modified.
func Extend(target, source value.Value, inPlace bool) value.Value {
	if value.KindOf(target) == value.KindNull {
		target = value.NewMap()
	}

	if !value.IsComposite(target) {
		if inPlace {
			return source
		}
		return clone.Clone(source)
	}

	if !value.IsComposite(source) {
		return source
	}

	if !inPlace {
		target = clone.Clone(target)
	}

	for _, key := range ownKeys(source) {
		sv, _ := get(source, key)
		if !has(target, key) || value.KindOf(sv) != value.KindMapping {
			set(target, key, sv)
			continue
		}
		tv, _ := get(target, key)
		set(target, key, Extend(tv, sv, inPlace))
	}

	return target
}

// All folds Extend over values from left to right, so later values win.
//
// Without inPlace no value passed in is modified. With inPlace the first value
// receives the merge, and since Extend assigns nested maps by reference a map
// taken from one value can be merged into by a later one. The guarantee that
// source is left alone then holds for each step, not for the whole fold.
func All(inPlace bool, values ...value.Value) value.Value {
	var out value.Value
	for i, v := range values {
		if i == 0 {
			out = v
			if !inPlace {
				out = clone.Clone(v)
			}
			continue
		}
		out = Extend(out, v, inPlace)
	}
	return out
}

func ownKeys(v value.Value) []string {
	switch t := v.(type) {
	case *value.Map:
		return t.Keys()
	case *value.List:
		keys := make([]string, t.Len())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	return nil
}

func has(v value.Value, key string) bool {
	switch t := v.(type) {
	case *value.Map:
		return t.Has(key)
	case *value.List:
		i, ok := value.Index(key)
		return ok && i < t.Len()
	}
	return false
}

func get(v value.Value, key string) (value.Value, bool) {
	switch t := v.(type) {
	case *value.Map:
		return t.Get(key)
	case *value.List:
		if i, ok := value.Index(key); ok && i < t.Len() {
			return t.At(i), true
		}
	}
	return nil, false
}

// set stores item under key. Lists only hold index keys; others are dropped.
func set(v value.Value, key string, item value.Value) {
	switch t := v.(type) {
	case *value.Map:
		t.Set(key, item)
	case *value.List:
		if i, ok := value.Index(key); ok {
			t.Set(i, item)
		}
	}
}
