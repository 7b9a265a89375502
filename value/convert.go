package value

import (
	"fmt"
	"reflect"
	"sort"
)

// FromAny converts a plain Go tree (as produced by encoding/json or yaml.v3
// into interface{}) into a Value. Map keys are sorted since Go maps carry no
// order.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return nil, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case func(args ...Value) Value:
		return &Func{Fn: t}, nil
	case []any:
		l := &List{items: make([]Value, 0, len(t))}
		for _, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			l.items = append(l.items, v)
		}
		return l, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			v, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return Number(rv.Uint()), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("non-string map keys are not supported: %T", x)
		}
		generic := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			generic[iter.Key().String()] = iter.Value().Interface()
		}
		return FromAny(generic)
	case reflect.Slice, reflect.Array:
		generic := make([]any, rv.Len())
		for i := range generic {
			generic[i] = rv.Index(i).Interface()
		}
		return FromAny(generic)
	}
	return nil, fmt.Errorf("unsupported type %T", x)
}

// ToAny converts v into plain Go values: map[string]any, []any, bool,
// float64, string, nil. Funcs are returned as their *Func.
func ToAny(v Value) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case *List:
		if t == nil {
			return nil
		}
		out := make([]any, len(t.items))
		for i, item := range t.items {
			out[i] = ToAny(item)
		}
		return out
	case *Map:
		if t == nil {
			return nil
		}
		out := make(map[string]any, len(t.keys))
		for _, k := range t.keys {
			out[k] = ToAny(t.entries[k])
		}
		return out
	}
	return v
}
