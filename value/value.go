// Package value defines the dynamic document model shared by the clone,
// extend and codec packages.
package value

import (
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindFunc:
		return "func"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one of Bool, Number, String, *List, *Map or *Func. A nil Value is
// null.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// Bool is a boolean primitive.
	Bool bool

	// Number is a numeric primitive.
	Number float64

	// String is a string primitive.
	String string
)

func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }

func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}

// Func is an opaque function reference. Funcs are compared by identity and
// are never copied.
type Func struct {
	Name string
	Fn   func(args ...Value) Value
}

func (*Func) Kind() Kind { return KindFunc }
func (*Func) sealed()    {}

// KindOf returns the kind of v, treating nil and typed-nil pointers as null.
func KindOf(v Value) Kind {
	switch t := v.(type) {
	case nil:
		return KindNull
	case *Map:
		if t == nil {
			return KindNull
		}
	case *List:
		if t == nil {
			return KindNull
		}
	case *Func:
		if t == nil {
			return KindNull
		}
	}
	return v.Kind()
}

// IsComposite reports whether v is a mapping or a sequence.
func IsComposite(v Value) bool {
	k := KindOf(v)
	return k == KindMapping || k == KindSequence
}

// List is an ordered sequence of values.
type List struct {
	items []Value
}

// NewList returns a list holding items.
func NewList(items ...Value) *List {
	return &List{items: append([]Value(nil), items...)}
}

func (*List) Kind() Kind { return KindSequence }
func (*List) sealed()    {}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the element at index i.
func (l *List) At(i int) Value { return l.items[i] }

// Set stores v at index i, growing the list with nulls when i is past the end.
func (l *List) Set(i int, v Value) {
	for len(l.items) <= i {
		l.items = append(l.items, nil)
	}
	l.items[i] = v
}

// Append adds v to the end of the list.
func (l *List) Append(v Value) *List {
	l.items = append(l.items, v)
	return l
}

// Values returns a copy of the elements.
func (l *List) Values() []Value {
	return append([]Value(nil), l.items...)
}

// Map is a string-keyed mapping that remembers key insertion order.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap returns an empty mapping.
func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

func (*Map) Kind() Kind { return KindMapping }
func (*Map) sealed()    {}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the own keys in insertion order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Has reports whether key is an own key, even when it holds null.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v under key. A new key goes to the end of the order; an existing
// key keeps its position.
func (m *Map) Set(key string, v Value) *Map {
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
	return m
}

// Delete removes key.
func (m *Map) Delete(key string) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Index parses key as a canonical list index: decimal digits, no sign and no
// leading zeros.
func Index(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}
