package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name to a Format. The empty string selects
// YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported format: %q (want yaml or json)", name)
}

// SyntaxError reports a document that could not be decoded.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid document at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid document: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// ErrFuncNotEncodable is returned when a document containing a Func is
// marshaled.
var ErrFuncNotEncodable = errors.New("function values cannot be encoded")

// Parse decodes a YAML or JSON document. Mapping key order is preserved. An
// empty document decodes to null.
//
// Input opening with '{' or '[' is decoded as JSON first and falls back to
// YAML flow syntax when it is not valid JSON. A JSON number outside the
// float64 range is an error.
func Parse(data []byte) (Value, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		v, err := parseJSON(trimmed)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return nil, &SyntaxError{Err: err}
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return FromNode(&doc)
}

func parseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

// decodeJSON reads one value from dec token by token so object keys keep
// their order.
func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", kt)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			l := &List{items: []Value{}}
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				l.items = append(l.items, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return l, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return String(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", t, err)
		}
		return Number(f), nil
	case bool:
		return Bool(t), nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// FromNode converts a decoded YAML node tree into a Value.
func FromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromNode(n.Content[0])

	case yaml.AliasNode:
		return FromNode(n.Alias)

	case yaml.SequenceNode:
		l := &List{items: make([]Value, 0, len(n.Content))}
		for _, c := range n.Content {
			v, err := FromNode(c)
			if err != nil {
				return nil, err
			}
			l.items = append(l.items, v)
		}
		return l, nil

	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, &SyntaxError{Line: key.Line, Err: errors.New("mapping keys must be scalars")}
			}
			v, err := FromNode(val)
			if err != nil {
				return nil, err
			}
			m.Set(key.Value, v)
		}
		return m, nil

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, &SyntaxError{Line: n.Line, Err: err}
			}
			return Bool(b), nil
		case "!!int", "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, &SyntaxError{Line: n.Line, Err: err}
			}
			return Number(f), nil
		default:
			return String(n.Value), nil
		}
	}
	return nil, &SyntaxError{Line: n.Line, Err: fmt.Errorf("unsupported node kind %d", n.Kind)}
}

// ToNode converts v into a YAML node tree.
func ToNode(v Value) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(t))}, nil
	case Number:
		return numberNode(float64(t)), nil
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}, nil
	case *List:
		if t == nil {
			return ToNode(nil)
		}
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t.items {
			c, err := ToNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case *Map:
		if t == nil {
			return ToNode(nil)
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range t.keys {
			c, err := ToNode(t.entries[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, c)
		}
		return n, nil
	case *Func:
		return nil, ErrFuncNotEncodable
	}
	return nil, fmt.Errorf("unknown value type %T", v)
}

func numberNode(f float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float"}
	switch {
	case math.IsNaN(f):
		n.Value = ".nan"
	case math.IsInf(f, 1):
		n.Value = ".inf"
	case math.IsInf(f, -1):
		n.Value = "-.inf"
	case f == math.Trunc(f) && math.Abs(f) < 1<<53:
		n.Tag = "!!int"
		n.Value = strconv.FormatInt(int64(f), 10)
	default:
		n.Value = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return n
}

// Marshal encodes v in the given format, preserving mapping key order.
func Marshal(v Value, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML, "":
		n, err := ToNode(v)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format: %q", format)
}

// MarshalJSON writes the entries in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON writes the elements as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// MarshalJSON always fails; functions have no document form.
func (f *Func) MarshalJSON() ([]byte, error) {
	return nil, ErrFuncNotEncodable
}

// MarshalYAML lets a *Map be embedded in structs encoded with yaml.v3.
func (m *Map) MarshalYAML() (any, error) {
	return ToNode(m)
}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (m *Map) UnmarshalYAML(n *yaml.Node) error {
	v, err := FromNode(n)
	if err != nil {
		return err
	}
	src, ok := v.(*Map)
	if !ok {
		if v == nil {
			*m = *NewMap()
			return nil
		}
		return &SyntaxError{Line: n.Line, Err: fmt.Errorf("expected a mapping, got %s", KindOf(v))}
	}
	*m = *src
	return nil
}
