package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Kind identifies which JSON variant a Value holds.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota

	// KindBool is true or false.
	KindBool

	// KindNumber is any JSON number, kept as its literal text.
	KindNumber

	// KindString is a JSON string.
	KindString

	// KindArray is an ordered list of values.
	KindArray

	// KindObject is a string-keyed mapping of values.
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one node of a parsed JSON document.
// The zero Value is JSON null.
//
// The underlying representation is what encoding/json produces with
// UseNumber: nil, bool, json.Number, string, []any or map[string]any.
type Value struct {
	raw any
}

// NewValue wraps a decoded JSON tree.
// Go numeric types are converted to json.Number so the Value stays canonical.
func NewValue(raw any) Value {
	switch n := raw.(type) {
	case int:
		return Value{raw: json.Number(fmt.Sprint(n))}
	case int64:
		return Value{raw: json.Number(fmt.Sprint(n))}
	case float64:
		return Value{raw: json.Number(fmt.Sprint(n))}
	}
	return Value{raw: raw}
}

// Kind reports the JSON variant held by v.
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNull
	}
}

// Raw returns the underlying decoded representation.
func (v Value) Raw() any { return v.raw }

// Field looks up key in an object value.
// The second result is false when v is not an object or has no such key.
func (v Value) Field(key string) (Value, bool) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}, false
	}
	child, ok := m[key]
	if !ok {
		return Value{}, false
	}
	return Value{raw: child}, true
}

// AsObject returns the members of an object value keyed by name.
func (v Value) AsObject() (map[string]Value, error) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return nil, &KindError{Want: KindObject, Got: v, Err: ErrNotAnObject}
	}
	out := make(map[string]Value, len(m))
	for k, child := range m {
		out[k] = Value{raw: child}
	}
	return out, nil
}

// AsArray returns the elements of an array value in order.
func (v Value) AsArray() ([]Value, error) {
	a, ok := v.raw.([]any)
	if !ok {
		return nil, &KindError{Want: KindArray, Got: v, Err: ErrNotAnArray}
	}
	out := make([]Value, len(a))
	for i, child := range a {
		out[i] = Value{raw: child}
	}
	return out, nil
}

// AsString returns the contents of a string value.
func (v Value) AsString() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", &KindError{Want: KindString, Got: v, Err: ErrIDNotString}
	}
	return s, nil
}

// summaryRunes caps the string shown by Summary.
const summaryRunes = 40

// Summary renders a short human-readable description of v for error messages.
func (v Value) Summary() string {
	switch t := v.raw.(type) {
	case nil:
		return "null"
	case bool, json.Number:
		return fmt.Sprint(t)
	case string:
		if r := []rune(t); len(r) > summaryRunes {
			return fmt.Sprintf("%q...", string(r[:summaryRunes]))
		}
		return fmt.Sprintf("%q", t)
	case []any:
		return fmt.Sprintf("with %d elements", len(t))
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 5 {
			return fmt.Sprintf("with keys %q and %d more", keys[:5], len(keys)-5)
		}
		return fmt.Sprintf("with keys %q", keys)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ParseValue decodes exactly one JSON document from r.
// Anything other than whitespace after the document is an error.
func ParseValue(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return Value{}, fmt.Errorf("%w: trailing data after document at offset %d", ErrParse, dec.InputOffset())
		}
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return Value{raw: raw}, nil
}

// MarshalValue serializes v as compact JSON, or indented by two spaces when
// pretty is set. Object keys are sorted, HTML characters are left unescaped
// and no trailing newline is written.
func MarshalValue(v Value, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v.raw); err != nil {
		return nil, fmt.Errorf("serialize %s: %w", v.Kind(), err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
