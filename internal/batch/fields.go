package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is a single extracted key/value pair.
type Field struct {
	Name  string
	Value string
}

// Fields is an insertion-ordered field map. Extraction order determines
// column and element order in every export, so a plain map is not enough.
type Fields []Field

// Get returns the value for name and whether it is present.
func (f Fields) Get(name string) (string, bool) {
	for _, fld := range f {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return "", false
}

// Value returns the value for name, or "" if absent.
func (f Fields) Value(name string) string {
	v, _ := f.Get(name)
	return v
}

// Has reports whether name is present.
func (f Fields) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Names returns the field names in insertion order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, fld := range f {
		names[i] = fld.Name
	}
	return names
}

// MarshalJSON emits a JSON object preserving insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fld := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(fld.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(fld.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object token by token so that key order
// survives the round trip. Non-string values are kept as their compact
// JSON text rather than rejected.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	fields := Fields{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			value = string(bytes.TrimSpace(raw))
		}
		fields = append(fields, Field{Name: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = fields
	return nil
}

// ParseOrderedObjects decodes a JSON array of objects into ordered field
// maps. It is used for the reserved multi-entry payload, where each
// ledger row's field order must be preserved.
func ParseOrderedObjects(data []byte) ([]Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected JSON array, got %v", tok)
	}

	var out []Fields
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		var fields Fields
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		out = append(out, fields)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if out == nil {
		out = []Fields{}
	}
	return out, nil
}
