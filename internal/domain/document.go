package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject signals a document that is not a JSON object.
var ErrNotObject = errors.New("not a JSON object")

// Field is one named value within a document.
type Field struct {
	Name  string
	Value Value
}

// Document is one schema-less record: an ordered sequence of fields.
// Names may repeat (multi-valued fields) and insertion order is preserved.
// A document returned from decoding must be treated as read-only.
type Document struct {
	fields []Field
}

// AddField appends a field. The server, not the client, enforces schema,
// so any supported value is accepted as-is.
func (d *Document) AddField(name string, v Value) {
	d.fields = append(d.fields, Field{Name: name, Value: v})
}

// Fields returns the fields in insertion order. Callers must not mutate
// the returned slice.
func (d *Document) Fields() []Field { return d.fields }

// Len returns the number of fields.
func (d *Document) Len() int { return len(d.fields) }

// Get returns the value of the first field with the given name.
func (d *Document) Get(name string) (Value, bool) {
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON encodes the document as a JSON object, preserving field
// order and duplicate names.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal field name %q: %w", f.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into fields, preserving key order
// and duplicates. Field values outside the scalar union decode to null;
// only a non-object top level is an error.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode document: %w", ErrNotObject)
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode document: unexpected key token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode document field %q: %w", name, err)
		}
		var v Value
		_ = v.UnmarshalJSON(raw) // never fails; unsupported shapes become null
		fields = append(fields, Field{Name: name, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	d.fields = fields
	return nil
}
