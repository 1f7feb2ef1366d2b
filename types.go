package solrkit

// Kind identifies the active variant of a Value.
type Kind uint8

// Value kinds. KindNull is the zero value.
const (
	KindNull Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindBool
)

// Value is a single document field value: a closed union over signed and
// unsigned 64-bit integers, float64, string, bool and null. Exactly one
// variant is active and the zero Value is null. Variants never coerce
// implicitly; AsFloat64 is the one explicit numeric coercion.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	b    bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// Int64 returns a signed integer value.
func Int64(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint64 returns an unsigned integer value.
func Uint64(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float64 returns a floating-point value.
func Float64(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the null variant is active.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 returns the signed integer variant.
func (v Value) Int64() (int64, bool) { return v.i, v.kind == KindInt }

// Uint64 returns the unsigned integer variant.
func (v Value) Uint64() (uint64, bool) { return v.u, v.kind == KindUint }

// Float64 returns the floating-point variant.
func (v Value) Float64() (float64, bool) { return v.f, v.kind == KindFloat }

// Str returns the string variant.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Bool returns the boolean variant.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// AsFloat64 coerces any numeric variant to float64.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Interface returns the active variant as a plain Go value (nil for null).
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// Field is one named value within a Document.
type Field struct {
	Name  string
	Value Value
}

// Document is one schema-less record: an ordered sequence of fields.
// Names may repeat and insertion order is preserved, since multi-valued
// fields can be order-sensitive. Documents returned from queries must be
// treated as read-only.
type Document struct {
	fields []Field
}

// AddField appends a field. The server enforces schema, not the client,
// so this cannot fail.
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

// UpdateResult is the outcome of an update operation (add, commit,
// delete, rollback, optimize).
type UpdateResult struct {
	// Status is the engine status from responseHeader.status.
	Status int
	// Time is the request execution time in milliseconds.
	Time int
}

// QueryResult is one page of query matches. Documents holds only this
// page; Total counts every match on the server, so paginate with
// Query.Start to reach the rest.
type QueryResult struct {
	Status int
	Time   int
	// Total is the number of matching rows on the server.
	Total uint64
	// Start is the zero-based offset of this page.
	Start uint64
	// Documents is the returned page, in server order.
	Documents []Document
}
