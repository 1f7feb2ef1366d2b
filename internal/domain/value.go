package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

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

// Value is a single document field value: a closed union over the scalar
// shapes the engine can return. Exactly one variant is active. The zero
// Value is null. There is no implicit coercion between variants; AsFloat64
// is the one explicit numeric coercion.
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

// MarshalJSON encodes the value in its JSON scalar form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindUint:
		return strconv.AppendUint(nil, v.u, 10), nil
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON value into the matching variant. Shapes
// outside the union (objects, arrays) degrade to null instead of failing;
// per-field decoding never aborts a surrounding document.
func (v *Value) UnmarshalJSON(data []byte) error {
	t := bytes.TrimSpace(data)
	if len(t) == 0 {
		*v = Value{}
		return nil
	}
	switch t[0] {
	case '{', '[', 'n':
		*v = Value{}
	case 't', 'f':
		var b bool
		if json.Unmarshal(t, &b) == nil {
			*v = Bool(b)
		} else {
			*v = Value{}
		}
	case '"':
		var s string
		if json.Unmarshal(t, &s) == nil {
			*v = String(s)
		} else {
			*v = Value{}
		}
	default:
		*v = numberValue(json.Number(t))
	}
	return nil
}

// numberValue picks the narrowest variant for a JSON number: int64 if it
// fits, uint64 for larger non-negative integers, float64 otherwise.
func numberValue(n json.Number) Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int64(i)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint64(u)
		}
	}
	if f, err := n.Float64(); err == nil {
		return Float64(f)
	}
	return Value{}
}
