package domain

import (
	"encoding/json"
	"testing"
)

func TestValueConstructorsAndAccessors(t *testing.T) {
	v := Int64(-42)
	if v.Kind() != KindInt {
		t.Fatalf("kind = %v, want KindInt", v.Kind())
	}
	if i, ok := v.Int64(); !ok || i != -42 {
		t.Errorf("Int64() = %d, %v", i, ok)
	}
	if _, ok := v.Uint64(); ok {
		t.Error("Uint64() should not be active for an int value")
	}

	if u, ok := Uint64(7).Uint64(); !ok || u != 7 {
		t.Errorf("Uint64() = %d, %v", u, ok)
	}
	if f, ok := Float64(1.5).Float64(); !ok || f != 1.5 {
		t.Errorf("Float64() = %v, %v", f, ok)
	}
	if s, ok := String("x").Str(); !ok || s != "x" {
		t.Errorf("Str() = %q, %v", s, ok)
	}
	if b, ok := Bool(true).Bool(); !ok || !b {
		t.Errorf("Bool() = %v, %v", b, ok)
	}
	if !Null().IsNull() {
		t.Error("Null() is not null")
	}

	var zero Value
	if !zero.IsNull() {
		t.Error("zero Value is not null")
	}
}

func TestValueAsFloat64(t *testing.T) {
	cases := []struct {
		v    Value
		want float64
		ok   bool
	}{
		{Int64(-3), -3, true},
		{Uint64(9), 9, true},
		{Float64(2.5), 2.5, true},
		{String("1.5"), 0, false},
		{Bool(true), 0, false},
		{Null(), 0, false},
	}
	for _, c := range cases {
		got, ok := c.v.AsFloat64()
		if got != c.want || ok != c.ok {
			t.Errorf("AsFloat64(%v) = %v, %v, want %v, %v",
				c.v.Interface(), got, ok, c.want, c.ok)
		}
	}
}

func TestValueUnmarshalClassification(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
	}{
		{"1", KindInt},
		{"-7", KindInt},
		{"9223372036854775807", KindInt},
		{"9223372036854775808", KindUint},   // does not fit int64
		{"18446744073709551615", KindUint},  // max uint64
		{"18446744073709551616", KindFloat}, // does not fit uint64 either
		{"1.5", KindFloat},
		{"1e3", KindFloat},
		{`"hello"`, KindString},
		{"true", KindBool},
		{"false", KindBool},
		{"null", KindNull},
		{`{"nested":1}`, KindNull}, // unsupported shapes degrade to null
		{"[1,2]", KindNull},
	}
	for _, c := range cases {
		var v Value
		if err := json.Unmarshal([]byte(c.raw), &v); err != nil {
			t.Fatalf("unmarshal %s: %v", c.raw, err)
		}
		if v.Kind() != c.kind {
			t.Errorf("kind of %s = %v, want %v", c.raw, v.Kind(), c.kind)
		}
	}
}

func TestValueMarshal(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int64(-42), "-42"},
		{Uint64(18446744073709551615), "18446744073709551615"},
		{Float64(1.5), "1.5"},
		{String("a\"b"), `"a\"b"`},
		{Bool(false), "false"},
		{Null(), "null"},
	}
	for _, c := range cases {
		got, err := json.Marshal(c.v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(got) != c.want {
			t.Errorf("marshal = %s, want %s", got, c.want)
		}
	}
}

func TestValueInterface(t *testing.T) {
	if got := Int64(1).Interface(); got != int64(1) {
		t.Errorf("Interface() = %v (%T), want int64 1", got, got)
	}
	if got := Null().Interface(); got != nil {
		t.Errorf("Interface() = %v, want nil", got)
	}
}
