// Package jsontree holds loosely typed JSON documents whose objects keep the
// key order of the source text.
package jsontree

import (
	"strconv"
	"strings"
)

// Kind identifies the JSON type of a Value.
type Kind int

const (
	// Missing is the zero Kind: the value was not present at all.
	Missing Kind = iota
	Null
	Bool
	Number
	String
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	}
	return "missing"
}

// Value is a single JSON value. The zero Value is Missing.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	obj  *Object
	arr  []Value
}

func NullValue() Value                { return Value{kind: Null} }
func BoolValue(b bool) Value          { return Value{kind: Bool, b: b} }
func NumberValue(n float64) Value     { return Value{kind: Number, n: n} }
func StringValue(s string) Value      { return Value{kind: String, s: s} }
func ArrayValue(items ...Value) Value { return Value{kind: ArrayKind, arr: items} }

// ObjectValue wraps o. A nil o yields Null.
func ObjectValue(o *Object) Value {
	if o == nil {
		return NullValue()
	}
	return Value{kind: ObjectKind, obj: o}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsMissing() bool { return v.kind == Missing }
func (v Value) IsNull() bool    { return v.kind == Null }
func (v Value) IsBool() bool    { return v.kind == Bool }
func (v Value) IsNumber() bool  { return v.kind == Number }
func (v Value) IsString() bool  { return v.kind == String }
func (v Value) IsObject() bool  { return v.kind == ObjectKind }
func (v Value) IsArray() bool   { return v.kind == ArrayKind }

// IsAbsent reports whether v is missing or null.
func (v Value) IsAbsent() bool { return v.kind == Missing || v.kind == Null }

// IsPrimitive reports whether v is a string, number or boolean.
func (v Value) IsPrimitive() bool {
	return v.kind == String || v.kind == Number || v.kind == Bool
}

// Str returns the string value, or "" when v is not a string.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.s
}

// Num returns the number value. ok is false when v is not a number.
func (v Value) Num() (n float64, ok bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.n, true
}

// Bool returns the boolean value. ok is false when v is not a boolean.
func (v Value) Bool() (b bool, ok bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Object returns the object, or nil when v is not an object.
func (v Value) Object() *Object {
	if v.kind != ObjectKind {
		return nil
	}
	return v.obj
}

// Array returns the items, or nil when v is not an array.
func (v Value) Array() []Value {
	if v.kind != ArrayKind {
		return nil
	}
	return v.arr
}

// Field returns the named member when v is an object, otherwise Missing.
func (v Value) Field(key string) Value {
	if o := v.Object(); o != nil {
		return o.Field(key)
	}
	return Value{}
}

// Path follows nested object members.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Field(k)
		if cur.IsMissing() {
			return cur
		}
	}
	return cur
}

// Truthy follows JavaScript truthiness: missing, null, false, 0 and "" are
// false; objects and arrays are always true.
func (v Value) Truthy() bool {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.n != 0 && v.n == v.n
	case String:
		return v.s != ""
	case ObjectKind, ArrayKind:
		return true
	}
	return false
}

// String renders v the way it would be shown as display text.
func (v Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return FormatNumber(v.n)
	case String:
		return v.s
	case ObjectKind:
		return "[object Object]"
	case ArrayKind:
		parts := make([]string, len(v.arr))
		for i, item := range v.arr {
			if !item.IsAbsent() {
				parts[i] = item.String()
			}
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// FormatNumber prints integral values without a fractional part.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
