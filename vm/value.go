package vm

import (
	"fmt"
	"strconv"
)

// ValueType represents the type of a Perch value.
type ValueType int

const (
	TypeNil ValueType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeBytes
	TypeObject
	TypeStream
)

// Value is the Go representation of a Perch value.
type Value struct {
	Type      ValueType
	IntVal    int64
	FloatVal  float64
	StringVal string
	BytesVal  []byte
	ObjectVal map[string]Value
	StreamVal StreamSource
}

// NilValue returns a nil value.
func NilValue() Value {
	return Value{Type: TypeNil}
}

// BoolValue creates a boolean value.
func BoolValue(b bool) Value {
	if b {
		return Value{Type: TypeBool, IntVal: 1}
	}
	return Value{Type: TypeBool, IntVal: 0}
}

// IntValue creates an integer value.
func IntValue(n int64) Value {
	return Value{Type: TypeInt, IntVal: n}
}

// FloatValue creates a float value.
func FloatValue(f float64) Value {
	return Value{Type: TypeFloat, FloatVal: f}
}

// StringValue creates a string value.
func StringValue(s string) Value {
	return Value{Type: TypeString, StringVal: s}
}

// BytesValue creates a byte-buffer value.
func BytesValue(b []byte) Value {
	return Value{Type: TypeBytes, BytesVal: b}
}

// ObjectValue creates an object value from a field map.
func ObjectValue(fields map[string]Value) Value {
	return Value{Type: TypeObject, ObjectVal: fields}
}

// StreamValue wraps a stream source as a value.
func StreamValue(s StreamSource) Value {
	return Value{Type: TypeStream, StreamVal: s}
}

// IsInt returns true if v is an integer value.
func (v Value) IsInt() bool {
	return v.Type == TypeInt
}

// IsNil returns true if v is the nil value.
func (v Value) IsNil() bool {
	return v.Type == TypeNil
}

// AsInt returns the integer payload. Only meaningful when IsInt is true.
func (v Value) AsInt() int64 {
	return v.IntVal
}

// String renders a value for diagnostics. Not a script-visible conversion.
func (v Value) String() string {
	switch v.Type {
	case TypeNil:
		return "nil"
	case TypeBool:
		if v.IntVal != 0 {
			return "true"
		}
		return "false"
	case TypeInt:
		return strconv.FormatInt(v.IntVal, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.FloatVal, 'g', -1, 64)
	case TypeString:
		return strconv.Quote(v.StringVal)
	case TypeBytes:
		return fmt.Sprintf("bytes[%d]", len(v.BytesVal))
	case TypeObject:
		return fmt.Sprintf("object[%d fields]", len(v.ObjectVal))
	case TypeStream:
		return fmt.Sprintf("stream(%s)", v.StreamVal.Flavor())
	}
	return fmt.Sprintf("unknown(%d)", int(v.Type))
}
