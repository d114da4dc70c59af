package value

import "math"

// Type is the wire element kind encoded in the low nibble of a type
// descriptor byte.
type Type uint8

const (
	// TypeMissing is the absent-value marker (tag 0x00).
	TypeMissing Type = 0
	// TypeInt8 is an 8-bit signed integer element.
	TypeInt8 Type = 1
	// TypeInt16 is a 16-bit signed integer element.
	TypeInt16 Type = 2
	// TypeInt32 is a 32-bit signed integer element.
	TypeInt32 Type = 3
	// TypeFloat is a 32-bit IEEE-754 float element.
	TypeFloat Type = 5
	// TypeString is a length-prefixed run of bytes. The count nibble is
	// the byte length, not an element count.
	TypeString Type = 7
)

// String returns the string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeMissing:
		return "Missing"
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

// Kind identifies the concrete shape stored in a Value.
type Kind uint8

const (
	// KindNone represents the absent marker (tag 0x00). No typed payload
	// was present on the wire.
	KindNone Kind = iota
	// KindInt8 represents an int8 scalar.
	KindInt8
	// KindInt16 represents an int16 scalar.
	KindInt16
	// KindInt32 represents an int32 scalar.
	KindInt32
	// KindFloat represents a float32 scalar.
	KindFloat
	// KindString represents a string.
	KindString
	// KindInt8Array represents an int8 vector.
	KindInt8Array
	// KindInt16Array represents an int16 vector.
	KindInt16Array
	// KindInt32Array represents an int32 vector.
	KindInt32Array
	// KindFloatArray represents a float32 vector.
	KindFloatArray
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindInt8Array:
		return "Int8Array"
	case KindInt16Array:
		return "Int16Array"
	case KindInt32Array:
		return "Int32Array"
	case KindFloatArray:
		return "FloatArray"
	default:
		return "Unknown"
	}
}

// Value is a typed wire value: one type descriptor plus zero or more
// elements of a single kind.
//
// Arrays keep their raw elements, sentinels included; classifying an
// element as missing is the caller's job via the *State helpers. A
// declared element count of zero is a valid state distinct from the
// absent marker and is carried by Empty.
//
// NOTE: This is the on-wire model; keep it stable.
type Value struct {
	Kind Kind

	// Empty reports a typed value whose declared count was zero, e.g.
	// tag 0x01 (int8, no elements) or 0x07 (empty string).
	Empty bool

	I8  int8
	I16 int16
	I32 int32
	F32 float32
	S   string

	A8  []int8
	A16 []int16
	A32 []int32
	AF  []float32
}

// Type returns the wire element kind for the value.
func (v Value) Type() Type {
	switch v.Kind {
	case KindInt8, KindInt8Array:
		return TypeInt8
	case KindInt16, KindInt16Array:
		return TypeInt16
	case KindInt32, KindInt32Array:
		return TypeInt32
	case KindFloat, KindFloatArray:
		return TypeFloat
	case KindString:
		return TypeString
	default:
		return TypeMissing
	}
}

// IsArray reports whether the value holds a vector of elements.
func (v Value) IsArray() bool {
	switch v.Kind {
	case KindInt8Array, KindInt16Array, KindInt32Array, KindFloatArray:
		return true
	default:
		return false
	}
}

// None returns the absent marker (tag 0x00).
func None() Value { return Value{Kind: KindNone} }

// Int8 returns an int8 scalar value.
func Int8(n int8) Value { return Value{Kind: KindInt8, I8: n} }

// Int16 returns an int16 scalar value.
func Int16(n int16) Value { return Value{Kind: KindInt16, I16: n} }

// Int32 returns an int32 scalar value.
func Int32(n int32) Value { return Value{Kind: KindInt32, I32: n} }

// Float returns a float32 scalar value.
func Float(f float32) Value { return Value{Kind: KindFloat, F32: f} }

// String returns a string value.
func String(s string) Value {
	if s == "" {
		return Value{Kind: KindString, Empty: true}
	}
	return Value{Kind: KindString, S: s}
}

// Int8Array returns an int8 vector value.
func Int8Array(values []int8) Value { return Value{Kind: KindInt8Array, A8: values} }

// Int16Array returns an int16 vector value.
func Int16Array(values []int16) Value { return Value{Kind: KindInt16Array, A16: values} }

// Int32Array returns an int32 vector value.
func Int32Array(values []int32) Value { return Value{Kind: KindInt32Array, A32: values} }

// FloatArray returns a float32 vector value.
func FloatArray(values []float32) Value { return Value{Kind: KindFloatArray, AF: values} }

// EmptyOf returns the typed zero-count value for the given wire type.
func EmptyOf(t Type) Value {
	switch t {
	case TypeInt8:
		return Value{Kind: KindInt8, Empty: true}
	case TypeInt16:
		return Value{Kind: KindInt16, Empty: true}
	case TypeInt32:
		return Value{Kind: KindInt32, Empty: true}
	case TypeFloat:
		return Value{Kind: KindFloat, Empty: true}
	case TypeString:
		return Value{Kind: KindString, Empty: true}
	default:
		return Value{Kind: KindNone}
	}
}

// State classifies a numeric wire element.
type State uint8

const (
	// StateValue is a regular in-range number.
	StateValue State = iota
	// StateMissing is the per-type missing sentinel.
	StateMissing
	// StateEndOfVector is the per-type end-of-vector sentinel. No further
	// elements follow, even if more were declared.
	StateEndOfVector
	// StateReserved is a reserved bit pattern that is neither a value nor
	// a defined sentinel.
	StateReserved
)

// Sentinel bit patterns. Each numeric kind reserves its most extreme
// representable pattern as missing and the second-most-extreme as
// end-of-vector; the remainder of the band is reserved.
const (
	Int8Missing     int8 = math.MinInt8     // 0x80
	Int8EndOfVector int8 = math.MinInt8 + 1 // 0x81

	Int16Missing     int16 = math.MinInt16     // 0x8000
	Int16EndOfVector int16 = math.MinInt16 + 1 // 0x8001

	Int32Missing     int32 = math.MinInt32     // 0x80000000
	Int32EndOfVector int32 = math.MinInt32 + 1 // 0x80000001

	FloatMissingBits     uint32 = 0x7f800001
	FloatEndOfVectorBits uint32 = 0x7f800002
)

// Encodable value ranges, once the reserved sentinel bands are excluded.
const (
	MinInt8  int8  = math.MinInt8 + 8  // -120
	MinInt16 int16 = math.MinInt16 + 8 // -32760
	MinInt32 int32 = math.MinInt32 + 8 // -2147483640
)

// Int8State classifies an int8 wire element.
func Int8State(n int8) State {
	switch {
	case n == Int8Missing:
		return StateMissing
	case n == Int8EndOfVector:
		return StateEndOfVector
	case n < MinInt8:
		return StateReserved
	default:
		return StateValue
	}
}

// Int16State classifies an int16 wire element.
func Int16State(n int16) State {
	switch {
	case n == Int16Missing:
		return StateMissing
	case n == Int16EndOfVector:
		return StateEndOfVector
	case n < MinInt16:
		return StateReserved
	default:
		return StateValue
	}
}

// Int32State classifies an int32 wire element.
func Int32State(n int32) State {
	switch {
	case n == Int32Missing:
		return StateMissing
	case n == Int32EndOfVector:
		return StateEndOfVector
	case n < MinInt32:
		return StateReserved
	default:
		return StateValue
	}
}

// FloatState classifies a float32 wire element.
func FloatState(f float32) State {
	switch math.Float32bits(f) {
	case FloatMissingBits:
		return StateMissing
	case FloatEndOfVectorBits:
		return StateEndOfVector
	default:
		return StateValue
	}
}

// MissingFloat returns the float32 whose bit pattern is the missing
// sentinel.
func MissingFloat() float32 { return math.Float32frombits(FloatMissingBits) }
