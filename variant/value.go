package variant

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindInteger represents a 32-bit integer value.
	KindInteger
	// KindFlag represents a presence-only value carrying no payload.
	KindFlag
	// KindFloat represents a 32-bit float value.
	KindFloat
	// KindCharacter represents a single-character value.
	KindCharacter
	// KindString represents a string value.
	KindString
	// KindIntegerArray represents an integer array value.
	KindIntegerArray
	// KindFloatArray represents a float array value.
	KindFloatArray
	// KindCharacterArray represents a character array value.
	KindCharacterArray
	// KindStringArray represents a string array value.
	KindStringArray
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFlag:
		return "Flag"
	case KindFloat:
		return "Float"
	case KindCharacter:
		return "Character"
	case KindString:
		return "String"
	case KindIntegerArray:
		return "IntegerArray"
	case KindFloatArray:
		return "FloatArray"
	case KindCharacterArray:
		return "CharacterArray"
	case KindStringArray:
		return "StringArray"
	default:
		return "Invalid"
	}
}

// Value is a decoded, header-typed field value.
//
// Array elements are pointers so element-level missingness stays
// independent of field-level absence: a nil element is a missing entry
// inside a present array.
type Value struct {
	Kind Kind

	Int       int32
	Float     float32
	Character byte
	String    string

	Ints       []*int32
	Floats     []*float32
	Characters []*byte
	Strings    []*string
}

// Integer returns an integer Value.
func Integer(n int32) Value { return Value{Kind: KindInteger, Int: n} }

// Flag returns a flag Value.
func Flag() Value { return Value{Kind: KindFlag} }

// Float returns a float Value.
func Float(f float32) Value { return Value{Kind: KindFloat, Float: f} }

// Character returns a character Value.
func Character(c byte) Value { return Value{Kind: KindCharacter, Character: c} }

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, String: s} }

// IntegerArray returns an integer array Value.
func IntegerArray(values []*int32) Value {
	return Value{Kind: KindIntegerArray, Ints: values}
}

// FloatArray returns a float array Value.
func FloatArray(values []*float32) Value {
	return Value{Kind: KindFloatArray, Floats: values}
}

// CharacterArray returns a character array Value.
func CharacterArray(values []*byte) Value {
	return Value{Kind: KindCharacterArray, Characters: values}
}

// StringArray returns a string array Value.
func StringArray(values []*string) Value {
	return Value{Kind: KindStringArray, Strings: values}
}
