package record

import (
	"fmt"
	"strings"

	"github.com/hupe1980/bcf/header"
	"github.com/hupe1980/bcf/value"
	"github.com/hupe1980/bcf/variant"
)

// characterDelimiter separates the segments of a character array, which
// the wire carries as a single string.
const characterDelimiter = ","

// characterMissing is the per-segment missing marker of a character
// array.
const characterMissing = "."

// ReadInfo decodes exactly count INFO fields from data, resolving keys
// through the string dictionary and typing values per the header
// declarations. A duplicate key aborts the decode; no partial map is
// returned.
func ReadInfo(data []byte, h *header.Header, m *header.StringMap, count int) (*variant.Info, []byte, error) {
	info := variant.NewInfo()

	for range count {
		key, v, rest, err := readInfoField(data, h, m)
		if err != nil {
			return nil, nil, err
		}
		data = rest

		if _, ok := info.Insert(key, v); ok {
			return nil, nil, &DuplicateKeyError{Key: key}
		}
	}

	return info, data, nil
}

// readInfoField decodes one INFO field: a dictionary key index followed
// by a typed value.
func readInfoField(data []byte, h *header.Header, m *header.StringMap) (string, *variant.Value, []byte, error) {
	key, rest, err := readFieldKey(data, m)
	if err != nil {
		return "", nil, nil, err
	}

	decl, ok := h.Infos.Get(key)
	if !ok {
		return "", nil, nil, &UndeclaredFieldError{Key: key}
	}

	v, rest, err := readValue(rest, decl.Type)
	if err != nil {
		return "", nil, nil, fmt.Errorf("field %s: %w", key, err)
	}

	return key, v, rest, nil
}

// readFieldKey reads a dictionary index as a typed integer scalar and
// resolves it through the string dictionary.
func readFieldKey(data []byte, m *header.StringMap) (string, []byte, error) {
	v, rest, err := value.Read(data)
	if err != nil {
		return "", nil, err
	}

	i, err := scalarInt(v)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid field key", ErrInvalidData)
	}

	key, ok := m.Get(i)
	if !ok {
		return "", nil, &UndefinedKeyError{Index: i}
	}

	return key, rest, nil
}

// scalarInt extracts an in-range integer scalar from a wire value.
func scalarInt(v value.Value) (int, error) {
	if v.Empty {
		return 0, ErrInvalidData
	}

	switch v.Kind {
	case value.KindInt8:
		if value.Int8State(v.I8) != value.StateValue {
			return 0, ErrInvalidData
		}
		return int(v.I8), nil
	case value.KindInt16:
		if value.Int16State(v.I16) != value.StateValue {
			return 0, ErrInvalidData
		}
		return int(v.I16), nil
	case value.KindInt32:
		if value.Int32State(v.I32) != value.StateValue {
			return 0, ErrInvalidData
		}
		return int(v.I32), nil
	default:
		return 0, ErrInvalidData
	}
}

// readValue decodes one typed wire value and converts it per the
// header-declared field type. A nil result with a nil error is a
// present-but-missing field.
func readValue(data []byte, typ header.Type) (*variant.Value, []byte, error) {
	v, rest, err := value.Read(data)
	if err != nil {
		return nil, nil, err
	}

	out, err := convertValue(v, typ)
	if err != nil {
		return nil, nil, err
	}

	return out, rest, nil
}

// convertValue applies the per-type conversion rules to a decoded wire
// value.
func convertValue(v value.Value, typ header.Type) (*variant.Value, error) {
	switch typ {
	case header.TypeInteger:
		return convertInteger(v)
	case header.TypeFlag:
		return convertFlag(v)
	case header.TypeFloat:
		return convertFloat(v)
	case header.TypeCharacter:
		return convertCharacter(v)
	case header.TypeString:
		return convertString(v)
	default:
		return nil, &TypeMismatchError{Actual: actualType(v), Expected: typ}
	}
}

func convertInteger(v value.Value) (*variant.Value, error) {
	if v.Empty {
		switch v.Kind {
		case value.KindInt8, value.KindInt16, value.KindInt32:
			return nil, nil
		}
	}

	switch v.Kind {
	case value.KindNone:
		return nil, nil
	case value.KindInt8:
		return scalarInteger(int32(v.I8), value.Int8State(v.I8))
	case value.KindInt16:
		return scalarInteger(int32(v.I16), value.Int16State(v.I16))
	case value.KindInt32:
		return scalarInteger(v.I32, value.Int32State(v.I32))
	case value.KindInt8Array:
		values := make([]*int32, len(v.A8))
		for i, n := range v.A8 {
			values[i] = optInt32(int32(n), value.Int8State(n))
		}
		out := variant.IntegerArray(values)
		return &out, nil
	case value.KindInt16Array:
		values := make([]*int32, len(v.A16))
		for i, n := range v.A16 {
			values[i] = optInt32(int32(n), value.Int16State(n))
		}
		out := variant.IntegerArray(values)
		return &out, nil
	case value.KindInt32Array:
		values := make([]*int32, len(v.A32))
		for i, n := range v.A32 {
			values[i] = optInt32(n, value.Int32State(n))
		}
		out := variant.IntegerArray(values)
		return &out, nil
	default:
		return nil, &TypeMismatchError{Actual: actualType(v), Expected: header.TypeInteger}
	}
}

func scalarInteger(n int32, state value.State) (*variant.Value, error) {
	switch state {
	case value.StateValue:
		out := variant.Integer(n)
		return &out, nil
	case value.StateMissing:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: reserved integer scalar", ErrInvalidData)
	}
}

func optInt32(n int32, state value.State) *int32 {
	if state != value.StateValue {
		return nil
	}
	return &n
}

func convertFlag(v value.Value) (*variant.Value, error) {
	if v.Kind == value.KindNone || (v.Kind == value.KindInt8 && !v.Empty && v.I8 == 1) {
		out := variant.Flag()
		return &out, nil
	}
	return nil, &TypeMismatchError{Actual: actualType(v), Expected: header.TypeFlag}
}

func convertFloat(v value.Value) (*variant.Value, error) {
	switch v.Kind {
	case value.KindNone:
		return nil, nil
	case value.KindFloat:
		if v.Empty {
			return nil, nil
		}
		switch value.FloatState(v.F32) {
		case value.StateValue:
			out := variant.Float(v.F32)
			return &out, nil
		case value.StateMissing:
			return nil, nil
		default:
			return nil, fmt.Errorf("%w: reserved float scalar", ErrInvalidData)
		}
	case value.KindFloatArray:
		values := make([]*float32, len(v.AF))
		for i, f := range v.AF {
			if value.FloatState(f) == value.StateValue {
				g := f
				values[i] = &g
			}
		}
		out := variant.FloatArray(values)
		return &out, nil
	default:
		return nil, &TypeMismatchError{Actual: actualType(v), Expected: header.TypeFloat}
	}
}

func convertCharacter(v value.Value) (*variant.Value, error) {
	switch v.Kind {
	case value.KindNone:
		return nil, nil
	case value.KindString:
		return characterFromString(v.S), nil
	default:
		return nil, &TypeMismatchError{Actual: actualType(v), Expected: header.TypeCharacter}
	}
}

// characterFromString interprets a string payload as a character field:
// zero or one byte is a scalar; longer payloads are comma-delimited
// segments with "." as the per-segment missing marker.
func characterFromString(s string) *variant.Value {
	switch len(s) {
	case 0:
		return nil
	case 1:
		out := variant.Character(s[0])
		return &out
	}

	var values []*byte
	for seg := range strings.SplitSeq(s, characterDelimiter) {
		if seg == characterMissing {
			values = append(values, nil)
			continue
		}
		for i := range len(seg) {
			c := seg[i]
			values = append(values, &c)
		}
	}

	out := variant.CharacterArray(values)
	return &out
}

func convertString(v value.Value) (*variant.Value, error) {
	switch v.Kind {
	case value.KindNone:
		return nil, nil
	case value.KindString:
		if v.Empty {
			return nil, nil
		}
		out := variant.String(v.S)
		return &out, nil
	default:
		return nil, &TypeMismatchError{Actual: actualType(v), Expected: header.TypeString}
	}
}

// actualType maps a wire value to its closest header-level type for
// error reporting. TypeInvalid stands for the absent marker.
func actualType(v value.Value) header.Type {
	switch v.Kind {
	case value.KindInt8, value.KindInt16, value.KindInt32,
		value.KindInt8Array, value.KindInt16Array, value.KindInt32Array:
		return header.TypeInteger
	case value.KindFloat, value.KindFloatArray:
		return header.TypeFloat
	case value.KindString:
		return header.TypeString
	default:
		return header.TypeInvalid
	}
}
