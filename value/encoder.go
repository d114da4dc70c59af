package value

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/bcf/internal/conv"
)

// OutOfRangeError indicates an attempt to encode an integer in a width
// that cannot represent it without colliding with a reserved sentinel.
//
// This is a caller error; values are never silently narrowed.
type OutOfRangeError struct {
	Value int32
	Type  Type
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d out of range for %s", e.Value, e.Type)
}

// AppendTag appends a type descriptor for n elements of the given kind.
// Counts above 14 are emitted in the overflow form: a descriptor with a
// count nibble of 15 followed by the true count as a typed integer
// scalar.
func AppendTag(buf []byte, typ Type, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}

	if n < 0x0f {
		return append(buf, byte(n)<<4|byte(typ)), nil
	}

	buf = append(buf, 0xf0|byte(typ))

	count, err := conv.IntToInt32(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}

	return AppendValue(buf, IntValue(count))
}

// AppendValue appends the wire encoding of v.
func AppendValue(buf []byte, v Value) ([]byte, error) {
	if v.Kind == KindNone {
		return append(buf, 0x00), nil
	}

	if v.Empty {
		return AppendTag(buf, v.Type(), 0)
	}

	var err error

	switch v.Kind {
	case KindInt8:
		if buf, err = AppendTag(buf, TypeInt8, 1); err != nil {
			return nil, err
		}
		return append(buf, byte(v.I8)), nil
	case KindInt16:
		if buf, err = AppendTag(buf, TypeInt16, 1); err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint16(buf, uint16(v.I16)), nil
	case KindInt32:
		if buf, err = AppendTag(buf, TypeInt32, 1); err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint32(buf, uint32(v.I32)), nil
	case KindFloat:
		if buf, err = AppendTag(buf, TypeFloat, 1); err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.F32)), nil
	case KindString:
		if buf, err = AppendTag(buf, TypeString, len(v.S)); err != nil {
			return nil, err
		}
		return append(buf, v.S...), nil
	case KindInt8Array:
		if buf, err = AppendTag(buf, TypeInt8, len(v.A8)); err != nil {
			return nil, err
		}
		for _, n := range v.A8 {
			buf = append(buf, byte(n))
		}
		return buf, nil
	case KindInt16Array:
		if buf, err = AppendTag(buf, TypeInt16, len(v.A16)); err != nil {
			return nil, err
		}
		for _, n := range v.A16 {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(n))
		}
		return buf, nil
	case KindInt32Array:
		if buf, err = AppendTag(buf, TypeInt32, len(v.A32)); err != nil {
			return nil, err
		}
		for _, n := range v.A32 {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
		}
		return buf, nil
	case KindFloatArray:
		if buf, err = AppendTag(buf, TypeFloat, len(v.AF)); err != nil {
			return nil, err
		}
		for _, f := range v.AF {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
		return buf, nil
	default:
		return nil, &UnknownTypeError{Code: uint8(v.Kind)}
	}
}

// FitsInt8 reports whether n is representable as an int8 wire element
// without touching the reserved sentinel band.
func FitsInt8(n int32) bool {
	return n >= int32(MinInt8) && n <= math.MaxInt8
}

// FitsInt16 reports whether n is representable as an int16 wire element
// without touching the reserved sentinel band.
func FitsInt16(n int32) bool {
	return n >= int32(MinInt16) && n <= math.MaxInt16
}

// IntValue returns a scalar integer value in the narrowest width whose
// non-reserved range holds n.
func IntValue(n int32) Value {
	switch {
	case FitsInt8(n):
		return Int8(int8(n))
	case FitsInt16(n):
		return Int16(int16(n))
	default:
		return Int32(n)
	}
}

// IntValueAs returns a scalar integer value of an explicit width. It
// fails if n does not fit; the caller asked for a narrower width than
// the value allows.
func IntValueAs(n int32, typ Type) (Value, error) {
	switch typ {
	case TypeInt8:
		if !FitsInt8(n) {
			return Value{}, &OutOfRangeError{Value: n, Type: typ}
		}
		return Int8(int8(n)), nil
	case TypeInt16:
		if !FitsInt16(n) {
			return Value{}, &OutOfRangeError{Value: n, Type: typ}
		}
		return Int16(int16(n)), nil
	case TypeInt32:
		if n < MinInt32 {
			return Value{}, &OutOfRangeError{Value: n, Type: typ}
		}
		return Int32(n), nil
	default:
		return Value{}, &UnknownTypeError{Code: uint8(typ)}
	}
}

// OptIntArrayValue returns an integer vector value in the narrowest
// width that holds every present element. Nil elements are emitted as
// the missing sentinel of the chosen width.
func OptIntArrayValue(values []*int32) Value {
	typ := TypeInt8
	for _, p := range values {
		if p == nil {
			continue
		}
		if !FitsInt8(*p) && typ == TypeInt8 {
			typ = TypeInt16
		}
		if !FitsInt16(*p) {
			typ = TypeInt32
		}
	}

	switch typ {
	case TypeInt8:
		out := make([]int8, len(values))
		for i, p := range values {
			if p == nil {
				out[i] = Int8Missing
			} else {
				out[i] = int8(*p)
			}
		}
		return Int8Array(out)
	case TypeInt16:
		out := make([]int16, len(values))
		for i, p := range values {
			if p == nil {
				out[i] = Int16Missing
			} else {
				out[i] = int16(*p)
			}
		}
		return Int16Array(out)
	default:
		out := make([]int32, len(values))
		for i, p := range values {
			if p == nil {
				out[i] = Int32Missing
			} else {
				out[i] = *p
			}
		}
		return Int32Array(out)
	}
}

// IntArrayValue returns an integer vector value in the narrowest width
// that holds every element.
func IntArrayValue(values []int32) Value {
	opts := make([]*int32, len(values))
	for i := range values {
		opts[i] = &values[i]
	}
	return OptIntArrayValue(opts)
}
