package value

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnexpectedEOF is returned when the input ends mid-value.
	ErrUnexpectedEOF = errors.New("unexpected end of value data")
	// ErrInvalidCount is returned when a variable-width count is not a
	// non-negative integer scalar.
	ErrInvalidCount = errors.New("invalid value count")
)

// UnknownTypeError indicates an unrecognized wire type code.
//
// The low nibble of a type descriptor byte must be one of the defined
// element kinds.
type UnknownTypeError struct {
	Code uint8
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type: 0x%02x", e.Code)
}

// ReadTag reads one type descriptor: the element kind and the declared
// element count. A count nibble of 15 means the true count follows as a
// typed integer scalar.
//
// It returns the remaining input after the descriptor.
func ReadTag(data []byte) (Type, int, []byte, error) {
	if len(data) == 0 {
		return 0, 0, nil, ErrUnexpectedEOF
	}

	b := data[0]
	data = data[1:]

	typ := Type(b & 0x0f)
	switch typ {
	case TypeMissing, TypeInt8, TypeInt16, TypeInt32, TypeFloat, TypeString:
	default:
		return 0, 0, nil, &UnknownTypeError{Code: uint8(typ)}
	}

	n := int(b >> 4)
	if n == 0x0f {
		var err error
		n, data, err = readCount(data)
		if err != nil {
			return 0, 0, nil, err
		}
	}

	return typ, n, data, nil
}

// readCount reads an overflow count: a typed integer scalar following a
// descriptor whose count nibble was 15.
func readCount(data []byte) (int, []byte, error) {
	typ, n, rest, err := ReadTag(data)
	if err != nil {
		return 0, nil, err
	}

	if n != 1 {
		return 0, nil, ErrInvalidCount
	}

	var count int32
	switch typ {
	case TypeInt8:
		if len(rest) < 1 {
			return 0, nil, ErrUnexpectedEOF
		}
		count = int32(int8(rest[0]))
		rest = rest[1:]
	case TypeInt16:
		if len(rest) < 2 {
			return 0, nil, ErrUnexpectedEOF
		}
		count = int32(int16(binary.LittleEndian.Uint16(rest)))
		rest = rest[2:]
	case TypeInt32:
		if len(rest) < 4 {
			return 0, nil, ErrUnexpectedEOF
		}
		count = int32(binary.LittleEndian.Uint32(rest))
		rest = rest[4:]
	default:
		return 0, nil, ErrInvalidCount
	}

	if count < 0 {
		return 0, nil, ErrInvalidCount
	}

	return int(count), rest, nil
}

// Read decodes one typed value from data and returns the remainder.
//
// Tag 0x00 decodes to the absent marker (KindNone). A declared count of
// zero decodes to the typed empty state. Numeric vectors are truncated at
// the first end-of-vector sentinel, but the declared payload width is
// always consumed so the caller stays aligned with the stream.
func Read(data []byte) (Value, []byte, error) {
	typ, n, rest, err := ReadTag(data)
	if err != nil {
		return Value{}, nil, err
	}

	switch typ {
	case TypeMissing:
		return Value{Kind: KindNone}, rest, nil
	case TypeString:
		if n == 0 {
			return Value{Kind: KindString, Empty: true}, rest, nil
		}
		if len(rest) < n {
			return Value{}, nil, ErrUnexpectedEOF
		}
		return Value{Kind: KindString, S: string(rest[:n])}, rest[n:], nil
	case TypeInt8:
		return readInt8(rest, n)
	case TypeInt16:
		return readInt16(rest, n)
	case TypeInt32:
		return readInt32(rest, n)
	case TypeFloat:
		return readFloat(rest, n)
	default:
		return Value{}, nil, &UnknownTypeError{Code: uint8(typ)}
	}
}

func readInt8(data []byte, n int) (Value, []byte, error) {
	if n == 0 {
		return Value{Kind: KindInt8, Empty: true}, data, nil
	}
	if len(data) < n {
		return Value{}, nil, ErrUnexpectedEOF
	}

	if n == 1 {
		return Value{Kind: KindInt8, I8: int8(data[0])}, data[1:], nil
	}

	values := make([]int8, 0, n)
	for i := range n {
		v := int8(data[i])
		if Int8State(v) == StateEndOfVector {
			break
		}
		values = append(values, v)
	}

	return Value{Kind: KindInt8Array, A8: values}, data[n:], nil
}

func readInt16(data []byte, n int) (Value, []byte, error) {
	if n == 0 {
		return Value{Kind: KindInt16, Empty: true}, data, nil
	}
	if len(data) < 2*n {
		return Value{}, nil, ErrUnexpectedEOF
	}

	if n == 1 {
		v := int16(binary.LittleEndian.Uint16(data))
		return Value{Kind: KindInt16, I16: v}, data[2:], nil
	}

	values := make([]int16, 0, n)
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(data[2*i:]))
		if Int16State(v) == StateEndOfVector {
			break
		}
		values = append(values, v)
	}

	return Value{Kind: KindInt16Array, A16: values}, data[2*n:], nil
}

func readInt32(data []byte, n int) (Value, []byte, error) {
	if n == 0 {
		return Value{Kind: KindInt32, Empty: true}, data, nil
	}
	if len(data) < 4*n {
		return Value{}, nil, ErrUnexpectedEOF
	}

	if n == 1 {
		v := int32(binary.LittleEndian.Uint32(data))
		return Value{Kind: KindInt32, I32: v}, data[4:], nil
	}

	values := make([]int32, 0, n)
	for i := range n {
		v := int32(binary.LittleEndian.Uint32(data[4*i:]))
		if Int32State(v) == StateEndOfVector {
			break
		}
		values = append(values, v)
	}

	return Value{Kind: KindInt32Array, A32: values}, data[4*n:], nil
}

func readFloat(data []byte, n int) (Value, []byte, error) {
	if n == 0 {
		return Value{Kind: KindFloat, Empty: true}, data, nil
	}
	if len(data) < 4*n {
		return Value{}, nil, ErrUnexpectedEOF
	}

	if n == 1 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data))
		return Value{Kind: KindFloat, F32: v}, data[4:], nil
	}

	values := make([]float32, 0, n)
	for i := range n {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		if FloatState(v) == StateEndOfVector {
			break
		}
		values = append(values, v)
	}

	return Value{Kind: KindFloatArray, AF: values}, data[4*n:], nil
}
