package record

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/hupe1980/bcf/header"
	"github.com/hupe1980/bcf/value"
	"github.com/hupe1980/bcf/variant"
)

// ReadSamples decodes the per-sample FORMAT series from a samples
// buffer: formatKeyCount series, each a dictionary key index followed
// by one typed vector holding sampleCount groups of the declared
// per-sample element count.
func ReadSamples(data []byte, h *header.Header, m *header.StringMap, sampleCount, formatKeyCount int) (*variant.Samples, error) {
	keys := make([]string, 0, formatKeyCount)
	rows := make([][]*variant.Value, sampleCount)
	for i := range rows {
		rows[i] = make([]*variant.Value, 0, formatKeyCount)
	}

	for range formatKeyCount {
		key, rest, err := readFieldKey(data, m)
		if err != nil {
			return nil, err
		}

		decl, ok := h.Formats.Get(key)
		if !ok {
			return nil, &UndeclaredFieldError{Key: key}
		}

		values, rest, err := readSeries(rest, decl.Type, sampleCount)
		if err != nil {
			return nil, err
		}
		data = rest

		keys = append(keys, key)
		for i := range rows {
			rows[i] = append(rows[i], values[i])
		}
	}

	return variant.NewSamples(keys, rows), nil
}

// readSeries decodes one FORMAT series: a type descriptor whose count
// is the per-sample element count, followed by sampleCount groups of
// that many elements.
func readSeries(data []byte, typ header.Type, sampleCount int) ([]*variant.Value, []byte, error) {
	wire, n, rest, err := value.ReadTag(data)
	if err != nil {
		return nil, nil, err
	}

	switch wire {
	case value.TypeMissing:
		return make([]*variant.Value, sampleCount), rest, nil
	case value.TypeInt8, value.TypeInt16, value.TypeInt32:
		if typ != header.TypeInteger {
			return nil, nil, &TypeMismatchError{Actual: header.TypeInteger, Expected: typ}
		}
		return readIntegerSeries(rest, wire, n, sampleCount)
	case value.TypeFloat:
		if typ != header.TypeFloat {
			return nil, nil, &TypeMismatchError{Actual: header.TypeFloat, Expected: typ}
		}
		return readFloatSeries(rest, n, sampleCount)
	case value.TypeString:
		if typ != header.TypeString && typ != header.TypeCharacter {
			return nil, nil, &TypeMismatchError{Actual: header.TypeString, Expected: typ}
		}
		return readStringSeries(rest, typ, n, sampleCount)
	default:
		return nil, nil, &value.UnknownTypeError{Code: uint8(wire)}
	}
}

func readIntegerSeries(data []byte, wire value.Type, n, sampleCount int) ([]*variant.Value, []byte, error) {
	width := 1
	switch wire {
	case value.TypeInt16:
		width = 2
	case value.TypeInt32:
		width = 4
	}

	if len(data) < width*n*sampleCount {
		return nil, nil, value.ErrUnexpectedEOF
	}

	at := func(i int) (int32, value.State) {
		switch wire {
		case value.TypeInt8:
			v := int8(data[i])
			return int32(v), value.Int8State(v)
		case value.TypeInt16:
			v := int16(binary.LittleEndian.Uint16(data[2*i:]))
			return int32(v), value.Int16State(v)
		default:
			v := int32(binary.LittleEndian.Uint32(data[4*i:]))
			return v, value.Int32State(v)
		}
	}

	values := make([]*variant.Value, sampleCount)
	for s := range sampleCount {
		if n == 1 {
			v, state := at(s)
			if state == value.StateValue {
				out := variant.Integer(v)
				values[s] = &out
			}
			continue
		}

		elems := make([]*int32, 0, n)
		for j := range n {
			v, state := at(s*n + j)
			if state == value.StateEndOfVector {
				break
			}
			elems = append(elems, optInt32(v, state))
		}

		out := variant.IntegerArray(elems)
		values[s] = &out
	}

	return values, data[width*n*sampleCount:], nil
}

func readFloatSeries(data []byte, n, sampleCount int) ([]*variant.Value, []byte, error) {
	if len(data) < 4*n*sampleCount {
		return nil, nil, value.ErrUnexpectedEOF
	}

	at := func(i int) (float32, value.State) {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		return v, value.FloatState(v)
	}

	values := make([]*variant.Value, sampleCount)
	for s := range sampleCount {
		if n == 1 {
			v, state := at(s)
			if state == value.StateValue {
				out := variant.Float(v)
				values[s] = &out
			}
			continue
		}

		elems := make([]*float32, 0, n)
		for j := range n {
			v, state := at(s*n + j)
			if state == value.StateEndOfVector {
				break
			}
			if state == value.StateValue {
				f := v
				elems = append(elems, &f)
			} else {
				elems = append(elems, nil)
			}
		}

		out := variant.FloatArray(elems)
		values[s] = &out
	}

	return values, data[4*n*sampleCount:], nil
}

// readStringSeries decodes fixed-width string groups: each sample owns
// n bytes, right-padded with NULs.
func readStringSeries(data []byte, typ header.Type, n, sampleCount int) ([]*variant.Value, []byte, error) {
	if len(data) < n*sampleCount {
		return nil, nil, value.ErrUnexpectedEOF
	}

	values := make([]*variant.Value, sampleCount)
	for s := range sampleCount {
		raw := strings.TrimRight(string(data[s*n:(s+1)*n]), "\x00")

		if typ == header.TypeCharacter {
			values[s] = characterFromString(raw)
			continue
		}

		if raw != "" {
			out := variant.String(raw)
			values[s] = &out
		}
	}

	return values, data[n*sampleCount:], nil
}
