// Package value implements the typed binary value encoding that
// underlies BCF records.
//
// A wire value is one type descriptor byte followed by its payload. The
// low nibble of the descriptor selects the element kind (int8, int16,
// int32, float32, or string); the high nibble is the element count, with
// 15 meaning the true count follows as a typed integer scalar. Each
// numeric kind reserves its most extreme bit patterns as "missing" and
// "end-of-vector" sentinels, so decoders must classify an element before
// interpreting its bits as a number.
//
// Decoding:
//
//	v, rest, err := value.Read(data)
//
// Encoding:
//
//	buf, err = value.AppendValue(buf, value.IntValue(8))
//
// Strings are always a single length-prefixed run; the wire format has
// no array-of-char kind. Comma-delimited text inside a string is a
// higher-layer convention and is not interpreted here.
package value
