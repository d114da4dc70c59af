// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer
// overflow/underflow when converting between Go's int
// (platform-dependent) and the fixed-width types that appear in wire
// data (counts, lengths, offsets).
//
// For conversions that are provably safe by domain constraints (e.g.,
// loop indices, bounded counters), use direct type casts instead.
package conv
