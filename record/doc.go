// Package record implements the binary variant-call record: the fixed
// little-endian site prefix, the lazy boundary index over its
// variable-length leading fields, the INFO/FORMAT field decoder, and
// the projection into a fully resolved variant.Record.
//
// A Record wraps two immutable byte buffers, the site buffer and the
// samples buffer, exactly as they appear on the wire. Field boundaries
// are computed once on first access and frozen; afterward a Record is
// safe to read from multiple goroutines.
package record
