package record

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bcf/header"
)

// ErrInvalidData is returned when a record buffer is structurally
// malformed: a wrong wire kind where a specific kind is required, an
// undecodable sentinel in a scalar position, or invalid UTF-8 in a
// text field.
var ErrInvalidData = errors.New("invalid record data")

// TypeMismatchError indicates a field whose wire value is incompatible
// with its header-declared type. Actual is TypeInvalid when the wire
// value was the absent marker.
type TypeMismatchError struct {
	Actual   header.Type
	Expected header.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// UndefinedKeyError indicates a field key index with no binding in the
// string dictionary.
type UndefinedKeyError struct {
	Index int
}

func (e *UndefinedKeyError) Error() string {
	return fmt.Sprintf("undefined dictionary key index: %d", e.Index)
}

// UndeclaredFieldError indicates a field key resolved by the dictionary
// but missing its INFO or FORMAT declaration in the header.
type UndeclaredFieldError struct {
	Key string
}

func (e *UndeclaredFieldError) Error() string {
	return fmt.Sprintf("field not declared in header: %s", e.Key)
}

// DuplicateKeyError indicates two INFO fields with the same key within
// one record. The format guarantees uniqueness; a duplicate means the
// record is corrupt.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Key)
}

// UnknownContigError indicates a chromosome index with no binding in
// the contig dictionary.
type UnknownContigError struct {
	Index int
}

func (e *UnknownContigError) Error() string {
	return fmt.Sprintf("unknown contig index: %d", e.Index)
}

// UnknownFilterError indicates a filter index with no binding in the
// string dictionary.
type UnknownFilterError struct {
	Index int
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter index: %d", e.Index)
}
