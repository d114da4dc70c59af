package bcf

import "fmt"

// InvalidRecordError indicates a record that failed to project, carrying
// its position in the batch.
//
// The original underlying error can be accessed via errors.Unwrap.
type InvalidRecordError struct {
	Index int
	cause error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record at index %d: %v", e.Index, e.cause)
}

func (e *InvalidRecordError) Unwrap() error { return e.cause }
