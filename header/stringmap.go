package header

import "fmt"

// StringMap is an indexed dictionary of header-defined identifiers.
//
// It keeps two views in lockstep: a sparse index→identifier table that
// may contain unbound holes when explicit positions skip ahead, and a
// dense identifier→index map reflecting only entries actually inserted.
// Identifiers are never empty, so a hole is stored as the empty string.
//
// A StringMap is populated once from a header and is read-only during
// record decoding.
type StringMap struct {
	indices map[string]int
	entries []string
}

// NewStringMap returns an empty map.
func NewStringMap() *StringMap {
	return &StringMap{indices: make(map[string]int)}
}

// Insert appends id at the next free index and returns its index. It is
// idempotent: inserting an existing id returns its current index
// unchanged.
func (m *StringMap) Insert(id string) int {
	if i, ok := m.indices[id]; ok {
		return i
	}

	i := len(m.entries)
	m.entries = append(m.entries, id)
	m.indices[id] = i
	return i
}

// InsertAt binds id at an explicit index, extending the table with
// unbound holes as needed. Rebinding an occupied slot replaces it.
func (m *StringMap) InsertAt(i int, id string) {
	for len(m.entries) <= i {
		m.entries = append(m.entries, "")
	}
	m.entries[i] = id
	m.indices[id] = i
}

// Get returns the identifier bound at index i. The second return is
// false for out-of-range indices and unbound holes.
func (m *StringMap) Get(i int) (string, bool) {
	if i < 0 || i >= len(m.entries) || m.entries[i] == "" {
		return "", false
	}
	return m.entries[i], true
}

// IndexOf returns the index bound to id.
func (m *StringMap) IndexOf(id string) (int, bool) {
	i, ok := m.indices[id]
	return i, ok
}

// Len returns the length of the index table, holes included.
func (m *StringMap) Len() int {
	return len(m.entries)
}

// PositionMismatchError indicates a header whose explicit IDX hint
// contradicts an earlier binding of the same identifier. The header is
// internally inconsistent; parsing aborts rather than renumbering.
type PositionMismatchError struct {
	ActualIndex   int
	ActualID      string
	ExpectedIndex int
	ExpectedID    string
}

func (e *PositionMismatchError) Error() string {
	return fmt.Sprintf(
		"string map position mismatch: expected %s (IDX=%d), got %s (IDX=%d)",
		e.ExpectedID, e.ExpectedIndex, e.ActualID, e.ActualIndex,
	)
}

// insertWithHint applies the reconciliation rule: an explicit hint must
// agree with any prior binding; without a hint the id is appended at the
// next free index.
func (m *StringMap) insertWithHint(id string, idx int) error {
	if idx == NoIDX {
		m.Insert(id)
		return nil
	}

	if j, ok := m.indices[id]; ok {
		if j != idx {
			return &PositionMismatchError{
				ActualIndex:   idx,
				ActualID:      id,
				ExpectedIndex: j,
				ExpectedID:    id,
			}
		}
		return nil
	}

	m.InsertAt(idx, id)
	return nil
}
