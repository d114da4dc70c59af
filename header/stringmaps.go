package header

import "strings"

// StringMaps is the pair of dictionaries associated with one header: the
// dictionary of FILTER/INFO/FORMAT identifiers and the dictionary of
// contig names.
//
// Built once per header and immutable afterward; record decoders may
// share one StringMaps across goroutines by reference.
type StringMaps struct {
	strings *StringMap
	contigs *StringMap
}

// NewStringMaps returns the default dictionary set. The filter "PASS" is
// always implicitly bound at index 0 of the string dictionary, before
// any header content is seen.
func NewStringMaps() *StringMaps {
	m := &StringMaps{
		strings: NewStringMap(),
		contigs: NewStringMap(),
	}
	m.strings.Insert("PASS")
	return m
}

// Strings returns the dictionary of FILTER, INFO, and FORMAT
// identifiers.
func (m *StringMaps) Strings() *StringMap { return m.strings }

// Contigs returns the dictionary of contig names.
func (m *StringMaps) Contigs() *StringMap { return m.contigs }

// ParseStringMaps builds the dictionary set from a raw textual header,
// scanning records in file order.
//
// Records carrying an explicit IDX hint are bound exactly where
// declared, consistency-checked against any earlier binding; records
// without a hint are packed densely in declaration order around the
// gaps hinted entries leave behind.
func ParseStringMaps(s string) (*StringMaps, error) {
	m := NewStringMaps()

	first := true
	for rawLine := range strings.Lines(s) {
		line := strings.TrimSuffix(rawLine, "\n")

		if first {
			first = false
			rec, err := ParseRecord(line)
			if err != nil {
				return nil, err
			}
			if rec.Kind != RecordFileFormat {
				return nil, ErrMissingFileFormat
			}
			continue
		}

		if strings.HasPrefix(line, columnHeaderPrefix) {
			break
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, err
		}

		if err := m.add(rec); err != nil {
			return nil, err
		}
	}

	if first {
		return nil, ErrEmpty
	}

	return m, nil
}

// StringMapsFromHeader builds the dictionary set from a parsed header,
// honoring IDX hints, with collections visited in the order contigs,
// INFO, FILTER, FORMAT.
func StringMapsFromHeader(h *Header) (*StringMaps, error) {
	m := NewStringMaps()

	for _, id := range h.Contigs.IDs() {
		c, _ := h.Contigs.Get(id)
		if err := m.contigs.insertWithHint(id, c.IDX); err != nil {
			return nil, err
		}
	}

	for _, id := range h.Infos.IDs() {
		info, _ := h.Infos.Get(id)
		if err := m.strings.insertWithHint(id, info.IDX); err != nil {
			return nil, err
		}
	}

	for _, id := range h.Filters.IDs() {
		f, _ := h.Filters.Get(id)
		if err := m.strings.insertWithHint(id, f.IDX); err != nil {
			return nil, err
		}
	}

	for _, id := range h.Formats.IDs() {
		f, _ := h.Formats.Get(id)
		if err := m.strings.insertWithHint(id, f.IDX); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *StringMaps) add(rec Record) error {
	switch rec.Kind {
	case RecordContig:
		return m.contigs.insertWithHint(rec.Contig.ID, rec.Contig.IDX)
	case RecordFilter:
		return m.strings.insertWithHint(rec.Filter.ID, rec.Filter.IDX)
	case RecordFormat:
		return m.strings.insertWithHint(rec.Format.ID, rec.Format.IDX)
	case RecordInfo:
		return m.strings.insertWithHint(rec.Info.ID, rec.Info.IDX)
	default:
		return nil
	}
}
