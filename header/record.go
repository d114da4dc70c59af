package header

import (
	"fmt"
	"strconv"
	"strings"
)

const recordPrefix = "##"

// NoIDX marks a record that carries no explicit dictionary position
// hint.
const NoIDX = -1

// RecordKind identifies a parsed header record.
type RecordKind uint8

const (
	// RecordFileFormat is the ##fileformat record.
	RecordFileFormat RecordKind = iota + 1
	// RecordInfo is a ##INFO record.
	RecordInfo
	// RecordFilter is a ##FILTER record.
	RecordFilter
	// RecordFormat is a ##FORMAT record.
	RecordFormat
	// RecordContig is a ##contig record.
	RecordContig
	// RecordAlternativeAllele is an ##ALT record.
	RecordAlternativeAllele
	// RecordOther is any other ##KEY record, structured or not.
	RecordOther
)

// Info describes a header-declared INFO field.
type Info struct {
	ID          string
	Number      Number
	Type        Type
	Description string
	// IDX is the explicit dictionary position hint, or NoIDX.
	IDX   int
	Other map[string]string
}

// Filter describes a header-declared FILTER.
type Filter struct {
	ID          string
	Description string
	IDX         int
	Other       map[string]string
}

// Format describes a header-declared FORMAT field.
type Format struct {
	ID          string
	Number      Number
	Type        Type
	Description string
	IDX         int
	Other       map[string]string
}

// Contig describes a header-declared reference sequence.
type Contig struct {
	ID string
	// Length is the sequence length, or 0 when undeclared.
	Length int
	IDX    int
	Other  map[string]string
}

// AlternativeAllele describes a header-declared symbolic alternate
// allele.
type AlternativeAllele struct {
	ID          string
	Description string
	Other       map[string]string
}

// Record is one parsed header line. Kind selects which payload field is
// set.
type Record struct {
	Kind RecordKind

	FileFormat FileFormat
	Info       *Info
	Filter     *Filter
	Format     *Format
	Contig     *Contig
	Alt        *AlternativeAllele

	// Key and Value carry RecordOther lines. Fields is non-nil when the
	// value was structured (<...>).
	Key    string
	Value  string
	Fields []Field
}

// Field is one KEY=VALUE attribute inside a structured record value.
type Field struct {
	Key   string
	Value string
}

// InvalidRecordError indicates a header line that could not be parsed.
type InvalidRecordError struct {
	Line string
	Err  error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid header record: %s", e.Err)
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }

// ParseRecord parses one ##-prefixed header line.
func ParseRecord(line string) (Record, error) {
	rec, err := parseRecord(line)
	if err != nil {
		return Record{}, &InvalidRecordError{Line: line, Err: err}
	}
	return rec, nil
}

func parseRecord(line string) (Record, error) {
	raw, ok := strings.CutPrefix(line, recordPrefix)
	if !ok {
		return Record{}, fmt.Errorf("missing %q prefix", recordPrefix)
	}

	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return Record{}, fmt.Errorf("missing value delimiter")
	}

	if key == "fileformat" {
		fileFormat, err := ParseFileFormat(value)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: RecordFileFormat, FileFormat: fileFormat}, nil
	}

	if !strings.HasPrefix(value, "<") {
		return Record{Kind: RecordOther, Key: key, Value: value}, nil
	}

	fields, err := parseFields(value)
	if err != nil {
		return Record{}, err
	}

	switch key {
	case "INFO":
		return parseInfoRecord(fields)
	case "FILTER":
		return parseFilterRecord(fields)
	case "FORMAT":
		return parseFormatRecord(fields)
	case "contig":
		return parseContigRecord(fields)
	case "ALT":
		return parseAltRecord(fields)
	default:
		return Record{Kind: RecordOther, Key: key, Fields: fields}, nil
	}
}

// parseFields parses a structured value of the form <A=B,C="D, E",...>.
// Values may be bare, double-quoted (with \" and \\ escapes), or
// bracketed ([a, b]).
func parseFields(s string) ([]Field, error) {
	if !strings.HasPrefix(s, "<") || !strings.HasSuffix(s, ">") {
		return nil, fmt.Errorf("unbalanced angle brackets")
	}
	s = s[1 : len(s)-1]

	var fields []Field

	for len(s) > 0 {
		key, rest, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed field near %q", s)
		}

		var value string
		var err error
		value, rest, err = parseFieldValue(rest)
		if err != nil {
			return nil, err
		}

		fields = append(fields, Field{Key: key, Value: value})
		s = rest
	}

	return fields, nil
}

func parseFieldValue(s string) (string, string, error) {
	switch {
	case strings.HasPrefix(s, `"`):
		return parseQuotedValue(s)
	case strings.HasPrefix(s, "["):
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return "", "", fmt.Errorf("unterminated bracket value")
		}
		rest, err := cutFieldDelimiter(s[end+1:])
		if err != nil {
			return "", "", err
		}
		return s[:end+1], rest, nil
	default:
		if i := strings.IndexByte(s, ','); i >= 0 {
			return s[:i], s[i+1:], nil
		}
		return s, "", nil
	}
}

func parseQuotedValue(s string) (string, string, error) {
	var sb strings.Builder

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", fmt.Errorf("unterminated escape")
			}
			i++
			sb.WriteByte(s[i])
		case '"':
			rest, err := cutFieldDelimiter(s[i+1:])
			if err != nil {
				return "", "", err
			}
			return sb.String(), rest, nil
		default:
			sb.WriteByte(s[i])
		}
	}

	return "", "", fmt.Errorf("unterminated quoted value")
}

// cutFieldDelimiter consumes the comma separating two fields, or
// accepts the end of the value.
func cutFieldDelimiter(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if s[0] != ',' {
		return "", fmt.Errorf("expected field delimiter near %q", s)
	}
	return s[1:], nil
}

func fieldMap(fields []Field) (map[string]string, []string) {
	m := make(map[string]string, len(fields))
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := m[f.Key]; !ok {
			order = append(order, f.Key)
		}
		m[f.Key] = f.Value
	}
	return m, order
}

func takeID(m map[string]string) (string, error) {
	id, ok := m["ID"]
	if !ok || id == "" {
		return "", fmt.Errorf("missing ID")
	}
	delete(m, "ID")
	return id, nil
}

func takeIDX(m map[string]string) (int, error) {
	raw, ok := m["IDX"]
	if !ok {
		return NoIDX, nil
	}
	delete(m, "IDX")

	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid IDX: %q", raw)
	}
	return idx, nil
}

func otherFields(m map[string]string, order []string) map[string]string {
	out := make(map[string]string)
	for _, k := range order {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseInfoRecord(fields []Field) (Record, error) {
	m, order := fieldMap(fields)

	id, err := takeID(m)
	if err != nil {
		return Record{}, err
	}

	rawNumber, ok := m["Number"]
	if !ok {
		return Record{}, fmt.Errorf("INFO %s: missing Number", id)
	}
	delete(m, "Number")
	number, err := ParseNumber(rawNumber)
	if err != nil {
		return Record{}, err
	}

	rawType, ok := m["Type"]
	if !ok {
		return Record{}, fmt.Errorf("INFO %s: missing Type", id)
	}
	delete(m, "Type")
	typ, err := ParseInfoType(rawType)
	if err != nil {
		return Record{}, err
	}

	description := m["Description"]
	delete(m, "Description")

	idx, err := takeIDX(m)
	if err != nil {
		return Record{}, err
	}

	return Record{Kind: RecordInfo, Info: &Info{
		ID:          id,
		Number:      number,
		Type:        typ,
		Description: description,
		IDX:         idx,
		Other:       otherFields(m, order),
	}}, nil
}

func parseFilterRecord(fields []Field) (Record, error) {
	m, order := fieldMap(fields)

	id, err := takeID(m)
	if err != nil {
		return Record{}, err
	}

	description := m["Description"]
	delete(m, "Description")

	idx, err := takeIDX(m)
	if err != nil {
		return Record{}, err
	}

	return Record{Kind: RecordFilter, Filter: &Filter{
		ID:          id,
		Description: description,
		IDX:         idx,
		Other:       otherFields(m, order),
	}}, nil
}

func parseFormatRecord(fields []Field) (Record, error) {
	m, order := fieldMap(fields)

	id, err := takeID(m)
	if err != nil {
		return Record{}, err
	}

	rawNumber, ok := m["Number"]
	if !ok {
		return Record{}, fmt.Errorf("FORMAT %s: missing Number", id)
	}
	delete(m, "Number")
	number, err := ParseNumber(rawNumber)
	if err != nil {
		return Record{}, err
	}

	rawType, ok := m["Type"]
	if !ok {
		return Record{}, fmt.Errorf("FORMAT %s: missing Type", id)
	}
	delete(m, "Type")
	typ, err := ParseFormatType(rawType)
	if err != nil {
		return Record{}, err
	}

	description := m["Description"]
	delete(m, "Description")

	idx, err := takeIDX(m)
	if err != nil {
		return Record{}, err
	}

	return Record{Kind: RecordFormat, Format: &Format{
		ID:          id,
		Number:      number,
		Type:        typ,
		Description: description,
		IDX:         idx,
		Other:       otherFields(m, order),
	}}, nil
}

func parseContigRecord(fields []Field) (Record, error) {
	m, order := fieldMap(fields)

	id, err := takeID(m)
	if err != nil {
		return Record{}, err
	}

	var length int
	if raw, ok := m["length"]; ok {
		delete(m, "length")
		length, err = strconv.Atoi(raw)
		if err != nil || length < 0 {
			return Record{}, fmt.Errorf("contig %s: invalid length: %q", id, raw)
		}
	}

	idx, err := takeIDX(m)
	if err != nil {
		return Record{}, err
	}

	return Record{Kind: RecordContig, Contig: &Contig{
		ID:     id,
		Length: length,
		IDX:    idx,
		Other:  otherFields(m, order),
	}}, nil
}

func parseAltRecord(fields []Field) (Record, error) {
	m, order := fieldMap(fields)

	id, err := takeID(m)
	if err != nil {
		return Record{}, err
	}

	description := m["Description"]
	delete(m, "Description")

	return Record{Kind: RecordAlternativeAllele, Alt: &AlternativeAllele{
		ID:          id,
		Description: description,
		Other:       otherFields(m, order),
	}}, nil
}
