package header

import (
	"errors"
	"fmt"
	"strings"
)

const (
	columnHeaderPrefix = "#CHROM"
	fieldDelimiter     = "\t"
)

var (
	// ErrEmpty is returned when the input contains no header at all.
	ErrEmpty = errors.New("empty input")
	// ErrMissingFileFormat is returned when the first line is not a
	// fileformat record.
	ErrMissingFileFormat = errors.New("missing fileformat")
	// ErrUnexpectedFileFormat is returned when a fileformat record
	// appears after the first line.
	ErrUnexpectedFileFormat = errors.New("unexpected fileformat")
	// ErrMissingHeader is returned when the input ends before the #CHROM
	// line.
	ErrMissingHeader = errors.New("missing column header")
	// ErrUnexpectedContent is returned when data follows the #CHROM
	// line.
	ErrUnexpectedContent = errors.New("unexpected content after column header")
)

// InvalidColumnError indicates an out-of-place column on the #CHROM
// line.
type InvalidColumnError struct {
	Actual   string
	Expected string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("invalid column header: expected %q, got %q", e.Expected, e.Actual)
}

// DuplicateSampleNameError indicates a sample column that appears more
// than once.
type DuplicateSampleNameError struct {
	Name string
}

func (e *DuplicateSampleNameError) Error() string {
	return fmt.Sprintf("duplicate sample name: %s", e.Name)
}

type parserState uint8

const (
	stateEmpty parserState = iota
	stateReady
	stateDone
)

// Parser is a stateful, line-oriented header parser.
//
// The first line must be the fileformat record; structured records
// follow until the #CHROM column header line, after which the header is
// complete and further input is an error.
type Parser struct {
	state  parserState
	header Header
}

// NewParser returns a parser ready for the first header line.
func NewParser() *Parser {
	return &Parser{}
}

// Parse consumes a complete textual header.
func (p *Parser) Parse(s string) (*Header, error) {
	for line := range strings.Lines(s) {
		if err := p.ParsePartial(strings.TrimSuffix(line, "\n")); err != nil {
			return nil, err
		}
	}
	return p.Finish()
}

// ParsePartial consumes one header line.
func (p *Parser) ParsePartial(line string) error {
	switch p.state {
	case stateDone:
		return ErrUnexpectedContent
	case stateEmpty:
		rec, err := ParseRecord(line)
		if err != nil {
			return err
		}
		if rec.Kind != RecordFileFormat {
			return ErrMissingFileFormat
		}
		p.header.FileFormat = rec.FileFormat
		p.state = stateReady
		return nil
	}

	if strings.HasPrefix(line, columnHeaderPrefix) {
		if err := p.parseColumnHeader(line); err != nil {
			return err
		}
		p.state = stateDone
		return nil
	}

	rec, err := ParseRecord(line)
	if err != nil {
		return err
	}

	switch rec.Kind {
	case RecordFileFormat:
		return ErrUnexpectedFileFormat
	case RecordInfo:
		p.header.Infos.Add(rec.Info.ID, rec.Info)
	case RecordFilter:
		p.header.Filters.Add(rec.Filter.ID, rec.Filter)
	case RecordFormat:
		p.header.Formats.Add(rec.Format.ID, rec.Format)
	case RecordContig:
		p.header.Contigs.Add(rec.Contig.ID, rec.Contig)
	case RecordAlternativeAllele:
		p.header.AlternativeAlleles.Add(rec.Alt.ID, rec.Alt)
	default:
		p.header.Others = append(p.header.Others, rec)
	}

	return nil
}

// Finish validates terminal state and returns the built header.
func (p *Parser) Finish() (*Header, error) {
	switch p.state {
	case stateEmpty:
		return nil, ErrEmpty
	case stateReady:
		return nil, ErrMissingHeader
	}
	return &p.header, nil
}

func (p *Parser) parseColumnHeader(line string) error {
	columns := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}
	const formatColumn = "FORMAT"

	fields := strings.Split(line, fieldDelimiter)

	for i, expected := range columns {
		if i >= len(fields) {
			return &InvalidColumnError{Actual: "", Expected: expected}
		}
		if fields[i] != expected {
			return &InvalidColumnError{Actual: fields[i], Expected: expected}
		}
	}

	fields = fields[len(columns):]
	if len(fields) == 0 {
		return nil
	}

	if fields[0] != formatColumn {
		return &InvalidColumnError{Actual: fields[0], Expected: formatColumn}
	}

	seen := make(map[string]struct{}, len(fields)-1)
	for _, name := range fields[1:] {
		if _, ok := seen[name]; ok {
			return &DuplicateSampleNameError{Name: name}
		}
		seen[name] = struct{}{}
		p.header.SampleNames = append(p.header.SampleNames, name)
	}

	return nil
}
