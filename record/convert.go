package record

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hupe1980/bcf/header"
	"github.com/hupe1980/bcf/variant"
)

// Variant projects the binary record into a fully resolved
// variant.Record, resolving every dictionary index through the given
// dictionary set and typing every field per the header. It fails on
// the first error; no partial record is returned.
func (r *Record) Variant(h *header.Header, maps *header.StringMaps) (*variant.Record, error) {
	chromosome, ok := maps.Contigs().Get(r.ChromosomeID())
	if !ok {
		return nil, &UnknownContigError{Index: r.ChromosomeID()}
	}

	rawIDs, err := r.IDs()
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(rawIDs) {
		return nil, fmt.Errorf("%w: identifiers are not valid UTF-8", ErrInvalidData)
	}

	var ids []string
	if len(rawIDs) > 0 {
		ids = strings.Split(string(rawIDs), ";")
	}

	rawRef, err := r.ReferenceBases()
	if err != nil {
		return nil, err
	}
	if len(rawRef) == 0 {
		return nil, fmt.Errorf("%w: missing reference bases", ErrInvalidData)
	}
	if !utf8.Valid(rawRef) {
		return nil, fmt.Errorf("%w: reference bases are not valid UTF-8", ErrInvalidData)
	}

	alts, err := r.AlternateBases()
	if err != nil {
		return nil, err
	}

	alternateBases := make([]string, len(alts))
	for i, alt := range alts {
		if alt == nil {
			alternateBases[i] = "."
		} else {
			alternateBases[i] = *alt
		}
	}

	qual, err := r.QualityScore()
	if err != nil {
		return nil, err
	}

	filters, err := r.resolveFilters(maps.Strings())
	if err != nil {
		return nil, err
	}

	infoSrc, err := r.infoBytes()
	if err != nil {
		return nil, err
	}

	info, _, err := ReadInfo(infoSrc, h, maps.Strings(), r.InfoCount())
	if err != nil {
		return nil, err
	}

	samples, err := r.readSamples(h, maps.Strings())
	if err != nil {
		return nil, err
	}

	return &variant.Record{
		Chromosome:     chromosome,
		Position:       r.Position() + 1,
		IDs:            ids,
		ReferenceBases: string(rawRef),
		AlternateBases: alternateBases,
		QualityScore:   qual,
		Filters:        filters,
		Info:           info,
		Samples:        samples,
	}, nil
}

// resolveFilters maps the filter dictionary indices to their names.
// A nil return means the filters field is missing.
func (r *Record) resolveFilters(m *header.StringMap) ([]string, error) {
	indices, err := r.Filters()
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, nil
	}

	filters := make([]string, len(indices))
	for i, j := range indices {
		name, ok := m.Get(j)
		if !ok {
			return nil, &UnknownFilterError{Index: j}
		}
		filters[i] = name
	}

	return filters, nil
}

func (r *Record) readSamples(h *header.Header, m *header.StringMap) (*variant.Samples, error) {
	sampleCount, err := r.SampleCount()
	if err != nil {
		return nil, err
	}

	formatKeyCount := r.FormatKeyCount()
	if sampleCount == 0 || formatKeyCount == 0 {
		return nil, nil
	}

	return ReadSamples(r.samples, h, m, sampleCount, formatKeyCount)
}
