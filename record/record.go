package record

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/bcf/internal/conv"
	"github.com/hupe1980/bcf/value"
)

// Record is one binary variant-call record: an immutable site buffer
// holding the fixed prefix plus the variable site fields, and an
// immutable samples buffer holding the per-sample FORMAT series.
type Record struct {
	site    []byte
	samples []byte

	bounds  bounds
	indexed bool
}

// New wraps a site buffer and samples buffer as a Record. The site
// buffer must at least cover the fixed prefix. Both buffers must not
// be mutated afterward.
func New(site, samples []byte) (*Record, error) {
	if len(site) < sitePrefixLen {
		return nil, value.ErrUnexpectedEOF
	}
	return &Record{site: site, samples: samples}, nil
}

// index computes the variable field boundaries once. The first call
// must complete before the Record is shared across goroutines.
func (r *Record) index() error {
	if r.indexed {
		return nil
	}

	b, err := indexSite(r.site)
	if err != nil {
		return err
	}

	r.bounds = b
	r.indexed = true

	return nil
}

// ChromosomeID returns the contig dictionary index.
func (r *Record) ChromosomeID() int {
	return int(int32(binary.LittleEndian.Uint32(r.site[chromosomeIDOffset:])))
}

// Position returns the 0-based start position.
func (r *Record) Position() int {
	return int(int32(binary.LittleEndian.Uint32(r.site[positionOffset:])))
}

// Span returns the length of the reference covered by the record.
func (r *Record) Span() int {
	return int(int32(binary.LittleEndian.Uint32(r.site[spanOffset:])))
}

// QualityScore returns the quality score, or nil when missing.
func (r *Record) QualityScore() (*float32, error) {
	n := math.Float32frombits(binary.LittleEndian.Uint32(r.site[qualityScoreOffset:]))

	switch value.FloatState(n) {
	case value.StateValue:
		return &n, nil
	case value.StateMissing:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: invalid quality score", ErrInvalidData)
	}
}

// InfoCount returns the number of INFO fields.
func (r *Record) InfoCount() int {
	return int(binary.LittleEndian.Uint16(r.site[infoCountOffset:]))
}

// AlleleCount returns the number of alleles, reference included.
func (r *Record) AlleleCount() int {
	return int(binary.LittleEndian.Uint16(r.site[alleleCountOffset:]))
}

// SampleCount returns the number of samples, unpacked from its 3-byte
// field.
func (r *Record) SampleCount() (int, error) {
	src := r.site[sampleCountOffset:]
	n := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
	return conv.Uint32ToInt(n)
}

// FormatKeyCount returns the number of FORMAT fields per sample.
func (r *Record) FormatKeyCount() int {
	return int(r.site[formatKeyCountOffset])
}

// IDs returns the raw identifiers field. It is empty when the record
// has no identifiers.
func (r *Record) IDs() ([]byte, error) {
	if err := r.index(); err != nil {
		return nil, err
	}
	return r.bounds.ids.slice(r.site), nil
}

// ReferenceBases returns the raw reference bases field.
func (r *Record) ReferenceBases() ([]byte, error) {
	if err := r.index(); err != nil {
		return nil, err
	}
	return r.bounds.referenceBases.slice(r.site), nil
}

// AlternateBases returns the alternate alleles. A nil entry is the
// absent allele marker.
func (r *Record) AlternateBases() ([]*string, error) {
	if err := r.index(); err != nil {
		return nil, err
	}

	n := r.AlleleCount() - 1
	if n < 1 {
		return nil, nil
	}

	data := r.site[r.bounds.referenceBases.end:]

	alts := make([]*string, 0, n)
	for range n {
		v, rest, err := value.Read(data)
		if err != nil {
			return nil, err
		}
		data = rest

		switch v.Kind {
		case value.KindNone:
			alts = append(alts, nil)
		case value.KindString:
			s := v.S
			alts = append(alts, &s)
		default:
			return nil, fmt.Errorf("%w: expected string allele, got %s", ErrInvalidData, v.Kind)
		}
	}

	return alts, nil
}

// Filters returns the filter dictionary indices, or nil when the
// filters field is the absent marker.
func (r *Record) Filters() ([]int, error) {
	data, err := r.filterBytes()
	if err != nil {
		return nil, err
	}

	v, _, err := value.Read(data)
	if err != nil {
		return nil, err
	}

	switch v.Kind {
	case value.KindNone:
		return nil, nil
	case value.KindInt8:
		if v.Empty {
			return []int{}, nil
		}
		return []int{int(v.I8)}, nil
	case value.KindInt16:
		if v.Empty {
			return []int{}, nil
		}
		return []int{int(v.I16)}, nil
	case value.KindInt32:
		if v.Empty {
			return []int{}, nil
		}
		return []int{int(v.I32)}, nil
	case value.KindInt8Array:
		indices := make([]int, len(v.A8))
		for i, n := range v.A8 {
			indices[i] = int(n)
		}
		return indices, nil
	case value.KindInt16Array:
		indices := make([]int, len(v.A16))
		for i, n := range v.A16 {
			indices[i] = int(n)
		}
		return indices, nil
	case value.KindInt32Array:
		indices := make([]int, len(v.A32))
		for i, n := range v.A32 {
			indices[i] = int(n)
		}
		return indices, nil
	default:
		return nil, fmt.Errorf("%w: expected integer filters, got %s", ErrInvalidData, v.Kind)
	}
}

// filterBytes returns the site buffer from the start of the filters
// field.
func (r *Record) filterBytes() ([]byte, error) {
	if err := r.index(); err != nil {
		return nil, err
	}

	data := r.site[r.bounds.referenceBases.end:]

	for range r.AlleleCount() - 1 {
		_, rest, err := value.Read(data)
		if err != nil {
			return nil, err
		}
		data = rest
	}

	return data, nil
}

// infoBytes returns the site buffer from the start of the INFO fields.
func (r *Record) infoBytes() ([]byte, error) {
	data, err := r.filterBytes()
	if err != nil {
		return nil, err
	}

	_, rest, err := value.Read(data)
	if err != nil {
		return nil, err
	}

	return rest, nil
}
