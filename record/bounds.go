package record

import (
	"fmt"

	"github.com/hupe1980/bcf/value"
)

// Fixed site prefix layout, little-endian.
const (
	chromosomeIDOffset   = 0
	positionOffset       = 4
	spanOffset           = 8
	qualityScoreOffset   = 12
	infoCountOffset      = 16
	alleleCountOffset    = 18
	sampleCountOffset    = 20
	formatKeyCountOffset = 23

	sitePrefixLen = 24
)

// span is a half-open byte range, absolute into the site buffer.
type span struct {
	start int
	end   int
}

func (s span) slice(buf []byte) []byte { return buf[s.start:s.end] }

// bounds locates the variable-length leading fields of a site buffer.
type bounds struct {
	ids            span
	referenceBases span
}

// indexSite scans the variable region after the fixed prefix and
// returns the boundaries of the identifiers and reference bases
// fields. Both must be string-kind typed values.
func indexSite(buf []byte) (bounds, error) {
	if len(buf) < sitePrefixLen {
		return bounds{}, value.ErrUnexpectedEOF
	}

	var b bounds
	var err error

	i := sitePrefixLen
	if b.ids, i, err = consumeString(buf, i); err != nil {
		return bounds{}, err
	}
	if b.referenceBases, _, err = consumeString(buf, i); err != nil {
		return bounds{}, err
	}

	return b, nil
}

// consumeString reads one string-kind typed value header at offset i
// and returns the absolute range of its payload plus the offset of the
// following field.
func consumeString(buf []byte, i int) (span, int, error) {
	typ, n, rest, err := value.ReadTag(buf[i:])
	if err != nil {
		return span{}, 0, err
	}

	if typ != value.TypeString {
		return span{}, 0, fmt.Errorf("%w: expected string field, got %s", ErrInvalidData, typ)
	}

	start := i + (len(buf) - i - len(rest))
	end := start + n
	if end > len(buf) {
		return span{}, 0, value.ErrUnexpectedEOF
	}

	return span{start: start, end: end}, end, nil
}
