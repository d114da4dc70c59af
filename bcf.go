package bcf

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bcf/header"
	"github.com/hupe1980/bcf/record"
	"github.com/hupe1980/bcf/variant"
)

// Record is a binary variant-call record.
type Record = record.Record

// Header is a parsed textual header.
type Header = header.Header

// StringMaps is the dictionary set built from a header.
type StringMaps = header.StringMaps

// Variant is a fully resolved variant call.
type Variant = variant.Record

// NewRecord wraps a site buffer and a samples buffer as a Record.
func NewRecord(site, samples []byte) (*Record, error) {
	return record.New(site, samples)
}

// ParseHeader parses a textual header and builds its dictionary set in
// one pass.
func ParseHeader(s string) (*Header, *StringMaps, error) {
	h, err := header.Parse(s)
	if err != nil {
		return nil, nil, err
	}

	maps, err := header.StringMapsFromHeader(h)
	if err != nil {
		return nil, nil, err
	}

	return h, maps, nil
}

// ProjectBatch projects records into resolved variants concurrently.
// The dictionary set is shared read-only across workers. Results are
// aligned with the input.
//
// The first projection error aborts the batch unless WithSkipInvalid
// is set, in which case failed positions are nil.
func ProjectBatch(ctx context.Context, records []*Record, h *Header, maps *StringMaps, optFns ...Option) ([]*Variant, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	out := make([]*Variant, len(records))

	var failed atomic.Int64
	batchStart := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)

	for i, r := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			v, err := r.Variant(h, maps)
			opts.metrics.RecordProjection(time.Since(start), err)

			if err != nil {
				failed.Add(1)
				if opts.skipInvalid {
					opts.logger.WithRecordIndex(i).Warn("skipping invalid record", "error", err)
					return nil
				}
				return &InvalidRecordError{Index: i, cause: err}
			}

			out[i] = v

			return nil
		})
	}

	err := g.Wait()
	opts.metrics.RecordBatch(len(records), int(failed.Load()), time.Since(batchStart))
	if err != nil {
		return nil, err
	}

	return out, nil
}
