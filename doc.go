// Package bcf implements a codec for a compact binary representation
// of genomic variant-call records (BCF) layered on a textual VCF-style
// header.
//
// The leaf packages do the work: value implements the typed wire value
// codec, header the textual header parser and string dictionaries,
// record the binary record with its lazy boundary index and field
// decoder, and variant the resolved in-memory model. This package ties
// them together with a small batch surface.
//
// # Quick Start
//
//	h, maps, err := bcf.ParseHeader(rawHeader)
//	if err != nil {
//		return err
//	}
//
//	r, err := bcf.NewRecord(site, samples)
//	if err != nil {
//		return err
//	}
//
//	v, err := r.Variant(h, maps)
//
// Many records can be projected in parallel over the shared read-only
// dictionary set:
//
//	variants, err := bcf.ProjectBatch(ctx, records, h, maps,
//		bcf.WithConcurrency(8),
//		bcf.WithSkipInvalid(),
//	)
//
// Compression framing and file iteration are out of scope; callers
// supply the raw record buffers.
package bcf
