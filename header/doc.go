// Package header parses textual VCF headers and builds the indexed
// string dictionaries that BCF record decoding resolves against.
//
// A header is line-oriented: a mandatory ##fileformat first line,
// structured ##KEY=<ID=...,...> records, and a terminal #CHROM column
// header carrying the sample names. Parser consumes lines incrementally
// and enforces this shape.
//
// StringMaps is the dictionary set of one header: small integer indices
// to FILTER/INFO/FORMAT identifiers in one map, contig names in the
// other. Entries with an explicit IDX attribute are bound exactly where
// declared; a hint that contradicts an earlier binding is a fatal
// PositionMismatchError, since renumbering would corrupt every index
// reference in the record body.
package header
