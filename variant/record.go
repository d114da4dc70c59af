package variant

// Record is a fully resolved, human-oriented variant call: every
// dictionary index replaced by its header-defined name and every field
// decoded against its declared type.
type Record struct {
	// Chromosome is the resolved contig name.
	Chromosome string
	// Position is 1-based.
	Position int
	// IDs holds the record identifiers, or nil when absent.
	IDs []string
	// ReferenceBases is never empty.
	ReferenceBases string
	// AlternateBases holds one entry per alternate allele; an absent
	// allele is the literal ".".
	AlternateBases []string
	// QualityScore is nil when missing.
	QualityScore *float32
	// Filters holds the resolved filter names, or nil when absent.
	Filters []string
	// Info holds the decoded INFO fields, or nil when the record has
	// none.
	Info *Info
	// Samples holds the decoded FORMAT fields, or nil when the record
	// carries no genotype data.
	Samples *Samples
}
