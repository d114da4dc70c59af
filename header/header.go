package header

// Header is a parsed VCF header: the dictionary of field and contig
// declarations that record decoding resolves against.
//
// A Header is built once by a Parser and treated as immutable afterward;
// it is safe to share across goroutines during decoding.
type Header struct {
	FileFormat FileFormat

	Infos              Infos
	Filters            Filters
	Formats            Formats
	Contigs            Contigs
	AlternativeAlleles AlternativeAlleles

	// SampleNames holds the sample columns of the #CHROM line, in file
	// order. Names are unique.
	SampleNames []string

	// Others holds unrecognized ##KEY records in file order.
	Others []Record
}

// Parse parses a complete textual header.
func Parse(s string) (*Header, error) {
	return NewParser().Parse(s)
}
