package header

import (
	"fmt"
	"strconv"
	"strings"
)

const fileFormatPrefix = "VCFv"

// FileFormat is a VCF file format version.
type FileFormat struct {
	Major int
	Minor int
}

// DefaultFileFormat returns the file format assumed when none is given.
func DefaultFileFormat() FileFormat {
	return FileFormat{Major: 4, Minor: 4}
}

// ParseFileFormat parses a file format value, e.g. "VCFv4.3".
func ParseFileFormat(s string) (FileFormat, error) {
	raw, ok := strings.CutPrefix(s, fileFormatPrefix)
	if !ok {
		return FileFormat{}, fmt.Errorf("invalid file format: missing %q prefix: %q", fileFormatPrefix, s)
	}

	major, minor, ok := strings.Cut(raw, ".")
	if !ok {
		return FileFormat{}, fmt.Errorf("invalid file format: missing version delimiter: %q", s)
	}

	maj, err := strconv.Atoi(major)
	if err != nil {
		return FileFormat{}, fmt.Errorf("invalid file format major version: %w", err)
	}

	min, err := strconv.Atoi(minor)
	if err != nil {
		return FileFormat{}, fmt.Errorf("invalid file format minor version: %w", err)
	}

	return FileFormat{Major: maj, Minor: min}, nil
}

// String returns the textual form of the file format.
func (f FileFormat) String() string {
	return fmt.Sprintf("%s%d.%d", fileFormatPrefix, f.Major, f.Minor)
}
