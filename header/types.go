package header

import (
	"fmt"
	"strconv"
)

// Type is the declared value type of an INFO or FORMAT field.
type Type uint8

const (
	// TypeInvalid represents an undeclared type.
	TypeInvalid Type = iota
	// TypeInteger is a 32-bit signed integer field.
	TypeInteger
	// TypeFlag is a presence-only field carrying no payload. Only valid
	// for INFO fields.
	TypeFlag
	// TypeFloat is a 32-bit float field.
	TypeFloat
	// TypeCharacter is a single-character field.
	TypeCharacter
	// TypeString is a string field.
	TypeString
)

// String returns the string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeFlag:
		return "Flag"
	case TypeFloat:
		return "Float"
	case TypeCharacter:
		return "Character"
	case TypeString:
		return "String"
	default:
		return "Invalid"
	}
}

// ParseInfoType parses an INFO field type.
func ParseInfoType(s string) (Type, error) {
	switch s {
	case "Integer":
		return TypeInteger, nil
	case "Flag":
		return TypeFlag, nil
	case "Float":
		return TypeFloat, nil
	case "Character":
		return TypeCharacter, nil
	case "String":
		return TypeString, nil
	default:
		return TypeInvalid, fmt.Errorf("invalid INFO type: %q", s)
	}
}

// ParseFormatType parses a FORMAT field type. Flag is not a valid FORMAT
// type.
func ParseFormatType(s string) (Type, error) {
	t, err := ParseInfoType(s)
	if err != nil {
		return TypeInvalid, fmt.Errorf("invalid FORMAT type: %q", s)
	}
	if t == TypeFlag {
		return TypeInvalid, fmt.Errorf("invalid FORMAT type: %q", s)
	}
	return t, nil
}

// NumberKind selects how the cardinality of a field is declared.
type NumberKind uint8

const (
	// NumberKindCount is an explicit non-negative element count.
	NumberKindCount NumberKind = iota
	// NumberKindAlternateAlleles is one value per alternate allele ("A").
	NumberKindAlternateAlleles
	// NumberKindAlleles is one value per allele, reference included ("R").
	NumberKindAlleles
	// NumberKindGenotypes is one value per possible genotype ("G").
	NumberKindGenotypes
	// NumberKindUnknown is an unspecified cardinality (".").
	NumberKindUnknown
)

// Number is the declared cardinality of an INFO or FORMAT field.
type Number struct {
	Kind NumberKind
	// Count is valid when Kind is NumberKindCount.
	Count int
}

// ParseNumber parses a Number attribute value.
func ParseNumber(s string) (Number, error) {
	switch s {
	case "A":
		return Number{Kind: NumberKindAlternateAlleles}, nil
	case "R":
		return Number{Kind: NumberKindAlleles}, nil
	case "G":
		return Number{Kind: NumberKindGenotypes}, nil
	case ".":
		return Number{Kind: NumberKindUnknown}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Number{}, fmt.Errorf("invalid number: %q", s)
	}

	return Number{Kind: NumberKindCount, Count: n}, nil
}

// String returns the textual form of the Number.
func (n Number) String() string {
	switch n.Kind {
	case NumberKindAlternateAlleles:
		return "A"
	case NumberKindAlleles:
		return "R"
	case NumberKindGenotypes:
		return "G"
	case NumberKindUnknown:
		return "."
	default:
		return fmt.Sprintf("%d", n.Count)
	}
}
