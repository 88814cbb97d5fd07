package diag

import "fmt"

// Code identifies the kind of diagnostic. Codes are grouped into
// contiguous numeric bands by phase, matching the teacher's convention of
// disjoint bands per compiler phase.
type Code uint16

const (
	// UnknownCode is the zero value; never emitted deliberately.
	UnknownCode Code = 0

	// Ordering/IdList surface (spec.md §6): band 1000.
	OrderInfo           Code = 1000
	OrderDuplicateName  Code = 1001
	OrderMalformedEntry Code = 1002
	OrderGroupConflict  Code = 1003

	// Type-checker violation taxonomy (spec.md §4.5's "Violation
	// taxonomy"): band 9000, one code per named violation.
	CheckInfo                    Code = 9000
	CheckUndefinedIdentifier     Code = 9001
	CheckAmbiguousIdentifier     Code = 9002
	CheckMandatoryType           Code = 9003
	CheckBackCompatType          Code = 9004
	CheckWarningType             Code = 9005
	CheckOutOfWordWidth          Code = 9006
	CheckOutOfWordArrayWidth     Code = 9007
	CheckParamsCount             Code = 9008
	CheckParamsType              Code = 9009
	CheckParamsFamilyMix         Code = 9010
	CheckNonConstantExpression   Code = 9011
	CheckInvalidRange            Code = 9012
	CheckDuplicateConstants      Code = 9013
	CheckIncorrectWordWidth      Code = 9014
	CheckIncorrectWordArrayWidth Code = 9015
	CheckATimeNested             Code = 9016
	CheckATimeNumberRequired     Code = 9017
)

var codeDescription = map[Code]string{
	Code(0):                      "unknown diagnostic",
	OrderInfo:                    "ordering file note",
	OrderDuplicateName:           "duplicate name in ordering file",
	OrderMalformedEntry:          "malformed qualified name in ordering/id-list input",
	OrderGroupConflict:           "conflicting group reassignment",
	CheckInfo:                    "type-checker note",
	CheckUndefinedIdentifier:     "undefined identifier",
	CheckAmbiguousIdentifier:     "ambiguous identifier",
	CheckMandatoryType:           "operand has the wrong type",
	CheckBackCompatType:          "construct is only legal under backward-compatibility mode",
	CheckWarningType:             "suspicious but permitted construct",
	CheckOutOfWordWidth:          "bit-selection or shift exceeds word width",
	CheckOutOfWordArrayWidth:     "word-array access has a mismatched width",
	CheckParamsCount:             "wrong number of arguments",
	CheckParamsType:              "argument type does not convert to the formal's type",
	CheckParamsFamilyMix:         "function mixes bit-vector and real/int/bool operand families",
	CheckNonConstantExpression:   "a constant expression is required here",
	CheckInvalidRange:            "invalid range (lower bound greater than upper bound)",
	CheckDuplicateConstants:      "duplicate constant in enumeration",
	CheckIncorrectWordWidth:      "declared word width outside [1, MaxWordWidth]",
	CheckIncorrectWordArrayWidth: "declared WordArray width outside [1, MaxWordWidth]",
	CheckATimeNested:             "ATTIME expressions cannot nest",
	CheckATimeNumberRequired:     "ATTIME's second argument must be a numeric constant",
}

// ID renders the stable per-band identifier form, e.g. "CHK9001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 9000:
		return fmt.Sprintf("ORD%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("CHK%04d", ic)
	default:
		return "E0000"
	}
}

// Title returns the short human-readable description of the code.
func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[Code(0)]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Downgradable reports whether code is one of the two violations spec.md
// §7 permits demoting from fatal to warning under backward-compat mode.
func (c Code) Downgradable() bool {
	return c == CheckBackCompatType || c == CheckDuplicateConstants
}
