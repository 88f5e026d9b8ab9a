package lexic

// Flag is a single grammar rule (or a grouped mask of rules) a NumberFormat
// can enforce. Flags combine with bitwise OR and are tested with bitwise AND.
//
// Bit positions are stable and never renumbered: structural rules live in
// bits 0..13, digit-separator placement rules in bits 32..44, and the
// separator character itself is packed into the top 8 bits of a NumberFormat.
type Flag uint64

// Structural rules.
const (
	// RequiredIntegerDigits requires digits before the decimal point.
	RequiredIntegerDigits Flag = 1 << 0

	// RequiredFractionDigits requires digits after the decimal point.
	// Only checked when a decimal point is present.
	RequiredFractionDigits Flag = 1 << 1

	// RequiredExponentDigits requires digits after the exponent character.
	// Only checked when the exponent character is present.
	RequiredExponentDigits Flag = 1 << 2

	// NoPositiveMantissaSign forbids a leading '+' on the mantissa.
	NoPositiveMantissaSign Flag = 1 << 3

	// RequiredMantissaSign requires an explicit sign on the mantissa.
	RequiredMantissaSign Flag = 1 << 4

	// NoExponentNotation forbids exponent notation entirely.
	NoExponentNotation Flag = 1 << 5

	// NoPositiveExponentSign forbids a '+' on the exponent.
	NoPositiveExponentSign Flag = 1 << 6

	// RequiredExponentSign requires an explicit sign on the exponent.
	RequiredExponentSign Flag = 1 << 7

	// NoExponentWithoutFraction forbids an exponent unless a decimal point
	// precedes it. Digit requirements are separate flags.
	NoExponentWithoutFraction Flag = 1 << 8

	// NoSpecial forbids non-finite special values (NaN, infinities).
	NoSpecial Flag = 1 << 9

	// CaseSensitiveSpecial makes special-value spellings case-sensitive.
	CaseSensitiveSpecial Flag = 1 << 10

	// NoIntegerLeadingZeros forbids leading zeros on integer values.
	NoIntegerLeadingZeros Flag = 1 << 11

	// NoFloatLeadingZeros forbids leading zeros on float values.
	NoFloatLeadingZeros Flag = 1 << 12

	// RequiredExponentNotation requires an exponent to be present.
	RequiredExponentNotation Flag = 1 << 13
)

// Digit-separator placement rules, per segment.
const (
	// IntegerInternalDigitSeparator allows separators between integer digits.
	IntegerInternalDigitSeparator Flag = 1 << 32

	// IntegerLeadingDigitSeparator allows a separator before the first
	// integer digit.
	IntegerLeadingDigitSeparator Flag = 1 << 33

	// IntegerTrailingDigitSeparator allows a separator after the last
	// integer digit.
	IntegerTrailingDigitSeparator Flag = 1 << 34

	// IntegerConsecutiveDigitSeparator allows runs of separators between
	// integer digits.
	IntegerConsecutiveDigitSeparator Flag = 1 << 35

	// FractionInternalDigitSeparator allows separators between fraction digits.
	FractionInternalDigitSeparator Flag = 1 << 36

	// FractionLeadingDigitSeparator allows a separator before the first
	// fraction digit.
	FractionLeadingDigitSeparator Flag = 1 << 37

	// FractionTrailingDigitSeparator allows a separator after the last
	// fraction digit.
	FractionTrailingDigitSeparator Flag = 1 << 38

	// FractionConsecutiveDigitSeparator allows runs of separators between
	// fraction digits.
	FractionConsecutiveDigitSeparator Flag = 1 << 39

	// ExponentInternalDigitSeparator allows separators between exponent digits.
	ExponentInternalDigitSeparator Flag = 1 << 40

	// ExponentLeadingDigitSeparator allows a separator before the first
	// exponent digit.
	ExponentLeadingDigitSeparator Flag = 1 << 41

	// ExponentTrailingDigitSeparator allows a separator after the last
	// exponent digit.
	ExponentTrailingDigitSeparator Flag = 1 << 42

	// ExponentConsecutiveDigitSeparator allows runs of separators between
	// exponent digits.
	ExponentConsecutiveDigitSeparator Flag = 1 << 43

	// SpecialDigitSeparator allows separators anywhere in special values.
	SpecialDigitSeparator Flag = 1 << 44
)

// Grouped masks. These are unions of their member flags and must be kept in
// sync when a flag is added.
const (
	// RequiredDigits requires digits around every control character.
	RequiredDigits = RequiredIntegerDigits | RequiredFractionDigits | RequiredExponentDigits

	// InternalDigitSeparator allows separators between digits in any segment.
	InternalDigitSeparator = IntegerInternalDigitSeparator |
		FractionInternalDigitSeparator |
		ExponentInternalDigitSeparator

	// LeadingDigitSeparator allows a separator before the digits of any segment.
	LeadingDigitSeparator = IntegerLeadingDigitSeparator |
		FractionLeadingDigitSeparator |
		ExponentLeadingDigitSeparator

	// TrailingDigitSeparator allows a separator after the digits of any segment.
	TrailingDigitSeparator = IntegerTrailingDigitSeparator |
		FractionTrailingDigitSeparator |
		ExponentTrailingDigitSeparator

	// ConsecutiveDigitSeparator allows separator runs in any segment.
	ConsecutiveDigitSeparator = IntegerConsecutiveDigitSeparator |
		FractionConsecutiveDigitSeparator |
		ExponentConsecutiveDigitSeparator

	// DigitSeparatorMask covers every separator placement flag.
	DigitSeparatorMask = InternalDigitSeparator |
		LeadingDigitSeparator |
		TrailingDigitSeparator |
		ConsecutiveDigitSeparator |
		SpecialDigitSeparator

	// StructuralMask covers every non-separator rule.
	StructuralMask = RequiredDigits |
		NoPositiveMantissaSign |
		RequiredMantissaSign |
		NoExponentNotation |
		NoPositiveExponentSign |
		RequiredExponentSign |
		NoExponentWithoutFraction |
		NoSpecial |
		CaseSensitiveSpecial |
		NoIntegerLeadingZeros |
		NoFloatLeadingZeros |
		RequiredExponentNotation

	// FlagMask covers every defined flag. Must stay within the low 56 bits;
	// the top 8 bits of a NumberFormat hold the separator character.
	FlagMask = StructuralMask | DigitSeparatorMask
)

// Has reports whether every bit of mask is set in f.
func (f Flag) Has(mask Flag) bool { return f&mask == mask }

// HasAny reports whether any bit of mask is set in f.
func (f Flag) HasAny(mask Flag) bool { return f&mask != 0 }

// validDigitSeparator reports whether ch may serve as a digit separator.
// Digits, signs, and non-ASCII bytes would be ambiguous during scanning.
// Letters are rejected as well so the separator can never collide with a
// digit in radixes up to 36 or with an exponent character.
func validDigitSeparator(ch byte) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return false
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return false
	case ch == '+' || ch == '-':
		return false
	}
	return ch < 0x80 && ch != 0
}
