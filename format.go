// Package lexic converts numbers to and from text under precisely
// parameterized lexical grammars. A NumberFormat packs the grammar rules of a
// source language or data format into a single value; options bundles carry
// the per-call configuration (radix, rounding, special-value spellings); the
// parse and write entrypoints honor both and report failures with the exact
// byte offset of the violation.
package lexic

// NumberFormat is an immutable, packed description of a numeric grammar:
// the digit-separator character in the top 8 bits, grammar flags in the low
// 56. Two formats are equal iff their packed values are equal.
//
// The zero value is the permissive format: optional sign, optional fraction,
// optional exponent, no digit separator.
type NumberFormat uint64

const digitSeparatorShift = 56

func packFormat(flags Flag, separator byte) NumberFormat {
	return NumberFormat(flags&FlagMask) | NumberFormat(separator)<<digitSeparatorShift
}

// Flags returns the grammar flags of the format.
func (f NumberFormat) Flags() Flag { return Flag(f) & FlagMask }

// DigitSeparator returns the digit-separator character, or 0 if none is set.
func (f NumberFormat) DigitSeparator() byte { return byte(f >> digitSeparatorShift) }

// Permissive returns the format that accepts the widest range of inputs:
// digits with an optional sign, optional fraction, optional exponent, and no
// digit separator.
func Permissive() NumberFormat { return 0 }

// Standard returns the format a conventional systems-language float parser
// expects: permissive, except an exponent must be followed by digits.
func Standard() NumberFormat { return packFormat(RequiredExponentDigits, 0) }

// Ignore returns a format that is permissive on every structural rule but
// accepts, and skips, the given separator character anywhere digits may
// occur. It suits lenient parsing of human-formatted input such as
// "1_000_000". The separator must be a valid separator character.
func Ignore(separator byte) (NumberFormat, error) {
	return NewFormatBuilder().
		DigitSeparator(separator).
		InternalDigitSeparator(true).
		LeadingDigitSeparator(true).
		TrailingDigitSeparator(true).
		ConsecutiveDigitSeparator(true).
		SpecialDigitSeparator(true).
		Build()
}

// Accessor predicates, one per flag.

// RequiredIntegerDigits reports whether digits are required before the
// decimal point.
func (f NumberFormat) RequiredIntegerDigits() bool { return f.Flags().Has(RequiredIntegerDigits) }

// RequiredFractionDigits reports whether digits are required after the
// decimal point.
func (f NumberFormat) RequiredFractionDigits() bool { return f.Flags().Has(RequiredFractionDigits) }

// RequiredExponentDigits reports whether digits are required after the
// exponent character.
func (f NumberFormat) RequiredExponentDigits() bool { return f.Flags().Has(RequiredExponentDigits) }

// NoPositiveMantissaSign reports whether a '+' mantissa sign is forbidden.
func (f NumberFormat) NoPositiveMantissaSign() bool { return f.Flags().Has(NoPositiveMantissaSign) }

// RequiredMantissaSign reports whether an explicit mantissa sign is required.
func (f NumberFormat) RequiredMantissaSign() bool { return f.Flags().Has(RequiredMantissaSign) }

// NoExponentNotation reports whether exponent notation is forbidden.
func (f NumberFormat) NoExponentNotation() bool { return f.Flags().Has(NoExponentNotation) }

// NoPositiveExponentSign reports whether a '+' exponent sign is forbidden.
func (f NumberFormat) NoPositiveExponentSign() bool { return f.Flags().Has(NoPositiveExponentSign) }

// RequiredExponentSign reports whether an explicit exponent sign is required.
func (f NumberFormat) RequiredExponentSign() bool { return f.Flags().Has(RequiredExponentSign) }

// NoExponentWithoutFraction reports whether an exponent requires a preceding
// decimal point.
func (f NumberFormat) NoExponentWithoutFraction() bool {
	return f.Flags().Has(NoExponentWithoutFraction)
}

// NoSpecial reports whether special (non-finite) values are forbidden.
func (f NumberFormat) NoSpecial() bool { return f.Flags().Has(NoSpecial) }

// CaseSensitiveSpecial reports whether special-value spellings are
// case-sensitive.
func (f NumberFormat) CaseSensitiveSpecial() bool { return f.Flags().Has(CaseSensitiveSpecial) }

// NoIntegerLeadingZeros reports whether leading zeros are forbidden on
// integer values.
func (f NumberFormat) NoIntegerLeadingZeros() bool { return f.Flags().Has(NoIntegerLeadingZeros) }

// NoFloatLeadingZeros reports whether leading zeros are forbidden on float
// values.
func (f NumberFormat) NoFloatLeadingZeros() bool { return f.Flags().Has(NoFloatLeadingZeros) }

// RequiredExponentNotation reports whether an exponent must be present.
func (f NumberFormat) RequiredExponentNotation() bool {
	return f.Flags().Has(RequiredExponentNotation)
}

// IntegerInternalDigitSeparator reports whether separators may appear between
// integer digits.
func (f NumberFormat) IntegerInternalDigitSeparator() bool {
	return f.Flags().Has(IntegerInternalDigitSeparator)
}

// IntegerLeadingDigitSeparator reports whether a separator may precede the
// integer digits.
func (f NumberFormat) IntegerLeadingDigitSeparator() bool {
	return f.Flags().Has(IntegerLeadingDigitSeparator)
}

// IntegerTrailingDigitSeparator reports whether a separator may follow the
// integer digits.
func (f NumberFormat) IntegerTrailingDigitSeparator() bool {
	return f.Flags().Has(IntegerTrailingDigitSeparator)
}

// IntegerConsecutiveDigitSeparator reports whether separator runs may appear
// between integer digits.
func (f NumberFormat) IntegerConsecutiveDigitSeparator() bool {
	return f.Flags().Has(IntegerConsecutiveDigitSeparator)
}

// FractionInternalDigitSeparator reports whether separators may appear
// between fraction digits.
func (f NumberFormat) FractionInternalDigitSeparator() bool {
	return f.Flags().Has(FractionInternalDigitSeparator)
}

// FractionLeadingDigitSeparator reports whether a separator may precede the
// fraction digits.
func (f NumberFormat) FractionLeadingDigitSeparator() bool {
	return f.Flags().Has(FractionLeadingDigitSeparator)
}

// FractionTrailingDigitSeparator reports whether a separator may follow the
// fraction digits.
func (f NumberFormat) FractionTrailingDigitSeparator() bool {
	return f.Flags().Has(FractionTrailingDigitSeparator)
}

// FractionConsecutiveDigitSeparator reports whether separator runs may appear
// between fraction digits.
func (f NumberFormat) FractionConsecutiveDigitSeparator() bool {
	return f.Flags().Has(FractionConsecutiveDigitSeparator)
}

// ExponentInternalDigitSeparator reports whether separators may appear
// between exponent digits.
func (f NumberFormat) ExponentInternalDigitSeparator() bool {
	return f.Flags().Has(ExponentInternalDigitSeparator)
}

// ExponentLeadingDigitSeparator reports whether a separator may precede the
// exponent digits.
func (f NumberFormat) ExponentLeadingDigitSeparator() bool {
	return f.Flags().Has(ExponentLeadingDigitSeparator)
}

// ExponentTrailingDigitSeparator reports whether a separator may follow the
// exponent digits.
func (f NumberFormat) ExponentTrailingDigitSeparator() bool {
	return f.Flags().Has(ExponentTrailingDigitSeparator)
}

// ExponentConsecutiveDigitSeparator reports whether separator runs may appear
// between exponent digits.
func (f NumberFormat) ExponentConsecutiveDigitSeparator() bool {
	return f.Flags().Has(ExponentConsecutiveDigitSeparator)
}

// SpecialDigitSeparator reports whether separators may appear inside special
// values.
func (f NumberFormat) SpecialDigitSeparator() bool { return f.Flags().Has(SpecialDigitSeparator) }

// FormatBuilder accumulates grammar rules and produces a NumberFormat via
// Build. Setters store fields without validation; all checks happen at Build.
// A builder is a single-owner value and must not be shared across goroutines.
type FormatBuilder struct {
	flags     Flag
	separator byte
}

// NewFormatBuilder returns a builder with every flag false and no separator.
func NewFormatBuilder() *FormatBuilder { return &FormatBuilder{} }

func (b *FormatBuilder) set(flag Flag, on bool) *FormatBuilder {
	if on {
		b.flags |= flag
	} else {
		b.flags &^= flag
	}
	return b
}

// DigitSeparator sets the digit-separator character.
func (b *FormatBuilder) DigitSeparator(ch byte) *FormatBuilder {
	b.separator = ch
	return b
}

// RequiredIntegerDigits toggles requiring digits before the decimal point.
func (b *FormatBuilder) RequiredIntegerDigits(on bool) *FormatBuilder {
	return b.set(RequiredIntegerDigits, on)
}

// RequiredFractionDigits toggles requiring digits after the decimal point.
func (b *FormatBuilder) RequiredFractionDigits(on bool) *FormatBuilder {
	return b.set(RequiredFractionDigits, on)
}

// RequiredExponentDigits toggles requiring digits after the exponent
// character.
func (b *FormatBuilder) RequiredExponentDigits(on bool) *FormatBuilder {
	return b.set(RequiredExponentDigits, on)
}

// RequiredDigits toggles requiring digits around every control character.
func (b *FormatBuilder) RequiredDigits(on bool) *FormatBuilder {
	return b.set(RequiredDigits, on)
}

// NoPositiveMantissaSign toggles forbidding a '+' mantissa sign.
func (b *FormatBuilder) NoPositiveMantissaSign(on bool) *FormatBuilder {
	return b.set(NoPositiveMantissaSign, on)
}

// RequiredMantissaSign toggles requiring an explicit mantissa sign.
func (b *FormatBuilder) RequiredMantissaSign(on bool) *FormatBuilder {
	return b.set(RequiredMantissaSign, on)
}

// NoExponentNotation toggles forbidding exponent notation.
func (b *FormatBuilder) NoExponentNotation(on bool) *FormatBuilder {
	return b.set(NoExponentNotation, on)
}

// NoPositiveExponentSign toggles forbidding a '+' exponent sign.
func (b *FormatBuilder) NoPositiveExponentSign(on bool) *FormatBuilder {
	return b.set(NoPositiveExponentSign, on)
}

// RequiredExponentSign toggles requiring an explicit exponent sign.
func (b *FormatBuilder) RequiredExponentSign(on bool) *FormatBuilder {
	return b.set(RequiredExponentSign, on)
}

// NoExponentWithoutFraction toggles requiring a decimal point before any
// exponent.
func (b *FormatBuilder) NoExponentWithoutFraction(on bool) *FormatBuilder {
	return b.set(NoExponentWithoutFraction, on)
}

// NoSpecial toggles forbidding special (non-finite) values.
func (b *FormatBuilder) NoSpecial(on bool) *FormatBuilder {
	return b.set(NoSpecial, on)
}

// CaseSensitiveSpecial toggles case-sensitive special-value spellings.
func (b *FormatBuilder) CaseSensitiveSpecial(on bool) *FormatBuilder {
	return b.set(CaseSensitiveSpecial, on)
}

// NoIntegerLeadingZeros toggles forbidding leading zeros on integers.
func (b *FormatBuilder) NoIntegerLeadingZeros(on bool) *FormatBuilder {
	return b.set(NoIntegerLeadingZeros, on)
}

// NoFloatLeadingZeros toggles forbidding leading zeros on floats.
func (b *FormatBuilder) NoFloatLeadingZeros(on bool) *FormatBuilder {
	return b.set(NoFloatLeadingZeros, on)
}

// RequiredExponentNotation toggles requiring an exponent to be present.
func (b *FormatBuilder) RequiredExponentNotation(on bool) *FormatBuilder {
	return b.set(RequiredExponentNotation, on)
}

// IntegerInternalDigitSeparator toggles separators between integer digits.
func (b *FormatBuilder) IntegerInternalDigitSeparator(on bool) *FormatBuilder {
	return b.set(IntegerInternalDigitSeparator, on)
}

// IntegerLeadingDigitSeparator toggles a separator before integer digits.
func (b *FormatBuilder) IntegerLeadingDigitSeparator(on bool) *FormatBuilder {
	return b.set(IntegerLeadingDigitSeparator, on)
}

// IntegerTrailingDigitSeparator toggles a separator after integer digits.
func (b *FormatBuilder) IntegerTrailingDigitSeparator(on bool) *FormatBuilder {
	return b.set(IntegerTrailingDigitSeparator, on)
}

// IntegerConsecutiveDigitSeparator toggles separator runs between integer
// digits.
func (b *FormatBuilder) IntegerConsecutiveDigitSeparator(on bool) *FormatBuilder {
	return b.set(IntegerConsecutiveDigitSeparator, on)
}

// FractionInternalDigitSeparator toggles separators between fraction digits.
func (b *FormatBuilder) FractionInternalDigitSeparator(on bool) *FormatBuilder {
	return b.set(FractionInternalDigitSeparator, on)
}

// FractionLeadingDigitSeparator toggles a separator before fraction digits.
func (b *FormatBuilder) FractionLeadingDigitSeparator(on bool) *FormatBuilder {
	return b.set(FractionLeadingDigitSeparator, on)
}

// FractionTrailingDigitSeparator toggles a separator after fraction digits.
func (b *FormatBuilder) FractionTrailingDigitSeparator(on bool) *FormatBuilder {
	return b.set(FractionTrailingDigitSeparator, on)
}

// FractionConsecutiveDigitSeparator toggles separator runs between fraction
// digits.
func (b *FormatBuilder) FractionConsecutiveDigitSeparator(on bool) *FormatBuilder {
	return b.set(FractionConsecutiveDigitSeparator, on)
}

// ExponentInternalDigitSeparator toggles separators between exponent digits.
func (b *FormatBuilder) ExponentInternalDigitSeparator(on bool) *FormatBuilder {
	return b.set(ExponentInternalDigitSeparator, on)
}

// ExponentLeadingDigitSeparator toggles a separator before exponent digits.
func (b *FormatBuilder) ExponentLeadingDigitSeparator(on bool) *FormatBuilder {
	return b.set(ExponentLeadingDigitSeparator, on)
}

// ExponentTrailingDigitSeparator toggles a separator after exponent digits.
func (b *FormatBuilder) ExponentTrailingDigitSeparator(on bool) *FormatBuilder {
	return b.set(ExponentTrailingDigitSeparator, on)
}

// ExponentConsecutiveDigitSeparator toggles separator runs between exponent
// digits.
func (b *FormatBuilder) ExponentConsecutiveDigitSeparator(on bool) *FormatBuilder {
	return b.set(ExponentConsecutiveDigitSeparator, on)
}

// InternalDigitSeparator toggles internal separators in every segment.
func (b *FormatBuilder) InternalDigitSeparator(on bool) *FormatBuilder {
	return b.set(InternalDigitSeparator, on)
}

// LeadingDigitSeparator toggles leading separators in every segment.
func (b *FormatBuilder) LeadingDigitSeparator(on bool) *FormatBuilder {
	return b.set(LeadingDigitSeparator, on)
}

// TrailingDigitSeparator toggles trailing separators in every segment.
func (b *FormatBuilder) TrailingDigitSeparator(on bool) *FormatBuilder {
	return b.set(TrailingDigitSeparator, on)
}

// ConsecutiveDigitSeparator toggles separator runs in every segment.
func (b *FormatBuilder) ConsecutiveDigitSeparator(on bool) *FormatBuilder {
	return b.set(ConsecutiveDigitSeparator, on)
}

// SpecialDigitSeparator toggles separators inside special values.
func (b *FormatBuilder) SpecialDigitSeparator(on bool) *FormatBuilder {
	return b.set(SpecialDigitSeparator, on)
}

// Build validates the accumulated configuration and returns the packed
// format. It fails with ErrInvalidFormat when a separator placement flag is
// set without a separator character, or when the separator character itself
// is not usable as a separator. A separator with no placement flags is legal
// and inert.
func (b *FormatBuilder) Build() (NumberFormat, error) {
	if b.flags.HasAny(DigitSeparatorMask) && b.separator == 0 {
		return 0, ErrInvalidFormat
	}
	if b.separator != 0 && !validDigitSeparator(b.separator) {
		return 0, ErrInvalidFormat
	}
	return packFormat(b.flags, b.separator), nil
}

// mustFormat builds a preset at init time. Preset definitions are static, so
// a failure here is a programming error.
func mustFormat(b *FormatBuilder) NumberFormat {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
