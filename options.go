package lexic

import "fmt"

// Default spellings for special values. Options builders deep-copy these (and
// any caller-supplied replacements), so an options value never aliases memory
// it does not own.
var (
	defaultNaN      = []byte("NaN")
	defaultInf      = []byte("inf")
	defaultInfinity = []byte("infinity")
)

const (
	defaultRadix        = 10
	defaultExponentChar = 'e'
)

func validRadix(radix int) bool { return radix >= 2 && radix <= 36 }

// validExponentChar rejects exponent characters that double as digits in the
// given radix: 'e' is a digit once the radix passes 14.
func validExponentChar(ch byte, radix int) bool {
	return ch != 0 && ch < 0x80 && !isRadixDigit(ch, radix)
}

// validSeparatorFor rejects a format whose separator collides with a digit in
// the radix, or with the exponent character (exponentChar 0 skips that check).
func validSeparatorFor(format NumberFormat, radix int, exponentChar byte) bool {
	sep := format.DigitSeparator()
	if sep == 0 {
		return true
	}
	if isRadixDigit(sep, radix) {
		return false
	}
	return exponentChar == 0 || sep != exponentChar
}

func validNaN(s []byte) bool {
	return len(s) > 0 && (s[0] == 'n' || s[0] == 'N')
}

func validInf(s []byte) bool {
	return len(s) > 0 && (s[0] == 'i' || s[0] == 'I')
}

func validInfinity(infinity, inf []byte) bool {
	return validInf(infinity) && len(infinity) >= len(inf)
}

func copyBytes(s []byte) []byte {
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// ParseIntegerOptions configures integer parsing. Values are immutable once
// built and safe for concurrent use.
type ParseIntegerOptions struct {
	radix  int
	format NumberFormat
}

// Radix returns the parse radix, 2..36.
func (o *ParseIntegerOptions) Radix() int { return o.radix }

// Format returns the number format.
func (o *ParseIntegerOptions) Format() NumberFormat { return o.format }

// ParseIntegerOptionsBuilder accumulates fields for a ParseIntegerOptions.
type ParseIntegerOptionsBuilder struct {
	radix  int
	format NumberFormat
}

// NewParseIntegerOptionsBuilder returns a builder with the defaults: radix
// 10 and the permissive format.
func NewParseIntegerOptionsBuilder() *ParseIntegerOptionsBuilder {
	return &ParseIntegerOptionsBuilder{radix: defaultRadix, format: Permissive()}
}

// Radix sets the parse radix.
func (b *ParseIntegerOptionsBuilder) Radix(radix int) *ParseIntegerOptionsBuilder {
	b.radix = radix
	return b
}

// Format sets the number format.
func (b *ParseIntegerOptionsBuilder) Format(format NumberFormat) *ParseIntegerOptionsBuilder {
	b.format = format
	return b
}

// Build validates the configuration and returns the immutable options value.
func (b *ParseIntegerOptionsBuilder) Build() (*ParseIntegerOptions, error) {
	if !validRadix(b.radix) {
		return nil, fmt.Errorf("%w: radix %d out of range [2, 36]", ErrInvalidOptions, b.radix)
	}
	if !validSeparatorFor(b.format, b.radix, 0) {
		return nil, fmt.Errorf("%w: digit separator %q is a digit in radix %d",
			ErrInvalidOptions, b.format.DigitSeparator(), b.radix)
	}
	return &ParseIntegerOptions{radix: b.radix, format: b.format}, nil
}

func mustParseIntegerOptions(b *ParseIntegerOptionsBuilder) *ParseIntegerOptions {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// BinaryParseIntegerOptions returns options for the default binary format.
func BinaryParseIntegerOptions() *ParseIntegerOptions {
	return mustParseIntegerOptions(NewParseIntegerOptionsBuilder().Radix(2))
}

// DecimalParseIntegerOptions returns options for the default decimal format.
func DecimalParseIntegerOptions() *ParseIntegerOptions {
	return mustParseIntegerOptions(NewParseIntegerOptionsBuilder())
}

// HexadecimalParseIntegerOptions returns options for the default hexadecimal
// format.
func HexadecimalParseIntegerOptions() *ParseIntegerOptions {
	return mustParseIntegerOptions(NewParseIntegerOptionsBuilder().Radix(16))
}

// ParseFloatOptions configures float parsing. Values are immutable once
// built and safe for concurrent use. The NaN, Inf, and Infinity spellings
// are owned by the options value; both the short Inf alias and the long
// Infinity spelling are recognized, and the longer Infinity spelling is
// always tried first, so it wins whenever both could match.
type ParseFloatOptions struct {
	lossy        bool
	exponentChar byte
	radix        int
	format       NumberFormat
	rounding     RoundingKind
	nan          []byte
	inf          []byte
	infinity     []byte
}

// Lossy reports whether the exact-rounding fallback is skipped.
func (o *ParseFloatOptions) Lossy() bool { return o.lossy }

// ExponentChar returns the exponent marker character.
func (o *ParseFloatOptions) ExponentChar() byte { return o.exponentChar }

// Radix returns the parse radix, 2..36.
func (o *ParseFloatOptions) Radix() int { return o.radix }

// Format returns the number format.
func (o *ParseFloatOptions) Format() NumberFormat { return o.format }

// Rounding returns the rounding mode applied to parsed values.
func (o *ParseFloatOptions) Rounding() RoundingKind { return o.rounding }

// NaNString returns the spelling recognized as NaN. Callers must not mutate
// the returned slice.
func (o *ParseFloatOptions) NaNString() []byte { return o.nan }

// InfString returns the short infinity alias. Callers must not mutate the
// returned slice.
func (o *ParseFloatOptions) InfString() []byte { return o.inf }

// InfinityString returns the long infinity spelling. Callers must not mutate
// the returned slice.
func (o *ParseFloatOptions) InfinityString() []byte { return o.infinity }

// ParseFloatOptionsBuilder accumulates fields for a ParseFloatOptions.
type ParseFloatOptionsBuilder struct {
	lossy        bool
	exponentChar byte
	radix        int
	format       NumberFormat
	rounding     RoundingKind
	nan          []byte
	inf          []byte
	infinity     []byte
}

// NewParseFloatOptionsBuilder returns a builder with the defaults: radix 10,
// exponent 'e', permissive format, nearest-even rounding, and the standard
// NaN/inf/infinity spellings.
func NewParseFloatOptionsBuilder() *ParseFloatOptionsBuilder {
	return &ParseFloatOptionsBuilder{
		exponentChar: defaultExponentChar,
		radix:        defaultRadix,
		format:       Permissive(),
		rounding:     NearestTieEven,
		nan:          defaultNaN,
		inf:          defaultInf,
		infinity:     defaultInfinity,
	}
}

// Lossy sets whether to skip the exact-rounding fallback for speed.
func (b *ParseFloatOptionsBuilder) Lossy(lossy bool) *ParseFloatOptionsBuilder {
	b.lossy = lossy
	return b
}

// ExponentChar sets the exponent marker character.
func (b *ParseFloatOptionsBuilder) ExponentChar(ch byte) *ParseFloatOptionsBuilder {
	b.exponentChar = ch
	return b
}

// Radix sets the parse radix.
func (b *ParseFloatOptionsBuilder) Radix(radix int) *ParseFloatOptionsBuilder {
	b.radix = radix
	return b
}

// Format sets the number format.
func (b *ParseFloatOptionsBuilder) Format(format NumberFormat) *ParseFloatOptionsBuilder {
	b.format = format
	return b
}

// Rounding sets the rounding mode for parsed values.
func (b *ParseFloatOptionsBuilder) Rounding(kind RoundingKind) *ParseFloatOptionsBuilder {
	b.rounding = kind
	return b
}

// NaNString sets the spelling recognized and emitted for NaN.
func (b *ParseFloatOptionsBuilder) NaNString(s []byte) *ParseFloatOptionsBuilder {
	b.nan = s
	return b
}

// InfString sets the short infinity alias.
func (b *ParseFloatOptionsBuilder) InfString(s []byte) *ParseFloatOptionsBuilder {
	b.inf = s
	return b
}

// InfinityString sets the long infinity spelling.
func (b *ParseFloatOptionsBuilder) InfinityString(s []byte) *ParseFloatOptionsBuilder {
	b.infinity = s
	return b
}

// Build validates the configuration and returns the immutable options value.
// The special-value spellings are copied, so the caller's buffers may be
// reused afterwards.
func (b *ParseFloatOptionsBuilder) Build() (*ParseFloatOptions, error) {
	if !validRadix(b.radix) {
		return nil, fmt.Errorf("%w: radix %d out of range [2, 36]", ErrInvalidOptions, b.radix)
	}
	if !validExponentChar(b.exponentChar, b.radix) {
		return nil, fmt.Errorf("%w: exponent char %q is a digit in radix %d",
			ErrInvalidOptions, b.exponentChar, b.radix)
	}
	if !validSeparatorFor(b.format, b.radix, b.exponentChar) {
		return nil, fmt.Errorf("%w: digit separator %q conflicts with radix %d or exponent char",
			ErrInvalidOptions, b.format.DigitSeparator(), b.radix)
	}
	if !validNaN(b.nan) {
		return nil, fmt.Errorf("%w: NaN spelling must start with 'n' or 'N'", ErrInvalidOptions)
	}
	if !validInf(b.inf) {
		return nil, fmt.Errorf("%w: Inf spelling must start with 'i' or 'I'", ErrInvalidOptions)
	}
	if !validInfinity(b.infinity, b.inf) {
		return nil, fmt.Errorf("%w: Infinity spelling must start with 'i' or 'I' and be at least as long as Inf",
			ErrInvalidOptions)
	}
	return &ParseFloatOptions{
		lossy:        b.lossy,
		exponentChar: b.exponentChar,
		radix:        b.radix,
		format:       b.format,
		rounding:     b.rounding,
		nan:          copyBytes(b.nan),
		inf:          copyBytes(b.inf),
		infinity:     copyBytes(b.infinity),
	}, nil
}

func mustParseFloatOptions(b *ParseFloatOptionsBuilder) *ParseFloatOptions {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// BinaryParseFloatOptions returns options for the default binary format.
func BinaryParseFloatOptions() *ParseFloatOptions {
	return mustParseFloatOptions(NewParseFloatOptionsBuilder().Radix(2))
}

// DecimalParseFloatOptions returns options for the default decimal format.
func DecimalParseFloatOptions() *ParseFloatOptions {
	return mustParseFloatOptions(NewParseFloatOptionsBuilder())
}

// HexadecimalParseFloatOptions returns options for the default hexadecimal
// format, with 'p' as the exponent marker.
func HexadecimalParseFloatOptions() *ParseFloatOptions {
	return mustParseFloatOptions(NewParseFloatOptionsBuilder().Radix(16).ExponentChar('p'))
}

// WriteIntegerOptions configures integer formatting. Values are immutable
// once built and safe for concurrent use.
type WriteIntegerOptions struct {
	radix int
}

// Radix returns the output radix, 2..36.
func (o *WriteIntegerOptions) Radix() int { return o.radix }

// WriteIntegerOptionsBuilder accumulates fields for a WriteIntegerOptions.
type WriteIntegerOptionsBuilder struct {
	radix int
}

// NewWriteIntegerOptionsBuilder returns a builder with the default radix 10.
func NewWriteIntegerOptionsBuilder() *WriteIntegerOptionsBuilder {
	return &WriteIntegerOptionsBuilder{radix: defaultRadix}
}

// Radix sets the output radix.
func (b *WriteIntegerOptionsBuilder) Radix(radix int) *WriteIntegerOptionsBuilder {
	b.radix = radix
	return b
}

// Build validates the configuration and returns the immutable options value.
func (b *WriteIntegerOptionsBuilder) Build() (*WriteIntegerOptions, error) {
	if !validRadix(b.radix) {
		return nil, fmt.Errorf("%w: radix %d out of range [2, 36]", ErrInvalidOptions, b.radix)
	}
	return &WriteIntegerOptions{radix: b.radix}, nil
}

func mustWriteIntegerOptions(b *WriteIntegerOptionsBuilder) *WriteIntegerOptions {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// BinaryWriteIntegerOptions returns options for the default binary format.
func BinaryWriteIntegerOptions() *WriteIntegerOptions {
	return mustWriteIntegerOptions(NewWriteIntegerOptionsBuilder().Radix(2))
}

// DecimalWriteIntegerOptions returns options for the default decimal format.
func DecimalWriteIntegerOptions() *WriteIntegerOptions {
	return mustWriteIntegerOptions(NewWriteIntegerOptionsBuilder())
}

// HexadecimalWriteIntegerOptions returns options for the default hexadecimal
// format.
func HexadecimalWriteIntegerOptions() *WriteIntegerOptions {
	return mustWriteIntegerOptions(NewWriteIntegerOptionsBuilder().Radix(16))
}

// WriteFloatOptions configures float formatting. Values are immutable once
// built and safe for concurrent use. The NaN and Inf spellings are owned by
// the options value.
type WriteFloatOptions struct {
	exponentChar byte
	radix        int
	trimFloats   bool
	nan          []byte
	inf          []byte
}

// ExponentChar returns the exponent marker character.
func (o *WriteFloatOptions) ExponentChar() byte { return o.exponentChar }

// Radix returns the output radix, 2..36.
func (o *WriteFloatOptions) Radix() int { return o.radix }

// TrimFloats reports whether integral floats are written without a trailing
// ".0".
func (o *WriteFloatOptions) TrimFloats() bool { return o.trimFloats }

// NaNString returns the spelling emitted for NaN. Callers must not mutate
// the returned slice.
func (o *WriteFloatOptions) NaNString() []byte { return o.nan }

// InfString returns the spelling emitted for infinity. Callers must not
// mutate the returned slice.
func (o *WriteFloatOptions) InfString() []byte { return o.inf }

// WriteFloatOptionsBuilder accumulates fields for a WriteFloatOptions.
type WriteFloatOptionsBuilder struct {
	exponentChar byte
	radix        int
	trimFloats   bool
	nan          []byte
	inf          []byte
}

// NewWriteFloatOptionsBuilder returns a builder with the defaults: radix 10,
// exponent 'e', trim off, and the standard NaN/inf spellings.
func NewWriteFloatOptionsBuilder() *WriteFloatOptionsBuilder {
	return &WriteFloatOptionsBuilder{
		exponentChar: defaultExponentChar,
		radix:        defaultRadix,
		nan:          defaultNaN,
		inf:          defaultInf,
	}
}

// ExponentChar sets the exponent marker character.
func (b *WriteFloatOptionsBuilder) ExponentChar(ch byte) *WriteFloatOptionsBuilder {
	b.exponentChar = ch
	return b
}

// Radix sets the output radix.
func (b *WriteFloatOptionsBuilder) Radix(radix int) *WriteFloatOptionsBuilder {
	b.radix = radix
	return b
}

// TrimFloats sets whether integral floats drop the trailing ".0".
func (b *WriteFloatOptionsBuilder) TrimFloats(trim bool) *WriteFloatOptionsBuilder {
	b.trimFloats = trim
	return b
}

// NaNString sets the spelling emitted for NaN.
func (b *WriteFloatOptionsBuilder) NaNString(s []byte) *WriteFloatOptionsBuilder {
	b.nan = s
	return b
}

// InfString sets the spelling emitted for infinity.
func (b *WriteFloatOptionsBuilder) InfString(s []byte) *WriteFloatOptionsBuilder {
	b.inf = s
	return b
}

// Build validates the configuration and returns the immutable options value.
// The special-value spellings are copied, so the caller's buffers may be
// reused afterwards.
func (b *WriteFloatOptionsBuilder) Build() (*WriteFloatOptions, error) {
	if !validRadix(b.radix) {
		return nil, fmt.Errorf("%w: radix %d out of range [2, 36]", ErrInvalidOptions, b.radix)
	}
	if !validExponentChar(b.exponentChar, b.radix) {
		return nil, fmt.Errorf("%w: exponent char %q is a digit in radix %d",
			ErrInvalidOptions, b.exponentChar, b.radix)
	}
	if !validNaN(b.nan) {
		return nil, fmt.Errorf("%w: NaN spelling must start with 'n' or 'N'", ErrInvalidOptions)
	}
	if !validInf(b.inf) {
		return nil, fmt.Errorf("%w: Inf spelling must start with 'i' or 'I'", ErrInvalidOptions)
	}
	return &WriteFloatOptions{
		exponentChar: b.exponentChar,
		radix:        b.radix,
		trimFloats:   b.trimFloats,
		nan:          copyBytes(b.nan),
		inf:          copyBytes(b.inf),
	}, nil
}

func mustWriteFloatOptions(b *WriteFloatOptionsBuilder) *WriteFloatOptions {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// BinaryWriteFloatOptions returns options for the default binary format.
func BinaryWriteFloatOptions() *WriteFloatOptions {
	return mustWriteFloatOptions(NewWriteFloatOptionsBuilder().Radix(2))
}

// DecimalWriteFloatOptions returns options for the default decimal format.
func DecimalWriteFloatOptions() *WriteFloatOptions {
	return mustWriteFloatOptions(NewWriteFloatOptionsBuilder())
}

// HexadecimalWriteFloatOptions returns options for the default hexadecimal
// format, with 'p' as the exponent marker.
func HexadecimalWriteFloatOptions() *WriteFloatOptions {
	return mustWriteFloatOptions(NewWriteFloatOptionsBuilder().Radix(16).ExponentChar('p'))
}
