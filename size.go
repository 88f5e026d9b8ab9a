package lexic

// Maximum formatted sizes, in bytes, per numeric type. Callers of the
// WriteTo entrypoints must supply a destination buffer at least this large:
// the Decimal constants cover radix-10 output, the plain constants cover any
// radix in 2..36 (low radixes need more digits; floats may add a sign, radix
// point, and exponent). Undersized buffers are a caller defect; the writers
// do not re-check this precondition.
//
// The decimal integer values are the digit counts of each type's extreme
// value plus a sign byte where applicable. The any-radix integer values are
// the bit width plus a sign byte. The float values bound the writers'
// positional/scientific output (see write_float.go for the cutover that
// enforces the bound).
const (
	FormattedSizeInt8Decimal    = 4
	FormattedSizeInt16Decimal   = 6
	FormattedSizeInt32Decimal   = 11
	FormattedSizeInt64Decimal   = 20
	FormattedSizeIntDecimal     = FormattedSizeInt64Decimal
	FormattedSizeUint8Decimal   = 3
	FormattedSizeUint16Decimal  = 5
	FormattedSizeUint32Decimal  = 10
	FormattedSizeUint64Decimal  = 20
	FormattedSizeUintDecimal    = FormattedSizeUint64Decimal
	FormattedSizeFloat32Decimal = 16
	FormattedSizeFloat64Decimal = 24

	FormattedSizeInt8    = 9
	FormattedSizeInt16   = 17
	FormattedSizeInt32   = 33
	FormattedSizeInt64   = 65
	FormattedSizeInt     = FormattedSizeInt64
	FormattedSizeUint8   = 8
	FormattedSizeUint16  = 16
	FormattedSizeUint32  = 32
	FormattedSizeUint64  = 64
	FormattedSizeUint    = FormattedSizeUint64
	FormattedSizeFloat32 = 64
	FormattedSizeFloat64 = 128
)
