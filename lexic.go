package lexic

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Shared defaults for the no-options entrypoints: decimal radix, permissive
// format, standard special-value spellings.
var (
	defaultParseIntegerOptions = DecimalParseIntegerOptions()
	defaultParseFloatOptions   = DecimalParseFloatOptions()
	defaultWriteIntegerOptions = DecimalWriteIntegerOptions()
	defaultWriteFloatOptions   = DecimalWriteFloatOptions()
)

func intSpec[T constraints.Integer]() (bits int, signed bool) {
	var zero T
	bits = int(unsafe.Sizeof(zero)) * 8
	signed = zero-1 < zero
	return bits, signed
}

func floatBits[T constraints.Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// integerFromScan range-checks a scanned magnitude against T and builds the
// value. Range failures point at the start of the digit run.
func integerFromScan[T constraints.Integer](s intScan) (T, *Error) {
	bits, signed := intSpec[T]()
	if signed {
		limit := uint64(1) << (bits - 1) // magnitude of T's minimum
		if s.neg {
			if s.mag > limit {
				return 0, newError(Underflow, s.start)
			}
			return T(0) - T(s.mag), nil
		}
		if s.mag >= limit {
			return 0, newError(Overflow, s.start)
		}
		return T(s.mag), nil
	}
	if s.neg {
		if s.mag != 0 {
			return 0, newError(Underflow, s.start)
		}
		return 0, nil
	}
	max := uint64(math.MaxUint64)
	if bits < 64 {
		max = uint64(1)<<bits - 1
	}
	if s.mag > max {
		return 0, newError(Overflow, s.start)
	}
	return T(s.mag), nil
}

// ParseInteger parses all of b as an integer of type T in the default
// decimal options. Trailing bytes are an error.
func ParseInteger[T constraints.Integer](b []byte) (T, error) {
	return ParseIntegerWithOptions[T](b, defaultParseIntegerOptions)
}

// ParseIntegerWithOptions parses all of b as an integer of type T under the
// given options.
func ParseIntegerWithOptions[T constraints.Integer](b []byte, opts *ParseIntegerOptions) (T, error) {
	s, serr := scanInteger(b, opts)
	if serr != nil {
		return 0, serr
	}
	if s.n != len(b) {
		return 0, newError(InvalidDigit, s.n)
	}
	v, verr := integerFromScan[T](s)
	if verr != nil {
		return 0, verr
	}
	return v, nil
}

// ParseIntegerPartial parses the longest integer prefix of b in the default
// decimal options, returning the value and the bytes consumed.
func ParseIntegerPartial[T constraints.Integer](b []byte) (T, int, error) {
	return ParseIntegerPartialWithOptions[T](b, defaultParseIntegerOptions)
}

// ParseIntegerPartialWithOptions parses the longest integer prefix of b
// under the given options, returning the value and the bytes consumed.
// Unconsumed trailing bytes are not an error; a prefix that is not a number
// at all is.
func ParseIntegerPartialWithOptions[T constraints.Integer](b []byte, opts *ParseIntegerOptions) (T, int, error) {
	s, serr := scanInteger(b, opts)
	if serr != nil {
		return 0, 0, serr
	}
	v, verr := integerFromScan[T](s)
	if verr != nil {
		return 0, 0, verr
	}
	return v, s.n, nil
}

// ParseFloat parses all of b as a float of type T in the default decimal
// options. Trailing bytes are an error.
func ParseFloat[T constraints.Float](b []byte) (T, error) {
	return ParseFloatWithOptions[T](b, defaultParseFloatOptions)
}

// ParseFloatWithOptions parses all of b as a float of type T under the
// given options.
func ParseFloatWithOptions[T constraints.Float](b []byte, opts *ParseFloatOptions) (T, error) {
	v, n, serr := scanFloat(b, opts, floatBits[T]())
	if serr != nil {
		return 0, serr
	}
	if n != len(b) {
		return 0, newError(InvalidDigit, n)
	}
	return T(v), nil
}

// ParseFloatPartial parses the longest float prefix of b in the default
// decimal options, returning the value and the bytes consumed.
func ParseFloatPartial[T constraints.Float](b []byte) (T, int, error) {
	return ParseFloatPartialWithOptions[T](b, defaultParseFloatOptions)
}

// ParseFloatPartialWithOptions parses the longest float prefix of b under
// the given options, returning the value and the bytes consumed.
func ParseFloatPartialWithOptions[T constraints.Float](b []byte, opts *ParseFloatOptions) (T, int, error) {
	v, n, serr := scanFloat(b, opts, floatBits[T]())
	if serr != nil {
		return 0, 0, serr
	}
	return T(v), n, nil
}

// WriteInteger formats v in the default decimal options into a fresh slice.
func WriteInteger[T constraints.Integer](v T) []byte {
	buf := make([]byte, FormattedSizeInt64Decimal)
	n := WriteIntegerToWithOptions(v, defaultWriteIntegerOptions, buf)
	return buf[:n]
}

// WriteIntegerWithOptions formats v under the given options into a fresh
// slice.
func WriteIntegerWithOptions[T constraints.Integer](v T, opts *WriteIntegerOptions) []byte {
	buf := make([]byte, FormattedSizeInt64)
	n := WriteIntegerToWithOptions(v, opts, buf)
	return buf[:n]
}

// WriteIntegerToWithOptions formats v under the given options into buf and
// returns the byte count. buf must hold the FormattedSize constant matching
// T and the radix; that capacity is a caller precondition, not re-checked
// here.
func WriteIntegerToWithOptions[T constraints.Integer](v T, opts *WriteIntegerOptions, buf []byte) int {
	neg := false
	var mag uint64
	if _, signed := intSpec[T](); signed && v < 0 {
		neg = true
		mag = uint64(-(int64(v) + 1)) + 1
	} else {
		mag = uint64(v)
	}
	return writeSignedMagnitude(buf, mag, neg, opts.radix)
}

// WriteFloat formats v in the default decimal options into a fresh slice.
func WriteFloat[T constraints.Float](v T) []byte {
	buf := make([]byte, FormattedSizeFloat64Decimal)
	n := WriteFloatToWithOptions(v, defaultWriteFloatOptions, buf)
	return buf[:n]
}

// WriteFloatWithOptions formats v under the given options into a fresh
// slice sized for the radix and the configured special spellings.
func WriteFloatWithOptions[T constraints.Float](v T, opts *WriteFloatOptions) []byte {
	size := FormattedSizeFloat64
	if opts.radix == 10 {
		size = FormattedSizeFloat64Decimal
	}
	if m := len(opts.nan); m > size {
		size = m
	}
	if m := len(opts.inf) + 1; m > size {
		size = m
	}
	buf := make([]byte, size)
	n := WriteFloatToWithOptions(v, opts, buf)
	return buf[:n]
}

// WriteFloatToWithOptions formats v under the given options into buf and
// returns the byte count. buf must hold the FormattedSize constant matching
// T and the radix, or the configured special spelling plus a sign byte,
// whichever is larger; that capacity is a caller precondition, not
// re-checked here.
func WriteFloatToWithOptions[T constraints.Float](v T, opts *WriteFloatOptions, buf []byte) int {
	return writeFloat(buf, float64(v), opts, floatBits[T]())
}
