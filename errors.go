package lexic

import (
	"errors"
	"fmt"
)

// Construction-time failures. These are distinct from parse/write errors:
// they occur before any input is examined.
var (
	// ErrInvalidFormat indicates a FormatBuilder configuration that cannot
	// produce a valid NumberFormat.
	ErrInvalidFormat = errors.New("lexic: invalid number format")

	// ErrInvalidOptions indicates an options builder configuration that
	// cannot produce a valid options value.
	ErrInvalidOptions = errors.New("lexic: invalid options")
)

// ErrorCode identifies the kind of a parse failure. The set is closed; every
// code pinpoints the grammar rule that was violated.
type ErrorCode uint8

const (
	// Overflow indicates the value exceeded the maximum of the target type.
	Overflow ErrorCode = iota + 1

	// Underflow indicates the value exceeded the minimum of the target type.
	Underflow

	// InvalidDigit indicates a byte that is not a digit (or other legal
	// character) at its position.
	InvalidDigit

	// Empty indicates empty input.
	Empty

	// EmptyMantissa indicates a float with no mantissa digits.
	EmptyMantissa

	// EmptyExponent indicates an exponent marker with no following digits.
	EmptyExponent

	// EmptyInteger indicates missing required digits before the decimal
	// point.
	EmptyInteger

	// EmptyFraction indicates missing required digits after the decimal
	// point.
	EmptyFraction

	// InvalidPositiveMantissaSign indicates a '+' mantissa sign where the
	// grammar forbids one.
	InvalidPositiveMantissaSign

	// MissingMantissaSign indicates a missing mantissa sign where the
	// grammar requires one.
	MissingMantissaSign

	// InvalidExponent indicates an exponent where the grammar forbids one.
	InvalidExponent

	// InvalidPositiveExponentSign indicates a '+' exponent sign where the
	// grammar forbids one.
	InvalidPositiveExponentSign

	// MissingExponentSign indicates a missing exponent sign where the
	// grammar requires one.
	MissingExponentSign

	// ExponentWithoutFraction indicates an exponent with no preceding
	// decimal point where the grammar requires one.
	ExponentWithoutFraction

	// InvalidLeadingZeros indicates forbidden leading zeros.
	InvalidLeadingZeros
)

var errorCodeNames = map[ErrorCode]string{
	Overflow:                    "numeric overflow",
	Underflow:                   "numeric underflow",
	InvalidDigit:                "invalid digit",
	Empty:                       "empty input",
	EmptyMantissa:               "empty mantissa",
	EmptyExponent:               "empty exponent",
	EmptyInteger:                "empty integer",
	EmptyFraction:               "empty fraction",
	InvalidPositiveMantissaSign: "invalid positive mantissa sign",
	MissingMantissaSign:         "missing required mantissa sign",
	InvalidExponent:             "invalid exponent",
	InvalidPositiveExponentSign: "invalid positive exponent sign",
	MissingExponentSign:         "missing required exponent sign",
	ExponentWithoutFraction:     "exponent without fraction",
	InvalidLeadingZeros:         "invalid leading zeros",
}

// String returns a short human-readable description of the code.
func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown error code %d", uint8(c))
}

// Error is a structured parse failure: the violated rule and the byte offset
// at which the violation was detected, relative to the start of the input
// slice passed to the call.
type Error struct {
	Code  ErrorCode
	Index int
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexic: %s at byte %d", e.Code, e.Index)
}

// Is lets errors.Is match two lexic errors with the same code, regardless of
// index.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(code ErrorCode, index int) *Error {
	return &Error{Code: code, Index: index}
}
