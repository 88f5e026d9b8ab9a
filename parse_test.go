package lexic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// requireParseError unwraps err into a structured *Error and checks the code
// and byte index.
func requireParseError(t *testing.T, err error, code ErrorCode, index int) {
	t.Helper()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, code, perr.Code, "error code")
	assert.Equal(t, index, perr.Index, "error index")
}

func TestParseIntegerBasic(t *testing.T) {
	v, err := ParseInteger[int32]([]byte("12345"))
	require.NoError(t, err)
	assert.Equal(t, int32(12345), v)

	v8, err := ParseInteger[int8]([]byte("-128"))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v8)

	v8, err = ParseInteger[int8]([]byte("127"))
	require.NoError(t, err)
	assert.Equal(t, int8(127), v8)

	u, err := ParseInteger[uint64]([]byte("18446744073709551615"))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u)

	i64, err := ParseInteger[int64]([]byte("-9223372036854775808"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)

	// A '-' on an unsigned type is only legal for zero.
	u8, err := ParseInteger[uint8]([]byte("-0"))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), u8)
}

func TestParseIntegerRange(t *testing.T) {
	_, err := ParseInteger[int8]([]byte("128"))
	requireParseError(t, err, Overflow, 0)

	_, err = ParseInteger[int8]([]byte("-129"))
	requireParseError(t, err, Underflow, 1)

	_, err = ParseInteger[uint8]([]byte("256"))
	requireParseError(t, err, Overflow, 0)

	_, err = ParseInteger[uint8]([]byte("-1"))
	requireParseError(t, err, Underflow, 1)

	// Past the 64-bit accumulator the failing digit is reported.
	_, err = ParseInteger[uint64]([]byte("18446744073709551616"))
	requireParseError(t, err, Overflow, 19)
}

func TestParseIntegerErrors(t *testing.T) {
	_, err := ParseInteger[int32](nil)
	requireParseError(t, err, Empty, 0)

	_, err = ParseInteger[int32]([]byte("+"))
	requireParseError(t, err, Empty, 1)

	_, err = ParseInteger[int32]([]byte("a"))
	requireParseError(t, err, InvalidDigit, 0)

	_, err = ParseInteger[int32]([]byte("10a"))
	requireParseError(t, err, InvalidDigit, 2)

	// errors.Is matches by code, whatever the index.
	assert.ErrorIs(t, err, &Error{Code: InvalidDigit})
	assert.NotErrorIs(t, err, &Error{Code: Empty})
}

func TestParseIntegerPartial(t *testing.T) {
	v, n, err := ParseIntegerPartial[int32]([]byte("10a"))
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)
	assert.Equal(t, 2, n)

	v, n, err = ParseIntegerPartial[int32]([]byte("-45xyz"))
	require.NoError(t, err)
	assert.Equal(t, int32(-45), v)
	assert.Equal(t, 3, n)

	v, n, err = ParseIntegerPartial[int32]([]byte("123"))
	require.NoError(t, err)
	assert.Equal(t, int32(123), v)
	assert.Equal(t, 3, n)
}

func TestParseIntegerRadix(t *testing.T) {
	hex := HexadecimalParseIntegerOptions()
	v, err := ParseIntegerWithOptions[int32]([]byte("ff"), hex)
	require.NoError(t, err)
	assert.Equal(t, int32(255), v)

	v, err = ParseIntegerWithOptions[int32]([]byte("FF"), hex)
	require.NoError(t, err)
	assert.Equal(t, int32(255), v)

	bin := BinaryParseIntegerOptions()
	v, err = ParseIntegerWithOptions[int32]([]byte("1010"), bin)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)

	// In hex, 'g' is the first non-digit.
	_, n, err := ParseIntegerPartialWithOptions[int32]([]byte("beefg"), hex)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestParseIntegerSeparators(t *testing.T) {
	ignore, err := Ignore('_')
	require.NoError(t, err)
	opts, err := NewParseIntegerOptionsBuilder().Format(ignore).Build()
	require.NoError(t, err)

	v, err := ParseIntegerWithOptions[int64]([]byte("1_000_000"), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), v)

	v, err = ParseIntegerWithOptions[int64]([]byte("_1_0_"), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v)

	// Without a separator in the format, '_' is just an invalid byte.
	_, err = ParseInteger[int64]([]byte("1_0"))
	requireParseError(t, err, InvalidDigit, 1)

	v, n, perr := ParseIntegerPartial[int64]([]byte("1_0"))
	require.NoError(t, perr)
	assert.Equal(t, int64(1), v)
	assert.Equal(t, 1, n)
}

func TestParseIntegerLeadingZeros(t *testing.T) {
	opts, err := NewParseIntegerOptionsBuilder().Format(JSON).Build()
	require.NoError(t, err)

	_, perr := ParseIntegerWithOptions[int32]([]byte("007"), opts)
	requireParseError(t, perr, InvalidLeadingZeros, 0)

	v, perr := ParseIntegerWithOptions[int32]([]byte("0"), opts)
	require.NoError(t, perr)
	assert.Equal(t, int32(0), v)
}

func TestParseFloatBasic(t *testing.T) {
	cases := map[string]float64{
		"1.5":    1.5,
		"-2.5e3": -2500,
		"10":     10,
		".5":     0.5,
		"5.":     5,
		"+1.5":   1.5,
		"1e5":    1e5,
		"-0":     math.Copysign(0, -1),
	}
	for in, want := range cases {
		v, err := ParseFloat[float64]([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, math.Float64bits(want), math.Float64bits(v), "input %q", in)
	}
}

func TestParseFloatSpecials(t *testing.T) {
	v, err := ParseFloat[float64]([]byte("NaN"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = ParseFloat[float64]([]byte("inf"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = ParseFloat[float64]([]byte("-infinity"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	// Spellings are case-insensitive unless the format says otherwise.
	v, err = ParseFloat[float64]([]byte("INFINITY"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	strict := mustFormat(NewFormatBuilder().CaseSensitiveSpecial(true))
	opts, err := NewParseFloatOptionsBuilder().Format(strict).Build()
	require.NoError(t, err)
	_, perr := ParseFloatWithOptions[float64]([]byte("INF"), opts)
	requireParseError(t, perr, InvalidDigit, 0)
}

func TestParseFloatPartial(t *testing.T) {
	v, n, err := ParseFloatPartial[float64]([]byte("1.5rest"))
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, 3, n)

	v, n, err = ParseFloatPartial[float64]([]byte("10a"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
	assert.Equal(t, 2, n)

	// A bare exponent marker is consumed but contributes nothing.
	v, n, err = ParseFloatPartial[float64]([]byte("1e"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 2, n)
}

func TestParseFloatSaturates(t *testing.T) {
	v, err := ParseFloat[float64]([]byte("1e400"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = ParseFloat[float64]([]byte("-1e400"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	v, err = ParseFloat[float64]([]byte("1e-400"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestParseFloatRounding(t *testing.T) {
	// The nearest float64 to 0.1 lies above the exact value, so directed
	// rounding toward zero must land one ulp below the default result.
	nearest, err := ParseFloat[float64]([]byte("0.1"))
	require.NoError(t, err)

	opts, err := NewParseFloatOptionsBuilder().Rounding(TowardZero).Build()
	require.NoError(t, err)
	down, perr := ParseFloatWithOptions[float64]([]byte("0.1"), opts)
	require.NoError(t, perr)
	assert.Less(t, down, nearest)
	assert.Equal(t, math.Nextafter(nearest, 0), down)

	opts, err = NewParseFloatOptionsBuilder().Rounding(TowardPositiveInfinity).Build()
	require.NoError(t, err)
	up, perr := ParseFloatWithOptions[float64]([]byte("0.1"), opts)
	require.NoError(t, perr)
	assert.Equal(t, nearest, up)

	// Subnormals carry fewer mantissa bits, so the directed results must
	// still straddle the exact value by exactly one subnormal ulp.
	subDown, perr := ParseFloatWithOptions[float64]([]byte("1e-310"),
		mustRoundingOptions(t, TowardZero))
	require.NoError(t, perr)
	subUp, perr := ParseFloatWithOptions[float64]([]byte("1e-310"),
		mustRoundingOptions(t, TowardPositiveInfinity))
	require.NoError(t, perr)
	assert.Less(t, subDown, subUp)
	assert.Equal(t, math.Nextafter(subDown, 1), subUp)
}

func mustRoundingOptions(t *testing.T, r RoundingKind) *ParseFloatOptions {
	t.Helper()
	opts, err := NewParseFloatOptionsBuilder().Rounding(r).Build()
	require.NoError(t, err)
	return opts
}

func TestParseFloatRadix(t *testing.T) {
	hex := HexadecimalParseFloatOptions()
	v, err := ParseFloatWithOptions[float64]([]byte("A.8"), hex)
	require.NoError(t, err)
	assert.Equal(t, 10.5, v)

	v, err = ParseFloatWithOptions[float64]([]byte("a.8"), hex)
	require.NoError(t, err)
	assert.Equal(t, 10.5, v)

	v, err = ParseFloatWithOptions[float64]([]byte("-A.8"), hex)
	require.NoError(t, err)
	assert.Equal(t, -10.5, v)

	// Exponent digits are decimal even when the mantissa is not.
	v, err = ParseFloatWithOptions[float64]([]byte("1p4"), hex)
	require.NoError(t, err)
	assert.Equal(t, 65536.0, v)

	bin := BinaryParseFloatOptions()
	v, err = ParseFloatWithOptions[float64]([]byte("1010"), bin)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	v, err = ParseFloatWithOptions[float64]([]byte("0.01"), bin)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

// FloatGrammarSuite exercises the structural format flags against float
// inputs, one grammar violation per case.
type FloatGrammarSuite struct {
	suite.Suite
}

func (s *FloatGrammarSuite) parse(input string, format NumberFormat) error {
	opts, err := NewParseFloatOptionsBuilder().Format(format).Build()
	s.Require().NoError(err)
	_, perr := ParseFloatWithOptions[float64]([]byte(input), opts)
	return perr
}

func (s *FloatGrammarSuite) check(err error, code ErrorCode, index int) {
	var perr *Error
	s.Require().ErrorAs(err, &perr)
	s.Assert().Equal(code, perr.Code)
	s.Assert().Equal(index, perr.Index)
}

func (s *FloatGrammarSuite) TestJSON() {
	_, err := ParseFloatWithOptions[float64]([]byte("1.5e10"), jsonFloatOptions())
	s.Require().NoError(err)

	s.check(s.parse(".5", JSON), EmptyInteger, 0)
	s.check(s.parse("1.", JSON), EmptyFraction, 2)
	s.check(s.parse("01.5", JSON), InvalidLeadingZeros, 0)
	s.check(s.parse("+1.5", JSON), InvalidPositiveMantissaSign, 0)
	s.check(s.parse("NaN", JSON), InvalidDigit, 0)
	s.check(s.parse("abc", JSON), InvalidDigit, 0)
	s.check(s.parse("1e", JSON), EmptyExponent, 2)
}

func (s *FloatGrammarSuite) TestLeadingZeros() {
	opts, err := NewParseFloatOptionsBuilder().Format(TOML).Build()
	s.Require().NoError(err)
	_, perr := ParseFloatWithOptions[float64]([]byte("0.5"), opts)
	s.Require().NoError(perr)

	s.check(s.parse("01.5", TOML), InvalidLeadingZeros, 0)
	s.check(s.parse("01.5", JavascriptLiteral), InvalidLeadingZeros, 0)
}

func (s *FloatGrammarSuite) TestStandard() {
	s.check(s.parse("1e", Standard()), EmptyExponent, 2)
	s.check(s.parse("1e+", Standard()), EmptyExponent, 3)

	_, err := ParseFloat[float64]([]byte("1e"))
	s.Require().NoError(err, "the permissive grammar accepts a bare marker")
}

func (s *FloatGrammarSuite) TestSignRules() {
	required := mustFormat(NewFormatBuilder().RequiredMantissaSign(true))
	s.check(s.parse("1.5", required), MissingMantissaSign, 0)

	noExp := mustFormat(NewFormatBuilder().NoExponentNotation(true))
	s.check(s.parse("1e5", noExp), InvalidExponent, 1)

	noPosExp := mustFormat(NewFormatBuilder().NoPositiveExponentSign(true))
	s.check(s.parse("1e+5", noPosExp), InvalidPositiveExponentSign, 2)

	reqExpSign := mustFormat(NewFormatBuilder().RequiredExponentSign(true))
	s.check(s.parse("1e5", reqExpSign), MissingExponentSign, 2)

	expNeedsFrac := mustFormat(NewFormatBuilder().NoExponentWithoutFraction(true))
	s.check(s.parse("1e5", expNeedsFrac), ExponentWithoutFraction, 1)
}

func (s *FloatGrammarSuite) TestEmptyInputs() {
	s.check(s.parse("", Permissive()), Empty, 0)
	s.check(s.parse("+", Permissive()), EmptyMantissa, 1)
	s.check(s.parse(".", Permissive()), EmptyMantissa, 0)
}

func TestFloatGrammarSuite(t *testing.T) {
	suite.Run(t, new(FloatGrammarSuite))
}

func jsonFloatOptions() *ParseFloatOptions {
	o, err := NewParseFloatOptionsBuilder().Format(JSON).Build()
	if err != nil {
		panic(err)
	}
	return o
}
