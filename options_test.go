package lexic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatOptionsDefaults(t *testing.T) {
	o := DecimalParseFloatOptions()
	assert.Equal(t, 10, o.Radix())
	assert.Equal(t, byte('e'), o.ExponentChar())
	assert.Equal(t, NearestTieEven, o.Rounding())
	assert.False(t, o.Lossy())
	assert.Equal(t, []byte("NaN"), o.NaNString())
	assert.Equal(t, []byte("inf"), o.InfString())
	assert.Equal(t, []byte("infinity"), o.InfinityString())
}

func TestHexOptionsUseBinaryExponent(t *testing.T) {
	assert.Equal(t, byte('p'), HexadecimalParseFloatOptions().ExponentChar())
	assert.Equal(t, byte('p'), HexadecimalWriteFloatOptions().ExponentChar())
	assert.Equal(t, 16, HexadecimalWriteIntegerOptions().Radix())
}

func TestOptionsRadixValidation(t *testing.T) {
	for _, radix := range []int{-1, 0, 1, 37} {
		_, err := NewParseIntegerOptionsBuilder().Radix(radix).Build()
		assert.ErrorIs(t, err, ErrInvalidOptions, "radix %d", radix)

		_, err = NewParseFloatOptionsBuilder().Radix(radix).Build()
		assert.ErrorIs(t, err, ErrInvalidOptions, "radix %d", radix)

		_, err = NewWriteIntegerOptionsBuilder().Radix(radix).Build()
		assert.ErrorIs(t, err, ErrInvalidOptions, "radix %d", radix)

		_, err = NewWriteFloatOptionsBuilder().Radix(radix).Build()
		assert.ErrorIs(t, err, ErrInvalidOptions, "radix %d", radix)
	}
}

func TestOptionsExponentCharValidation(t *testing.T) {
	// 'e' is a digit once the radix reaches 15.
	_, err := NewParseFloatOptionsBuilder().Radix(16).Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	o, err := NewParseFloatOptionsBuilder().Radix(16).ExponentChar('p').Build()
	require.NoError(t, err)
	assert.Equal(t, byte('p'), o.ExponentChar())

	_, err = NewWriteFloatOptionsBuilder().Radix(16).Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestOptionsSeparatorCollision(t *testing.T) {
	underscore, err := Ignore('_')
	require.NoError(t, err)

	// The separator may not double as the exponent marker.
	_, err = NewParseFloatOptionsBuilder().Format(underscore).ExponentChar('_').Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NewParseFloatOptionsBuilder().Format(underscore).Build()
	require.NoError(t, err)
}

func TestOptionsSpecialSpellingValidation(t *testing.T) {
	_, err := NewParseFloatOptionsBuilder().NaNString([]byte("foo")).Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NewParseFloatOptionsBuilder().NaNString(nil).Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NewParseFloatOptionsBuilder().InfString([]byte("positive")).Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	// Infinity must be at least as long as Inf so the longest-match order
	// is well defined.
	_, err = NewParseFloatOptionsBuilder().
		InfString([]byte("infinite")).
		InfinityString([]byte("inf")).
		Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = NewWriteFloatOptionsBuilder().NaNString([]byte("qnan")).Build()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	o, err := NewWriteFloatOptionsBuilder().NaNString([]byte("nan")).InfString([]byte("Infinity")).Build()
	require.NoError(t, err)
	assert.Equal(t, []byte("Infinity"), o.InfString())
}

func TestOptionsCopySpellings(t *testing.T) {
	spelling := []byte("NAN")
	o, err := NewParseFloatOptionsBuilder().NaNString(spelling).Build()
	require.NoError(t, err)

	spelling[1] = 'X'
	assert.Equal(t, []byte("NAN"), o.NaNString(), "options must not alias the caller's buffer")
}

func TestRoundingKindStrings(t *testing.T) {
	assert.Equal(t, "nearest-tie-even", NearestTieEven.String())
	assert.Equal(t, "toward-zero", TowardZero.String())
}
