package lexic

import "math/big"

// RoundingKind selects how a parsed float is rounded to the nearest
// representable value.
type RoundingKind uint8

const (
	// NearestTieEven rounds to nearest, ties to an even mantissa. This is
	// the IEEE 754 default and the default here.
	NearestTieEven RoundingKind = iota

	// NearestTieAwayZero rounds to nearest, ties away from zero.
	NearestTieAwayZero

	// TowardPositiveInfinity rounds toward positive infinity.
	TowardPositiveInfinity

	// TowardNegativeInfinity rounds toward negative infinity.
	TowardNegativeInfinity

	// TowardZero rounds toward zero.
	TowardZero
)

// String returns the conventional name of the rounding kind.
func (k RoundingKind) String() string {
	switch k {
	case NearestTieEven:
		return "nearest-tie-even"
	case NearestTieAwayZero:
		return "nearest-tie-away-zero"
	case TowardPositiveInfinity:
		return "toward-positive-infinity"
	case TowardNegativeInfinity:
		return "toward-negative-infinity"
	case TowardZero:
		return "toward-zero"
	default:
		return "unknown"
	}
}

func (k RoundingKind) bigMode() big.RoundingMode {
	switch k {
	case NearestTieAwayZero:
		return big.ToNearestAway
	case TowardPositiveInfinity:
		return big.ToPositiveInf
	case TowardNegativeInfinity:
		return big.ToNegativeInf
	case TowardZero:
		return big.ToZero
	default:
		return big.ToNearestEven
	}
}
