package lexic

import (
	"math"
	"math/big"
	"strconv"
)

// Caps on the digits fed into value assembly. Digits beyond the cap cannot
// change the rounded result except through stickiness, which is preserved by
// a synthetic trailing digit. The exponent clamp is far outside any finite
// float64's range, so clamped inputs already saturate to zero or infinity.
const (
	maxMantissaDigits = 800
	exponentClamp     = 1 << 20
)

// scanFloat scans a float prefix of b under the options' grammar and returns
// the value rounded to the given width (32 or 64 bits), the bytes consumed,
// and the first grammar violation, if any. Out-of-range finite inputs
// saturate to zero or infinity rather than failing.
func scanFloat(b []byte, opts *ParseFloatOptions, bits int) (float64, int, *Error) {
	if len(b) == 0 {
		return 0, 0, newError(Empty, 0)
	}
	f := opts.format
	i := 0
	neg := false
	switch b[0] {
	case '-':
		neg = true
		i = 1
	case '+':
		if f.NoPositiveMantissaSign() {
			return 0, 0, newError(InvalidPositiveMantissaSign, 0)
		}
		i = 1
	default:
		if f.RequiredMantissaSign() {
			return 0, 0, newError(MissingMantissaSign, 0)
		}
	}
	if i == len(b) {
		return 0, 0, newError(EmptyMantissa, i)
	}
	start := i

	// Special values are attempted only when the lead byte cannot start a
	// digit run: in high radixes 'i' and 'n' are themselves digits, and the
	// digit reading wins.
	if !f.NoSpecial() && !isRadixDigit(b[i], opts.radix) {
		if v, n, ok := matchSpecial(b[i:], opts, f, neg); ok {
			return v, i + n, nil
		}
	}

	var (
		digits    = make([]byte, 0, 64)
		intDigits int
		first     byte
		sawPoint  bool
	)
	j, n := scanDigits(b, i, opts.radix, integerSepRules(f), func(_ int, ch byte) {
		if len(digits) == 0 {
			first = ch
		}
		digits = append(digits, ch)
	})
	intDigits = n
	if f.NoFloatLeadingZeros() && intDigits > 1 && first == '0' {
		return 0, 0, newError(InvalidLeadingZeros, start)
	}
	if j < len(b) && b[j] == '.' {
		sawPoint = true
		j++
		fracStart := j
		var fracDigits int
		j, fracDigits = scanDigits(b, j, opts.radix, fractionSepRules(f), func(_ int, ch byte) {
			digits = append(digits, ch)
		})
		if f.RequiredFractionDigits() && fracDigits == 0 {
			return 0, 0, newError(EmptyFraction, fracStart)
		}
	}
	if f.RequiredIntegerDigits() && intDigits == 0 {
		// A missing integer part is only that when the segment ended at a
		// structural character; a byte that can never appear in a number is
		// an invalid digit, as in the integer scanner.
		if sawPoint || j == len(b) || toLower(b[j]) == toLower(opts.exponentChar) {
			return 0, 0, newError(EmptyInteger, start)
		}
		return 0, 0, newError(InvalidDigit, j)
	}
	if len(digits) == 0 {
		if sawPoint || j == len(b) {
			return 0, 0, newError(EmptyMantissa, start)
		}
		return 0, 0, newError(InvalidDigit, j)
	}
	fracDigits := len(digits) - intDigits

	exp := 0
	sawExp := false
	if j < len(b) && toLower(b[j]) == toLower(opts.exponentChar) {
		if f.NoExponentNotation() {
			return 0, 0, newError(InvalidExponent, j)
		}
		if f.NoExponentWithoutFraction() && !sawPoint {
			return 0, 0, newError(ExponentWithoutFraction, j)
		}
		sawExp = true
		j++
		expNeg := false
		if j < len(b) {
			switch b[j] {
			case '-':
				expNeg = true
				j++
			case '+':
				if f.NoPositiveExponentSign() {
					return 0, 0, newError(InvalidPositiveExponentSign, j)
				}
				j++
			default:
				if f.RequiredExponentSign() {
					return 0, 0, newError(MissingExponentSign, j)
				}
			}
		} else if f.RequiredExponentSign() {
			return 0, 0, newError(MissingExponentSign, j)
		}
		// Exponent digits are always decimal, whatever the mantissa radix.
		next, expDigits := scanDigits(b, j, 10, exponentSepRules(f), func(_ int, ch byte) {
			if exp < exponentClamp {
				exp = exp*10 + digitValue(ch)
			}
		})
		if expDigits == 0 {
			if f.RequiredExponentDigits() {
				return 0, 0, newError(EmptyExponent, j)
			}
			// A bare marker (and sign) is consumed but contributes nothing.
			exp = 0
		} else {
			j = next
		}
		if exp > exponentClamp {
			exp = exponentClamp
		}
		if expNeg {
			exp = -exp
		}
	}
	if f.RequiredExponentNotation() && !sawExp {
		return 0, 0, newError(EmptyExponent, j)
	}

	v := assembleFloat(digits, fracDigits, exp, neg, opts, bits)
	return v, j, nil
}

// matchSpecial tries the configured special-value spellings at the start of
// b, longest infinity spelling first. Returns the value, bytes consumed, and
// whether a spelling matched.
func matchSpecial(b []byte, opts *ParseFloatOptions, f NumberFormat, neg bool) (float64, int, bool) {
	caseSensitive := f.CaseSensitiveSpecial()
	var sep byte
	if f.SpecialDigitSeparator() {
		sep = f.DigitSeparator()
	}
	inf := math.Inf(1)
	if neg {
		inf = math.Inf(-1)
	}
	if n := matchSpelling(b, opts.infinity, caseSensitive, sep); n >= 0 {
		return inf, n, true
	}
	if n := matchSpelling(b, opts.inf, caseSensitive, sep); n >= 0 {
		return inf, n, true
	}
	if n := matchSpelling(b, opts.nan, caseSensitive, sep); n >= 0 {
		return math.NaN(), n, true
	}
	return 0, 0, false
}

// assembleFloat turns a cleaned digit string (integer then fraction digits,
// separators removed) plus a decimal exponent into a rounded float. The
// value is digits-as-integer times radix^(exp-fracDigits), negated if neg.
func assembleFloat(digits []byte, fracDigits, exp int, neg bool, opts *ParseFloatOptions, bits int) float64 {
	scale := exp - fracDigits

	// Drop leading zeros, then cap the significant digits, folding any
	// dropped low-order nonzero tail into a sticky digit.
	lead := 0
	for lead < len(digits) && digits[lead] == '0' {
		lead++
	}
	sig := digits[lead:]
	if len(sig) == 0 {
		z := 0.0
		if neg {
			z = math.Copysign(0, -1)
		}
		return z
	}
	if len(sig) > maxMantissaDigits {
		dropped := sig[maxMantissaDigits:]
		sticky := byte('0')
		for _, ch := range dropped {
			if ch != '0' {
				sticky = '1'
				break
			}
		}
		n := len(sig)
		sig = append(sig[:maxMantissaDigits:maxMantissaDigits], sticky)
		scale += n - len(sig)
	}
	if scale > exponentClamp {
		scale = exponentClamp
	} else if scale < -exponentClamp {
		scale = -exponentClamp
	}

	var v float64
	if opts.radix == 10 {
		v = assembleDecimal(sig, scale, opts, bits)
	} else {
		v = assembleRadix(sig, scale, opts, bits)
	}
	if neg {
		v = math.Copysign(v, -1)
	}
	return v
}

func assembleDecimal(sig []byte, scale int, opts *ParseFloatOptions, bits int) float64 {
	s := make([]byte, 0, len(sig)+8)
	s = append(s, sig...)
	s = append(s, 'e')
	s = strconv.AppendInt(s, int64(scale), 10)
	if opts.rounding == NearestTieEven || opts.lossy {
		// strconv is correctly rounded for ties-to-even; out-of-range
		// inputs come back saturated alongside ErrRange.
		v, _ := strconv.ParseFloat(string(s), bits)
		return v
	}
	prec := uint(53)
	if bits == 32 {
		prec = 24
	}
	f, _, err := big.ParseFloat(string(s), 10, prec+64, opts.rounding.bigMode())
	if err != nil {
		v, _ := strconv.ParseFloat(string(s), bits)
		return v
	}
	return roundBig(f, bits, opts.rounding.bigMode())
}

func assembleRadix(sig []byte, scale int, opts *ParseFloatOptions, bits int) float64 {
	radix := opts.radix
	if opts.lossy {
		v := 0.0
		for _, ch := range sig {
			v = v*float64(radix) + float64(digitValue(ch))
		}
		return v * math.Pow(float64(radix), float64(scale))
	}

	prec := uint(53)
	if bits == 32 {
		prec = 24
	}
	work := prec + 64

	mant := new(big.Int)
	r := big.NewInt(int64(radix))
	d := new(big.Int)
	for _, ch := range sig {
		mant.Mul(mant, r)
		mant.Add(mant, d.SetInt64(int64(digitValue(ch))))
	}
	w := new(big.Float).SetPrec(work).SetInt(mant)
	if scale != 0 {
		p := bigPow(radix, scale, work)
		if scale > 0 {
			w.Mul(w, p)
		} else {
			w.Quo(w, p)
		}
	}
	return roundBig(w, bits, opts.rounding.bigMode())
}

// roundBig rounds w once at the target type's effective precision, which
// shrinks inside the subnormal range. Rounding at full precision and then
// converting would round a second time, and directed modes do not survive
// that.
func roundBig(w *big.Float, bits int, mode big.RoundingMode) float64 {
	prec := 53
	emin := -1021 // MantExp of the smallest normal float64
	if bits == 32 {
		prec = 24
		emin = -125
	}
	if w.Sign() != 0 {
		if e := w.MantExp(nil); e < emin {
			prec -= emin - e
			if prec < 1 {
				prec = 1
			}
		}
	}
	r := new(big.Float).SetPrec(uint(prec)).SetMode(mode).Set(w)
	v := bigToFloat(r, bits)
	if v == 0 && w.Sign() != 0 {
		// Directed rounding away from zero never underflows to zero.
		if (mode == big.ToPositiveInf && w.Sign() > 0) ||
			(mode == big.ToNegativeInf && w.Sign() < 0) {
			small := float64(math.SmallestNonzeroFloat64)
			if bits == 32 {
				small = float64(math.SmallestNonzeroFloat32)
			}
			v = math.Copysign(small, float64(w.Sign()))
		}
	}
	return v
}

// bigPow computes radix^|n| at the given precision by repeated squaring.
func bigPow(radix, n int, prec uint) *big.Float {
	if n < 0 {
		n = -n
	}
	result := new(big.Float).SetPrec(prec).SetInt64(1)
	base := new(big.Float).SetPrec(prec).SetInt64(int64(radix))
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base.Mul(base, base)
		}
	}
	return result
}

func bigToFloat(f *big.Float, bits int) float64 {
	if bits == 32 {
		v, _ := f.Float32()
		return float64(v)
	}
	v, _ := f.Float64()
	return v
}
