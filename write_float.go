package lexic

import (
	"math"
	"math/big"
	"strconv"
)

// Fraction digit caps for radix float output. Together with the
// positional/scientific cutover below they keep every formatted value within
// the any-radix FormattedSize constants.
const (
	maxFracDigits64 = 64
	maxFracDigits32 = 32
)

// Radix exponents outside [-5, 15] switch the writer to scientific
// notation, bounding the positional integer part at sixteen digits.
const (
	sciUpper = 16
	sciLower = -5
)

// writeFloat writes v into buf under the options and returns the byte
// count. bits selects shortest-decimal precision (32 or 64). buf must hold
// FormattedSizeFloat64Decimal (or the any-radix constant for radix != 10)
// bytes, or the configured special spelling plus a sign, whichever is
// larger.
func writeFloat(buf []byte, v float64, opts *WriteFloatOptions, bits int) int {
	if math.IsNaN(v) {
		return copy(buf, opts.nan)
	}
	if math.IsInf(v, 0) {
		n := 0
		if v < 0 {
			buf[0] = '-'
			n = 1
		}
		return n + copy(buf[n:], opts.inf)
	}
	if opts.radix == 10 {
		return writeFloatDecimal(buf, v, opts, bits)
	}
	return writeFloatRadix(buf, v, opts, bits)
}

// writeFloatDecimal emits the shortest decimal form that round-trips at the
// given width, then normalizes it: the configured exponent marker, no '+'
// or leading zeros in the exponent, and a ".0" tail on integral values
// unless trimming is on.
func writeFloatDecimal(buf []byte, v float64, opts *WriteFloatOptions, bits int) int {
	var tmp [32]byte
	s := strconv.AppendFloat(tmp[:0], v, 'g', -1, bits)

	ei := -1
	hasPoint := false
	for i, c := range s {
		switch c {
		case 'e':
			ei = i
		case '.':
			hasPoint = true
		}
	}
	if ei < 0 {
		n := copy(buf, s)
		if !hasPoint && !opts.trimFloats {
			buf[n] = '.'
			buf[n+1] = '0'
			n += 2
		}
		return n
	}

	n := copy(buf, s[:ei])
	buf[n] = opts.exponentChar
	n++
	exp := s[ei+1:]
	if exp[0] == '-' {
		buf[n] = '-'
		n++
		exp = exp[1:]
	} else if exp[0] == '+' {
		exp = exp[1:]
	}
	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}
	return n + copy(buf[n:], exp)
}

// writeFloatRadix emits v in a non-decimal radix with uppercase digits.
// Fraction digits are exact up to the cap and truncate toward zero beyond
// it; exponent digits are always decimal, mirroring the parser.
func writeFloatRadix(buf []byte, v float64, opts *WriteFloatOptions, bits int) int {
	n := 0
	if math.Signbit(v) {
		buf[0] = '-'
		n = 1
		v = -v
	}
	if v == 0 {
		buf[n] = '0'
		n++
		if !opts.trimFloats {
			buf[n] = '.'
			buf[n+1] = '0'
			n += 2
		}
		return n
	}

	maxFrac := maxFracDigits64
	if bits == 32 {
		maxFrac = maxFracDigits32
	}
	radix := opts.radix

	const prec = 512
	x := new(big.Float).SetPrec(prec).SetFloat64(v)
	r := new(big.Float).SetPrec(prec).SetInt64(int64(radix))
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	e := 0
	for x.Cmp(r) >= 0 {
		x.Quo(x, r)
		e++
	}
	for x.Cmp(one) < 0 {
		x.Mul(x, r)
		e--
	}
	// The multiply-back can overshoot when x sat just under a power of the
	// radix; one more division restores x in [1, radix).
	if x.Cmp(r) >= 0 {
		x.Quo(x, r)
		e++
	}

	if e >= sciUpper || e < sciLower {
		// Scientific: one digit, point, fraction, then a decimal exponent.
		n += writeRadixDigits(buf[n:], x, radix, 1, maxFrac, false)
		buf[n] = opts.exponentChar
		n++
		eNeg := e < 0
		if eNeg {
			e = -e
		}
		return n + writeSignedMagnitude(buf[n:], uint64(e), eNeg, 10)
	}

	// Positional: rescale back so the integer part carries e+1 digits.
	for ; e > 0; e-- {
		x.Mul(x, r)
	}
	for ; e < 0; e++ {
		x.Quo(x, r)
	}
	return n + writeRadixDigits(buf[n:], x, radix, -1, maxFrac, opts.trimFloats)
}

// writeRadixDigits writes x (non-negative, finite) as uppercase radix
// digits: the integer part, then up to maxFrac fraction digits, stopping
// early once the remainder is zero. intDigits > 0 forces that many leading
// digits (the scientific path passes 1); -1 lets the integer part size
// itself. A zero fraction collapses to ".0", or to nothing when trim is on.
func writeRadixDigits(buf []byte, x *big.Float, radix, intDigits, maxFrac int, trim bool) int {
	ip, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(x.Prec()).Sub(x, new(big.Float).SetPrec(x.Prec()).SetInt(ip))

	n := 0
	if intDigits == 1 {
		// Normalization leaves a single leading digit below the radix.
		buf[n] = digitTable[ip.Int64()]
		n++
	} else {
		s := ip.Text(radix)
		for i := 0; i < len(s); i++ {
			ch := s[i]
			if ch >= 'a' && ch <= 'z' {
				ch = ch - 'a' + 'A'
			}
			buf[n] = ch
			n++
		}
	}

	if frac.Sign() == 0 {
		if trim {
			return n
		}
		buf[n] = '.'
		buf[n+1] = '0'
		return n + 2
	}

	buf[n] = '.'
	n++
	r := new(big.Float).SetPrec(x.Prec()).SetInt64(int64(radix))
	di := new(big.Int)
	for i := 0; i < maxFrac && frac.Sign() != 0; i++ {
		frac.Mul(frac, r)
		frac.Int(di)
		buf[n] = digitTable[di.Int64()]
		n++
		frac.Sub(frac, new(big.Float).SetPrec(x.Prec()).SetInt(di))
	}
	return n
}
