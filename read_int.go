package lexic

import "math"

// intScan is the raw result of scanning an integer: the unsigned magnitude,
// the sign, the bytes consumed, and where the digit run started (error
// indexes for range failures point there).
type intScan struct {
	mag   uint64
	neg   bool
	n     int
	start int
}

// scanInteger scans a signed integer prefix of b under the options' radix
// and format. It consumes as much as the grammar allows and leaves the first
// offending byte unconsumed; grammar violations that cannot be recovered by
// stopping early (bad sign, no digits, overflow) are reported as errors.
func scanInteger(b []byte, opts *ParseIntegerOptions) (intScan, *Error) {
	var s intScan
	if len(b) == 0 {
		return s, newError(Empty, 0)
	}
	f := opts.format
	i := 0
	switch b[0] {
	case '-':
		s.neg = true
		i = 1
	case '+':
		if f.NoPositiveMantissaSign() {
			return s, newError(InvalidPositiveMantissaSign, 0)
		}
		i = 1
	default:
		if f.RequiredMantissaSign() {
			return s, newError(MissingMantissaSign, 0)
		}
	}
	if i == len(b) {
		return s, newError(Empty, i)
	}
	s.start = i

	radix := uint64(opts.radix)
	cutoff := uint64(math.MaxUint64) / radix // mag beyond this always wraps
	var first byte
	digits := 0
	overflowAt := -1
	next, _ := scanDigits(b, i, opts.radix, integerSepRules(f), func(idx int, ch byte) {
		if digits == 0 {
			first = ch
		}
		digits++
		if overflowAt >= 0 {
			return
		}
		d := uint64(digitValue(ch))
		if s.mag > cutoff || (s.mag == cutoff && d > math.MaxUint64-cutoff*radix) {
			overflowAt = idx
			return
		}
		s.mag = s.mag*radix + d
	})
	if digits == 0 {
		if next == len(b) {
			return s, newError(Empty, next)
		}
		return s, newError(InvalidDigit, next)
	}
	if f.NoIntegerLeadingZeros() && first == '0' && digits > 1 {
		return s, newError(InvalidLeadingZeros, s.start)
	}
	if overflowAt >= 0 {
		code := Overflow
		if s.neg {
			code = Underflow
		}
		return s, newError(code, overflowAt)
	}
	s.n = next
	return s, nil
}
