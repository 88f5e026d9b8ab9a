package lexic

// sepRules is the digit-separator policy for one segment (integer, fraction,
// or exponent) of a number.
type sepRules struct {
	sep      byte
	internal bool
	leading  bool
	trailing bool
	consec   bool
}

func integerSepRules(f NumberFormat) sepRules {
	return sepRules{
		sep:      f.DigitSeparator(),
		internal: f.IntegerInternalDigitSeparator(),
		leading:  f.IntegerLeadingDigitSeparator(),
		trailing: f.IntegerTrailingDigitSeparator(),
		consec:   f.IntegerConsecutiveDigitSeparator(),
	}
}

func fractionSepRules(f NumberFormat) sepRules {
	return sepRules{
		sep:      f.DigitSeparator(),
		internal: f.FractionInternalDigitSeparator(),
		leading:  f.FractionLeadingDigitSeparator(),
		trailing: f.FractionTrailingDigitSeparator(),
		consec:   f.FractionConsecutiveDigitSeparator(),
	}
}

func exponentSepRules(f NumberFormat) sepRules {
	return sepRules{
		sep:      f.DigitSeparator(),
		internal: f.ExponentInternalDigitSeparator(),
		leading:  f.ExponentLeadingDigitSeparator(),
		trailing: f.ExponentTrailingDigitSeparator(),
		consec:   f.ExponentConsecutiveDigitSeparator(),
	}
}

// scanDigits consumes digits and permitted separators from b[i:] in the
// given radix, invoking emit for each digit. A separator run is classified
// by its surroundings (leading, internal, or trailing) and consumed only if
// the rules allow it there; a misplaced separator simply terminates the
// scan, so the caller sees it as the first unconsumed byte. Returns the new
// index and the digit count.
func scanDigits(b []byte, i, radix int, r sepRules, emit func(idx int, ch byte)) (int, int) {
	j := i
	digits := 0
	for j < len(b) {
		ch := b[j]
		if isRadixDigit(ch, radix) {
			if emit != nil {
				emit(j, ch)
			}
			digits++
			j++
			continue
		}
		if r.sep == 0 || ch != r.sep {
			break
		}
		run := 1
		for j+run < len(b) && b[j+run] == r.sep {
			run++
		}
		digitFollows := j+run < len(b) && isRadixDigit(b[j+run], radix)
		var ok bool
		switch {
		case digits == 0:
			ok = r.leading && digitFollows
		case digitFollows:
			ok = r.internal
		default:
			ok = r.trailing
		}
		if run > 1 && !r.consec {
			ok = false
		}
		if !ok {
			break
		}
		j += run
	}
	return j, digits
}

// matchSpelling matches spelling at the start of b, optionally
// case-insensitively, skipping separator bytes when sep is non-zero.
// Returns the number of input bytes consumed, or -1 on mismatch.
func matchSpelling(b, spelling []byte, caseSensitive bool, sep byte) int {
	i := 0
	for _, want := range spelling {
		for sep != 0 && i < len(b) && b[i] == sep {
			i++
		}
		if i >= len(b) {
			return -1
		}
		got := b[i]
		if !caseSensitive {
			got, want = toLower(got), toLower(want)
		}
		if got != want {
			return -1
		}
		i++
	}
	return i
}
