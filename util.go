package lexic

// Uppercase digit alphabet for radix output, the conventional table for
// radixes up to 36.
const digitTable = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digitValue returns the numeric value of ch as a digit, or -1 if ch is not
// a digit in any radix up to 36. Letter digits are case-insensitive.
func digitValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return -1
}

// isRadixDigit reports whether ch is a digit in the given radix.
func isRadixDigit(ch byte, radix int) bool {
	v := digitValue(ch)
	return v >= 0 && v < radix
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}
