package lexic

import "strconv"

// writeMagnitude writes mag in the given radix into buf using the uppercase
// digit alphabet, returning the byte count. buf must be large enough; see
// the FormattedSize constants.
func writeMagnitude(buf []byte, mag uint64, radix int) int {
	if radix == 10 {
		return len(strconv.AppendUint(buf[:0], mag, 10))
	}
	var tmp [64]byte
	i := len(tmp)
	r := uint64(radix)
	for {
		i--
		tmp[i] = digitTable[mag%r]
		mag /= r
		if mag == 0 {
			break
		}
	}
	return copy(buf, tmp[i:])
}

// writeSignedMagnitude writes an optional '-' then the magnitude.
func writeSignedMagnitude(buf []byte, mag uint64, neg bool, radix int) int {
	n := 0
	if neg {
		buf[0] = '-'
		n = 1
	}
	return n + writeMagnitude(buf[n:], mag, radix)
}
