package conv

const hexd = "0123456789abcdef"

// AppendHex8 appends b as two lowercase hex digits.
func AppendHex8(buf []byte, b byte) []byte {
	return append(buf, hexd[b>>4], hexd[b&0xF])
}

// U32Hex writes 8-digit lowercase hex without 0x, zero-padded, into the end
// of buf and returns the used slice.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// HexDigit decodes a single hex digit (either case).
func HexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParseHex8 decodes two hex digits into a byte.
func ParseHex8(hi, lo byte) (byte, bool) {
	h, ok1 := HexDigit(hi)
	l, ok2 := HexDigit(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}
