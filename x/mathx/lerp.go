package mathx

// LerpU16 blends a toward b with t in [0..65535] (Q16).
// Result is in [min(a,b), max(a,b)], rounded to nearest like Lerp.
func LerpU16(a, b, t uint16) uint16 {
	switch t {
	case 0:
		return a
	case 65535:
		return b
	}
	// 64-bit intermediates: 65535*65535 overflows int32.
	prod := (int64(b) - int64(a)) * int64(t)
	if prod >= 0 {
		prod += 65535 / 2
	} else {
		prod -= 65535 / 2
	}
	return uint16(int64(a) + prod/65535)
}
