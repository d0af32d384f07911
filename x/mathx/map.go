package mathx

// MapU16 maps x in [inMin,inMax] onto [outMin,outMax] for Q16 levels.
// Input outside the range clamps; a zero-width input range yields outMin.
// Either range may be descending.
func MapU16(x, inMin, inMax, outMin, outMax uint16) uint16 {
	y, err := Map(x, inMin, inMax, outMin, outMax)
	if err != nil {
		return outMin
	}
	return y
}
