package mathx

// ScaleU8 applies an 8-bit brightness to c as (c*b)>>8.
// Full brightness (255) therefore tops out at 254.
func ScaleU8(c, b uint8) uint8 {
	return uint8((uint16(c) * uint16(b)) >> 8)
}

// EMA folds sample into avg with weight 3/10 on the new value.
func EMA(avg, sample uint8) uint8 {
	return uint8((3*uint16(sample) + 7*uint16(avg)) / 10)
}
