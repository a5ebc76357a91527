package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo < v && v < hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return v > lo && v < hi
}

// SatU8 converts an unsigned value to uint8, saturating at 255.
func SatU8[T constraints.Unsigned](v T) uint8 {
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
