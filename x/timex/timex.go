package timex

import "time"

// PeriodFromHz returns the period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) time.Duration {
	if freqHz == 0 {
		freqHz = 1
	}
	return time.Duration(1_000_000_000 / uint64(freqHz))
}

// Tick4us is the resolution of the debounce diagnostics.
const Tick4us = 4 * time.Microsecond

// Counts4us converts d to whole 4 µs counts; negative durations give 0.
func Counts4us(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	return uint32(d / Tick4us)
}
