package types

// DebounceStats describes the observed interval between debounce timer
// firings, in 4 µs counts. Values saturate at 255.
type DebounceStats struct {
	Avg uint8
	Min uint8
	Max uint8
}
