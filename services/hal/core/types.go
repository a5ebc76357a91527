package core

import (
	"time"

	"padcode-go/types"
)

// ---- Platform capabilities ----
//
// Everything the pipeline needs from the board is expressed here so the
// decode and protocol logic can run against a simulated platform.

// InputReader returns the logical (active = true) state of a monitored line.
// Polarity handling lives in the implementation.
type InputReader interface {
	Read(pin types.PinID) bool
}

// SampleTimer is a periodic compare-match condition that is polled, not
// interrupt driven.
type SampleTimer interface {
	Expired() bool
	Rearm()
}

// Clock is a free-running monotonic clock used for diagnostics only.
type Clock interface {
	Now() time.Duration
}

// Line is a bit-banged data line. Pulse drives it high for high and then low
// for low; both durations must be honoured to the nanosecond class.
type Line interface {
	Pulse(high, low time.Duration)
}

// ByteWriter is a hardware-timed encoder that emits one byte, MSB first,
// in the single-wire LED protocol.
type ByteWriter interface {
	WriteByte(c byte) error
}

// Interrupts masks and restores maskable interrupts.
type Interrupts interface {
	Disable() uintptr
	Restore(state uintptr)
}

// LEDWire is the LED data line plus the interrupt control needed to keep
// its timing. Exactly one of Line or ByteWriter is used per platform: if
// Encoder returns non-nil it wins.
type LEDWire interface {
	Interrupts
	Line
	Encoder() ByteWriter
}

// Platform bundles the capabilities one controller board provides.
type Platform interface {
	InputReader
	Timer() SampleTimer
	Clock() Clock
	LED() LEDWire
}
