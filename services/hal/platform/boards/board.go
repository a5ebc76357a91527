package boards

import "padcode-go/types"

// Board describes the one supported controller wiring: which GPIO carries
// each monitored line, where the LED data line is, and the debug UART.
// Pin mapping is fixed at build time.
type Board struct {
	Name string

	// Inputs are GPIO numbers indexed by types.PinID.
	Inputs [types.NumPins]int
	// ActiveLow means a pressed/engaged input reads low (pull-ups fitted).
	ActiveLow bool

	LEDData int
	NumLEDs int

	UART0TX, UART0RX int
	UARTBaud         uint32
}

// GPIO returns the GPIO number wired to pin.
func (b *Board) GPIO(pin types.PinID) int { return b.Inputs[pin] }
