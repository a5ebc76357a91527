package boards

import "padcode-go/types"

// Pico is the controller built on a Raspberry Pi Pico.
var Pico = Board{
	Name: "pico",
	Inputs: [types.NumPins]int{
		types.PinEncLeftA:  2,
		types.PinEncLeftB:  3,
		types.PinEncRightA: 4,
		types.PinEncRightB: 5,
		types.PinBTA:       6,
		types.PinBTB:       7,
		types.PinBTC:       8,
		types.PinBTD:       9,
		types.PinFXL:       10,
		types.PinFXR:       11,
		types.PinStart:     12,
	},
	ActiveLow: true,
	LEDData:   16,
	NumLEDs:   12,
	UART0TX:   0,
	UART0RX:   1,
	UARTBaud:  115200,
}

// Selected is the board this build targets.
var Selected = &Pico
