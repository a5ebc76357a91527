package types

// PinID identifies one monitored input line. The order is fixed: the four
// encoder phases first, then the buttons.
type PinID uint8

const (
	PinEncLeftA PinID = iota
	PinEncLeftB
	PinEncRightA
	PinEncRightB
	PinBTA
	PinBTB
	PinBTC
	PinBTD
	PinFXL
	PinFXR
	PinStart

	NumPins int = iota
)

var pinNames = [NumPins]string{
	"enc_left_a", "enc_left_b", "enc_right_a", "enc_right_b",
	"bt_a", "bt_b", "bt_c", "bt_d", "fx_l", "fx_r", "start",
}

func (p PinID) String() string {
	if int(p) >= NumPins {
		return "unknown"
	}
	return pinNames[p]
}

// IsEncoderPhase reports whether p carries a quadrature phase signal.
func (p PinID) IsEncoderPhase() bool { return p <= PinEncRightB }

// EncoderID selects one of the two rotary channels.
type EncoderID uint8

const (
	EncoderLeft EncoderID = iota
	EncoderRight

	NumEncoders int = iota
)

func (e EncoderID) String() string {
	switch e {
	case EncoderLeft:
		return "left"
	case EncoderRight:
		return "right"
	default:
		return "unknown"
	}
}

// Phases returns the A and B pins feeding encoder e.
func (e EncoderID) Phases() (a, b PinID) {
	if e == EncoderRight {
		return PinEncRightA, PinEncRightB
	}
	return PinEncLeftA, PinEncLeftB
}
