// Package usbhid is the USB side of the controller: it turns debounced
// buttons into keyboard keys and encoder motion into mouse movement.
package usbhid

import "padcode-go/types"

// Key is a HID keyboard usage the sink understands.
type Key uint8

const (
	KeyS Key = iota
	KeyD
	KeyK
	KeyL
	KeyV
	KeyM
	KeyEnter
)

// MouseScale multiplies encoder deltas into mouse counts.
const MouseScale = 16

// Keymap binds each button pin to its key.
var Keymap = [...]struct {
	Pin types.PinID
	Key Key
}{
	{types.PinBTA, KeyS},
	{types.PinBTB, KeyD},
	{types.PinBTC, KeyK},
	{types.PinBTD, KeyL},
	{types.PinFXL, KeyV},
	{types.PinFXR, KeyM},
	{types.PinStart, KeyEnter},
}

// Source is what the report pump reads from the input pipeline.
type Source interface {
	Level(pin types.PinID) bool
	TakeDelta(enc types.EncoderID) int8
}

// Sink delivers reports to the host.
type Sink interface {
	KeyDown(k Key) error
	KeyUp(k Key) error
	Move(dx, dy int)
}

// Reporter sends key transitions and accumulated motion once per Service.
type Reporter struct {
	src  Source
	sink Sink
	down [len(Keymap)]bool
}

func New(src Source, sink Sink) *Reporter {
	return &Reporter{src: src, sink: sink}
}

// Service runs one report iteration. It never blocks.
func (r *Reporter) Service() {
	for i, m := range Keymap {
		lvl := r.src.Level(m.Pin)
		if lvl == r.down[i] {
			continue
		}
		var err error
		if lvl {
			err = r.sink.KeyDown(m.Key)
		} else {
			err = r.sink.KeyUp(m.Key)
		}
		// Retry on the next iteration if the endpoint was busy.
		if err == nil {
			r.down[i] = lvl
		}
	}

	dx := int(r.src.TakeDelta(types.EncoderLeft)) * MouseScale
	dy := int(r.src.TakeDelta(types.EncoderRight)) * MouseScale
	if dx != 0 || dy != 0 {
		r.sink.Move(dx, dy)
	}
}

// Nop is a Sink that discards everything; used where no USB stack exists.
type Nop struct{}

func (Nop) KeyDown(Key) error { return nil }
func (Nop) KeyUp(Key) error   { return nil }
func (Nop) Move(int, int)     {}
