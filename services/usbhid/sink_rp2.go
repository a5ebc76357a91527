//go:build rp2040

package usbhid

import (
	"machine/usb/hid/keyboard"
	"machine/usb/hid/mouse"
)

var keycodes = [...]keyboard.Keycode{
	KeyS:     keyboard.KeyS,
	KeyD:     keyboard.KeyD,
	KeyK:     keyboard.KeyK,
	KeyL:     keyboard.KeyL,
	KeyV:     keyboard.KeyV,
	KeyM:     keyboard.KeyM,
	KeyEnter: keyboard.KeyEnter,
}

type keyPort interface {
	Down(c keyboard.Keycode) error
	Up(c keyboard.Keycode) error
}

type movePort interface {
	Move(vx, vy int)
}

type hidSink struct {
	kb keyPort
	ms movePort
}

// Default returns the TinyGo USB HID keyboard+mouse sink.
func Default() Sink {
	return hidSink{kb: keyboard.Port(), ms: mouse.Port()}
}

func (s hidSink) KeyDown(k Key) error { return s.kb.Down(keycodes[k]) }
func (s hidSink) KeyUp(k Key) error   { return s.kb.Up(keycodes[k]) }
func (s hidSink) Move(dx, dy int)     { s.ms.Move(dx, dy) }
