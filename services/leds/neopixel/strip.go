// Package neopixel owns the LED frame buffer and serializes it onto a
// single self-clocked data line (WS2812 timing).
package neopixel

import (
	"time"

	"padcode-go/services/hal/core"
	"padcode-go/x/mathx"
)

const (
	BytesPerPixel     = 3
	DefaultBrightness = 100
)

// Bit timing of one 1.25 µs slot. A 1 holds the line high longer than a 0.
const (
	BitPeriod = 1250 * time.Nanosecond
	T0High    = 312 * time.Nanosecond
	T1High    = 812 * time.Nanosecond
	ResetLow  = 50 * time.Microsecond
)

// Strip is the frame buffer plus the write-time brightness and channel order.
// Buffer bytes are already scaled and ordered for the wire.
type Strip struct {
	buf        []byte
	order      Order
	brightness uint8
	dirty      bool
}

// New returns a strip of n pixels, all dark.
func New(n int, order Order) *Strip {
	return &Strip{
		buf:        make([]byte, n*BytesPerPixel),
		order:      order,
		brightness: DefaultBrightness,
	}
}

func (s *Strip) Len() int { return len(s.buf) / BytesPerPixel }

// SetBrightness affects colours written after the call only.
func (s *Strip) SetBrightness(b uint8) { s.brightness = b }

func (s *Strip) Brightness() uint8 { return s.brightness }

// SetPixel writes a brightness-scaled colour into slot i in wire order.
// Out of range slots are ignored.
func (s *Strip) SetPixel(i int, r, g, b uint8) {
	if i < 0 || i >= s.Len() {
		return
	}
	p := s.buf[i*BytesPerPixel : (i+1)*BytesPerPixel]
	p[s.order.R] = mathx.ScaleU8(r, s.brightness)
	p[s.order.G] = mathx.ScaleU8(g, s.brightness)
	p[s.order.B] = mathx.ScaleU8(b, s.brightness)
	s.dirty = true
}

// Pixel returns the stored (scaled) colour of slot i.
func (s *Strip) Pixel(i int) (r, g, b uint8) {
	if i < 0 || i >= s.Len() {
		return 0, 0, 0
	}
	p := s.buf[i*BytesPerPixel : (i+1)*BytesPerPixel]
	return p[s.order.R], p[s.order.G], p[s.order.B]
}

// Bytes exposes the wire-ready buffer. Callers must not modify it.
func (s *Strip) Bytes() []byte { return s.buf }

// Dirty reports whether the buffer changed since the last Transmit.
func (s *Strip) Dirty() bool { return s.dirty }

// Transmit pushes the whole buffer onto the wire with interrupts masked for
// the full frame. There is no acknowledgement: a timing slip shows up only
// as wrong colours downstream.
func (s *Strip) Transmit(w core.LEDWire) {
	core.Critical(w, func() {
		if enc := w.Encoder(); enc != nil {
			for _, c := range s.buf {
				_ = enc.WriteByte(c)
			}
			return
		}
		for _, c := range s.buf {
			for bit := 7; bit >= 0; bit-- {
				if c&(1<<uint(bit)) != 0 {
					w.Pulse(T1High, BitPeriod-T1High)
				} else {
					w.Pulse(T0High, BitPeriod-T0High)
				}
			}
		}
		w.Pulse(0, ResetLow)
	})
	s.dirty = false
}
