// Package mapper colours the LED frame from debounced button levels.
package mapper

import (
	"padcode-go/types"
)

// Levels is the read side of the debounce sampler.
type Levels interface {
	Level(pin types.PinID) bool
}

// Pixels is the write side of the LED strip.
type Pixels interface {
	SetPixel(i int, r, g, b uint8)
}

// Class selects which accent a button uses when pressed.
type Class uint8

const (
	ClassPrimary Class = iota
	ClassSpecial
)

// Binding ties a button to the two LED slots it lights.
type Binding struct {
	Pin        types.PinID
	Class      Class
	LED1, LED2 int
}

// Layout is the fixed wiring of the controller's LED ring.
var Layout = [...]Binding{
	{Pin: types.PinBTA, Class: ClassPrimary, LED1: 3, LED2: 4},
	{Pin: types.PinBTB, Class: ClassPrimary, LED1: 2, LED2: 5},
	{Pin: types.PinBTC, Class: ClassPrimary, LED1: 1, LED2: 6},
	{Pin: types.PinBTD, Class: ClassPrimary, LED1: 0, LED2: 7},
	{Pin: types.PinFXL, Class: ClassSpecial, LED1: 9, LED2: 10},
	{Pin: types.PinFXR, Class: ClassSpecial, LED1: 8, LED2: 11},
}

// NumLEDs is the number of slots Layout addresses.
const NumLEDs = 12

type binding struct {
	Binding
	on, off types.RGB
	state   bool
}

// Mapper rewrites a binding's LED pair only when its debounced level
// changes.
type Mapper struct {
	levels Levels
	px     Pixels
	b      [len(Layout)]binding
}

func New(levels Levels, px Pixels, pal types.Palette) *Mapper {
	m := &Mapper{levels: levels, px: px}
	for i, l := range Layout {
		on := pal.Primary
		if l.Class == ClassSpecial {
			on = pal.Special
		}
		m.b[i] = binding{Binding: l, on: on, off: pal.Released}
	}
	return m
}

// Reset paints every bound slot with the released colour and forgets the
// recorded states.
func (m *Mapper) Reset() {
	for i := range m.b {
		b := &m.b[i]
		b.state = false
		m.paint(b, b.off)
	}
}

// Update compares each button against its last recorded level and repaints
// the pair on a transition. It reports whether anything was written.
func (m *Mapper) Update() bool {
	changed := false
	for i := range m.b {
		b := &m.b[i]
		lvl := m.levels.Level(b.Pin)
		if lvl == b.state {
			continue
		}
		b.state = lvl
		changed = true
		if lvl {
			m.paint(b, b.on)
		} else {
			m.paint(b, b.off)
		}
	}
	return changed
}

func (m *Mapper) paint(b *binding, c types.RGB) {
	m.px.SetPixel(b.LED1, c.R, c.G, c.B)
	m.px.SetPixel(b.LED2, c.R, c.G, c.B)
}

// Bindings returns the wiring in use.
func (m *Mapper) Bindings() []Binding { return Layout[:] }
