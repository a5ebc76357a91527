// Package quadrature decodes two debounced phase lines into a saturating
// relative-motion count.
package quadrature

import "padcode-go/x/mathx"

// Saturation bounds. The accumulator stops moving once it reaches either one.
const (
	DeltaMin int8 = -126
	DeltaMax int8 = 127
)

// steps is indexed by previous AB (high two bits) and new AB (low two bits).
var steps = [16]int8{0, -1, 1, 0, 1, 0, 0, -1, -1, 0, 0, 1, 0, 1, -1, 0}

// Channel is one rotary encoder.
type Channel struct {
	history uint8
	delta   int8
}

// Advance folds the new phase reading into the history and applies the
// transition table. The history always updates, even while saturated.
func (c *Channel) Advance(a, b bool) {
	var ab uint8
	if a {
		ab |= 2
	}
	if b {
		ab |= 1
	}
	c.history = (c.history<<2 | ab) & 0x0f
	if mathx.Between(c.delta, DeltaMin, DeltaMax) {
		c.delta += steps[c.history]
	}
}

// Delta returns the motion accumulated since the last reset.
func (c *Channel) Delta() int8 { return c.delta }

// Reset clears the accumulator; the phase history is kept.
func (c *Channel) Reset() { c.delta = 0 }

// Take returns the accumulated motion and clears it.
func (c *Channel) Take() int8 {
	d := c.delta
	c.delta = 0
	return d
}

// History returns the 4-bit transition index used by the last Advance.
func (c *Channel) History() uint8 { return c.history }
