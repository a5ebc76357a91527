package platform

import (
	"time"

	"padcode-go/services/hal/core"
	"padcode-go/types"
)

// Sim is a software platform. Inputs are set directly, the debounce timer
// fires when the simulated clock passes its period, and the LED line
// records every pulse it is asked to produce.
type Sim struct {
	raw    [types.NumPins]bool
	now    time.Duration
	period time.Duration
	armed  time.Duration

	Pulses []Pulse
	// Bytes collects output when UseEncoder is set.
	Bytes      []byte
	UseEncoder bool

	masked    int
	Criticals int
	// MaskedWrites counts pulses or bytes emitted with interrupts masked.
	MaskedWrites   int
	UnmaskedWrites int
}

var _ core.Platform = (*Sim)(nil)

// Pulse is one recorded high/low pair on the LED line.
type Pulse struct{ High, Low time.Duration }

// NewSim returns a simulated board whose timer fires every period.
func NewSim(period time.Duration) *Sim {
	return &Sim{period: period}
}

// Set drives the logical state of pin.
func (s *Sim) Set(pin types.PinID, active bool) { s.raw[pin] = active }

// Advance moves the simulated clock forward.
func (s *Sim) Advance(d time.Duration) { s.now += d }

func (s *Sim) Read(pin types.PinID) bool { return s.raw[pin] }

func (s *Sim) Timer() core.SampleTimer { return simTimer{s} }
func (s *Sim) Clock() core.Clock       { return simClock{s} }
func (s *Sim) LED() core.LEDWire       { return simWire{s} }

// Masked reports whether interrupts are currently disabled.
func (s *Sim) Masked() bool { return s.masked > 0 }

// ResetOutput forgets recorded LED output.
func (s *Sim) ResetOutput() {
	s.Pulses = s.Pulses[:0]
	s.Bytes = s.Bytes[:0]
	s.MaskedWrites, s.UnmaskedWrites = 0, 0
}

type simTimer struct{ s *Sim }

func (t simTimer) Expired() bool { return t.s.now-t.s.armed >= t.s.period }
func (t simTimer) Rearm()        { t.s.armed = t.s.now }

type simClock struct{ s *Sim }

func (c simClock) Now() time.Duration { return c.s.now }

type simWire struct{ s *Sim }

func (w simWire) Disable() uintptr {
	w.s.masked++
	w.s.Criticals++
	return uintptr(w.s.masked - 1)
}

func (w simWire) Restore(st uintptr) { w.s.masked = int(st) }

func (w simWire) Pulse(high, low time.Duration) {
	w.s.count()
	w.s.Pulses = append(w.s.Pulses, Pulse{High: high, Low: low})
	w.s.now += high + low
}

func (w simWire) Encoder() core.ByteWriter {
	if !w.s.UseEncoder {
		return nil
	}
	return simEncoder{w.s}
}

type simEncoder struct{ s *Sim }

func (e simEncoder) WriteByte(c byte) error {
	e.s.count()
	e.s.Bytes = append(e.s.Bytes, c)
	e.s.now += 8 * 1250 * time.Nanosecond
	return nil
}

func (s *Sim) count() {
	if s.masked > 0 {
		s.MaskedWrites++
	} else {
		s.UnmaskedWrites++
	}
}

// Decoded turns the recorded pulses back into bytes: a high phase longer
// than half the slot is a 1. Latch pulses (no high phase) are skipped.
func (s *Sim) Decoded() []byte {
	var out []byte
	var cur byte
	n := 0
	for _, p := range s.Pulses {
		if p.High == 0 {
			continue
		}
		cur <<= 1
		if p.High > 625*time.Nanosecond {
			cur |= 1
		}
		n++
		if n == 8 {
			out = append(out, cur)
			cur, n = 0, 0
		}
	}
	return out
}
