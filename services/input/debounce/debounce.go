// Package debounce turns raw pin readings into stable logical levels.
//
// Each channel keeps a hysteresis counter of consecutive readings that
// disagree with its current level. The level flips once the counter
// exceeds the channel threshold, so a change needs threshold+1 agreeing
// samples in a row.
package debounce

import (
	"time"

	"padcode-go/services/hal/core"
	"padcode-go/types"
	"padcode-go/x/mathx"
	"padcode-go/x/timex"
)

const (
	ThresholdEncoder uint8 = 1
	ThresholdButton  uint8 = 3
)

type channel struct {
	count     uint8
	threshold uint8
	level     bool
}

// Sampler owns the debounced level of every monitored pin.
type Sampler struct {
	in    core.InputReader
	timer core.SampleTimer
	clock core.Clock

	ch [types.NumPins]channel

	stats    types.DebounceStats
	lastFire time.Duration
	fired    bool
}

// New returns a sampler with every level false and every counter zero.
// timer and clock may be nil when only Sample is used.
func New(in core.InputReader, timer core.SampleTimer, clock core.Clock) *Sampler {
	s := &Sampler{in: in, timer: timer, clock: clock}
	for p := range s.ch {
		if types.PinID(p).IsEncoderPhase() {
			s.ch[p].threshold = ThresholdEncoder
		} else {
			s.ch[p].threshold = ThresholdButton
		}
	}
	s.stats.Min = 0xff
	return s
}

// Sample advances every channel by exactly one reading.
func (s *Sampler) Sample() {
	for p := range s.ch {
		c := &s.ch[p]
		if s.in.Read(types.PinID(p)) != c.level {
			c.count++
			if c.count > c.threshold {
				c.level = !c.level
				c.count = 0
			}
		} else {
			c.count = 0
		}
	}
}

// Poll samples once if the debounce timer has expired and rearms it.
// It reports whether a sample was taken.
func (s *Sampler) Poll() bool {
	if !s.timer.Expired() {
		return false
	}
	s.Sample()
	s.timer.Rearm()
	s.observe()
	return true
}

func (s *Sampler) observe() {
	if s.clock == nil {
		return
	}
	now := s.clock.Now()
	if s.fired {
		d := mathx.SatU8(timex.Counts4us(now - s.lastFire))
		s.stats.Avg = mathx.EMA(s.stats.Avg, d)
		if d < s.stats.Min {
			s.stats.Min = d
		}
		if d > s.stats.Max {
			s.stats.Max = d
		}
	}
	s.lastFire = now
	s.fired = true
}

// Level returns the debounced level of pin.
func (s *Sampler) Level(pin types.PinID) bool { return s.ch[pin].level }

// Threshold returns the trigger count configured for pin.
func (s *Sampler) Threshold(pin types.PinID) uint8 { return s.ch[pin].threshold }

// Stats returns the timer interval diagnostics gathered by Poll.
func (s *Sampler) Stats() types.DebounceStats { return s.stats }
