// Package scheduler runs the cooperative input/LED loop.
//
// One Tick runs every step in a fixed order: debounce (when the sample
// timer has fired), quadrature decode, LED colour mapping, LED transmit
// when the frame changed, diagnostics, then one service pass of the USB
// collaborator. Nothing in a tick blocks.
package scheduler

import (
	"context"
	"errors"

	"padcode-go/errcode"
	"padcode-go/services/diag"
	"padcode-go/services/hal/core"
	"padcode-go/services/input/debounce"
	"padcode-go/services/input/quadrature"
	"padcode-go/services/leds/mapper"
	"padcode-go/services/leds/neopixel"
	"padcode-go/types"
)

// Collaborator is serviced once per loop iteration after the pipeline.
type Collaborator interface {
	Service()
}

// Deps are the components a Loop drives. Reporter and USB are optional.
// NumLEDs is the fitted chain length; zero means the length of the layout.
type Deps struct {
	Platform core.Platform
	Profile  types.Profile
	Reporter *diag.Reporter
	USB      Collaborator
	NumLEDs  int
}

type Loop struct {
	plat    core.Platform
	wire    core.LEDWire
	sampler *debounce.Sampler
	enc     [types.NumEncoders]quadrature.Channel
	strip   *neopixel.Strip
	leds    *mapper.Mapper
	rep     *diag.Reporter
	deltas  bool
	usb     Collaborator

	ticks     uint64
	transmits uint64
}

// New builds the pipeline. A bad channel order falls back to GRB and a
// chain shorter than the layout is sized up to it; both are reported in
// the returned error alongside a usable Loop.
func New(d Deps) (*Loop, error) {
	var errs []error
	order, err := neopixel.ParseOrder(d.Profile.ChannelOrder)
	if err != nil {
		errs = append(errs, err)
	}
	n := d.NumLEDs
	switch {
	case n == 0:
		n = mapper.NumLEDs
	case n < mapper.NumLEDs:
		errs = append(errs, errcode.Wrap(errcode.OutOfRange, "scheduler.new", "led chain shorter than layout"))
		n = mapper.NumLEDs
	}

	l := &Loop{
		plat:   d.Platform,
		wire:   d.Platform.LED(),
		rep:    d.Reporter,
		deltas: d.Profile.Diag.Deltas,
		usb:    d.USB,
	}
	l.sampler = debounce.New(d.Platform, d.Platform.Timer(), d.Platform.Clock())
	l.strip = neopixel.New(n, order)
	l.strip.SetBrightness(d.Profile.Brightness)
	l.leds = mapper.New(l.sampler, l.strip, d.Profile.Colors)
	return l, errors.Join(errs...)
}

// Attach sets the collaborator serviced at the end of each tick.
func (l *Loop) Attach(c Collaborator) { l.usb = c }

// Start paints the released pattern and pushes it to the LEDs.
func (l *Loop) Start() {
	l.leds.Reset()
	l.strip.Transmit(l.wire)
	l.transmits++
}

// Tick runs one loop iteration.
func (l *Loop) Tick() {
	l.ticks++
	if l.sampler.Poll() {
		for e := range l.enc {
			a, b := types.EncoderID(e).Phases()
			l.enc[e].Advance(l.sampler.Level(a), l.sampler.Level(b))
		}
	}
	if l.leds.Update() {
		l.strip.Transmit(l.wire)
		l.transmits++
	}
	if l.rep != nil {
		l.rep.Report(l.sampler.Stats())
		if l.deltas {
			l.rep.ReportDeltas(l.enc[types.EncoderLeft].Delta(), l.enc[types.EncoderRight].Delta())
		}
	}
	if l.usb != nil {
		l.usb.Service()
	}
}

// Run ticks until ctx is cancelled. The cancellation check is non-blocking.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		l.Tick()
	}
}

// ---- Accessors for the USB collaborator ----

func (l *Loop) Level(pin types.PinID) bool { return l.sampler.Level(pin) }

func (l *Loop) Delta(enc types.EncoderID) int8 { return l.enc[enc].Delta() }

func (l *Loop) ResetDelta(enc types.EncoderID) { l.enc[enc].Reset() }

// TakeDelta reads and clears the motion of enc.
func (l *Loop) TakeDelta(enc types.EncoderID) int8 { return l.enc[enc].Take() }

func (l *Loop) Stats() types.DebounceStats { return l.sampler.Stats() }

// Strip exposes the frame for inspection.
func (l *Loop) Strip() *neopixel.Strip { return l.strip }

// Bindings returns the button to LED pair layout driving the strip.
func (l *Loop) Bindings() []mapper.Binding { return l.leds.Bindings() }

// SetBrightness changes the scale used for subsequent LED writes.
func (l *Loop) SetBrightness(b uint8) { l.strip.SetBrightness(b) }

// Counters returns the number of ticks run and frames transmitted.
func (l *Loop) Counters() (ticks, transmits uint64) { return l.ticks, l.transmits }
