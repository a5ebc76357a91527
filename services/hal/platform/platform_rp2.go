//go:build rp2040

package platform

import (
	"io"
	"machine"
	"runtime/interrupt"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"

	"padcode-go/errcode"
	"padcode-go/services/hal/core"
	"padcode-go/services/hal/platform/boards"
	"padcode-go/types"
	"padcode-go/x/timex"
)

// rp2Platform reads the controller inputs straight from the GPIO block,
// polls a time-based compare condition for the debounce period and drives
// the LED chain through the cycle-timed ws2812 byte writer.
type rp2Platform struct {
	board  *boards.Board
	pins   [types.NumPins]machine.Pin
	timer  rp2Timer
	wire   rp2Wire
	origin time.Time
}

var _ core.Platform = (*rp2Platform)(nil)

// Default configures the selected board and returns its platform.
func Default(sampleHz uint32) core.Platform {
	b := boards.Selected
	p := &rp2Platform{board: b, origin: time.Now()}

	pull := machine.PinInputPulldown
	if b.ActiveLow {
		pull = machine.PinInputPullup
	}
	for id := range p.pins {
		pin := machine.Pin(b.Inputs[id])
		pin.Configure(machine.PinConfig{Mode: pull})
		p.pins[id] = pin
	}

	led := machine.Pin(b.LEDData)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.Low()
	p.wire = rp2Wire{pin: led, dev: ws2812.New(led)}

	p.timer = rp2Timer{period: timex.PeriodFromHz(sampleHz), armed: time.Now()}
	return p
}

// Read returns the logical state; with pull-ups a pressed input reads low.
func (p *rp2Platform) Read(id types.PinID) bool {
	return p.pins[id].Get() != p.board.ActiveLow
}

func (p *rp2Platform) Timer() core.SampleTimer { return &p.timer }
func (p *rp2Platform) Clock() core.Clock       { return p }
func (p *rp2Platform) LED() core.LEDWire       { return &p.wire }

func (p *rp2Platform) Now() time.Duration { return time.Since(p.origin) }

// ---- Debounce timer ----

type rp2Timer struct {
	period time.Duration
	armed  time.Time
}

func (t *rp2Timer) Expired() bool { return time.Since(t.armed) >= t.period }
func (t *rp2Timer) Rearm()        { t.armed = time.Now() }

// ---- LED wire ----

type rp2Wire struct {
	pin machine.Pin
	dev ws2812.Device
}

func (w *rp2Wire) Disable() uintptr         { return uintptr(interrupt.Disable()) }
func (w *rp2Wire) Restore(st uintptr)       { interrupt.Restore(interrupt.State(st)) }
func (w *rp2Wire) Encoder() core.ByteWriter { return w.dev }

// Pulse is the generic fallback; the ws2812 encoder is always used on RP2.
func (w *rp2Wire) Pulse(high, low time.Duration) {
	if high > 0 {
		w.pin.High()
		spin(high)
	}
	w.pin.Low()
	spin(low)
}

func spin(d time.Duration) {
	end := time.Now().Add(d)
	for time.Now().Before(end) {
	}
}

// ---- Diagnostics UART ----

// DiagUART configures UART0 on the board's debug pins for diagnostics.
func DiagUART() (io.Writer, error) {
	b := boards.Selected
	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: b.UARTBaud,
		TX:       machine.Pin(b.UART0TX),
		RX:       machine.Pin(b.UART0RX),
	}); err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "hal.uart0", Err: err}
	}
	return u, nil
}

// ProfileName is the embedded profile matching this board.
func ProfileName() string { return boards.Selected.Name }

// Console is the USB CDC serial port.
func Console() io.Writer { return machine.Serial }
