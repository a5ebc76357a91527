package neopixel

import (
	"bytes"
	"testing"
	"time"

	"padcode-go/errcode"
	"padcode-go/services/hal/platform"
)

func TestSetPixelScalesAndOrders(t *testing.T) {
	s := New(12, OrderGRB)
	s.SetPixel(3, 52, 108, 239)

	// (c*100)>>8 in G, R, B order.
	want := []byte{42, 20, 93}
	if got := s.Bytes()[9:12]; !bytes.Equal(got, want) {
		t.Fatalf("slot 3 bytes = %v, want %v", got, want)
	}
	r, g, b := s.Pixel(3)
	if r != 20 || g != 42 || b != 93 {
		t.Fatalf("Pixel(3) = %d,%d,%d", r, g, b)
	}
	if !s.Dirty() {
		t.Fatal("SetPixel did not mark the frame dirty")
	}
}

func TestBrightnessAppliesOnWriteOnly(t *testing.T) {
	s := New(2, OrderRGB)
	s.SetPixel(0, 200, 200, 200)
	s.SetBrightness(255)
	if r, _, _ := s.Pixel(0); r != 78 {
		t.Fatalf("existing pixel rescaled: r=%d, want 78", r)
	}
	s.SetPixel(1, 200, 200, 200)
	if r, _, _ := s.Pixel(1); r != 199 {
		t.Fatalf("new pixel r=%d, want 199", r)
	}
}

func TestSetPixelOutOfRangeIgnored(t *testing.T) {
	s := New(2, OrderGRB)
	s.SetPixel(-1, 1, 2, 3)
	s.SetPixel(2, 1, 2, 3)
	if s.Dirty() || !bytes.Equal(s.Bytes(), make([]byte, 6)) {
		t.Fatal("out-of-range write touched the frame")
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{
		"": OrderGRB, "grb": OrderGRB, "RGB": OrderRGB, "bgr": OrderBGR, "brg": OrderBRG,
	} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Fatalf("ParseOrder(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseOrder("rgbw"); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("ParseOrder(rgbw) err = %v", err)
	}
}

func TestTransmitBitBangMSBFirst(t *testing.T) {
	sim := platform.NewSim(250 * time.Microsecond)
	s := New(1, OrderRGB)
	s.SetBrightness(255)
	s.SetPixel(0, 0x81, 0x00, 0xff) // scaled to 0x80, 0x00, 0xfe

	s.Transmit(sim.LED())

	if got, want := len(sim.Pulses), 3*8+1; got != want {
		t.Fatalf("pulses = %d, want %d", got, want)
	}
	first := sim.Pulses[0]
	if first.High != T1High || first.High+first.Low != BitPeriod {
		t.Fatalf("first bit pulse = %+v, want a 1 slot", first)
	}
	if p := sim.Pulses[1]; p.High != T0High || p.High+p.Low != BitPeriod {
		t.Fatalf("second bit pulse = %+v, want a 0 slot", p)
	}
	if last := sim.Pulses[len(sim.Pulses)-1]; last.High != 0 || last.Low != ResetLow {
		t.Fatalf("missing latch pulse, got %+v", last)
	}
	if got, want := sim.Decoded(), []byte{0x80, 0x00, 0xfe}; !bytes.Equal(got, want) {
		t.Fatalf("decoded = %x, want %x", got, want)
	}
	if s.Dirty() {
		t.Fatal("Transmit left the frame dirty")
	}
}

func TestTransmitRunsMasked(t *testing.T) {
	sim := platform.NewSim(250 * time.Microsecond)
	s := New(4, OrderGRB)
	s.Transmit(sim.LED())

	if sim.UnmaskedWrites != 0 || sim.MaskedWrites == 0 {
		t.Fatalf("masked=%d unmasked=%d", sim.MaskedWrites, sim.UnmaskedWrites)
	}
	if sim.Criticals != 1 {
		t.Fatalf("critical sections = %d, want 1 per frame", sim.Criticals)
	}
	if sim.Masked() {
		t.Fatal("interrupts left masked after Transmit")
	}
}

func TestTransmitWithHardwareEncoder(t *testing.T) {
	sim := platform.NewSim(250 * time.Microsecond)
	sim.UseEncoder = true
	s := New(2, OrderGRB)
	s.SetPixel(1, 100, 100, 100)
	s.Transmit(sim.LED())

	if !bytes.Equal(sim.Bytes, s.Bytes()) {
		t.Fatalf("encoder bytes = %v, want %v", sim.Bytes, s.Bytes())
	}
	if len(sim.Pulses) != 0 {
		t.Fatal("bit-bang path used alongside the encoder")
	}
	if sim.UnmaskedWrites != 0 || sim.Masked() {
		t.Fatal("encoder output not confined to the critical section")
	}
}
