package debounce

import (
	"testing"
	"time"

	"padcode-go/types"
)

type fakeInputs struct{ raw [types.NumPins]bool }

func (f *fakeInputs) Read(p types.PinID) bool { return f.raw[p] }

type fakeTimer struct {
	expired bool
	rearms  int
}

func (t *fakeTimer) Expired() bool { return t.expired }
func (t *fakeTimer) Rearm()        { t.expired = false; t.rearms++ }

type fakeClock struct{ now time.Duration }

func (c *fakeClock) Now() time.Duration { return c.now }

func TestThresholds(t *testing.T) {
	s := New(&fakeInputs{}, nil, nil)
	for p := types.PinID(0); int(p) < types.NumPins; p++ {
		want := ThresholdButton
		if p.IsEncoderPhase() {
			want = ThresholdEncoder
		}
		if got := s.Threshold(p); got != want {
			t.Fatalf("Threshold(%s) = %d, want %d", p, got, want)
		}
	}
}

func TestButtonNeedsThresholdPlusOneSamples(t *testing.T) {
	in := &fakeInputs{}
	s := New(in, nil, nil)
	in.raw[types.PinBTA] = true

	for i := 1; i <= 3; i++ {
		s.Sample()
		if s.Level(types.PinBTA) {
			t.Fatalf("level toggled after %d samples, want 4", i)
		}
	}
	s.Sample()
	if !s.Level(types.PinBTA) {
		t.Fatal("level did not toggle on sample 4")
	}
}

func TestButtonBounceNeverToggles(t *testing.T) {
	in := &fakeInputs{}
	s := New(in, nil, nil)

	// Three differing samples, then back to the stable level, repeatedly.
	for round := 0; round < 5; round++ {
		in.raw[types.PinFXL] = true
		s.Sample()
		s.Sample()
		s.Sample()
		in.raw[types.PinFXL] = false
		s.Sample()
		if s.Level(types.PinFXL) {
			t.Fatalf("round %d: bounce toggled level", round)
		}
	}
}

func TestEncoderNeedsTwoSamples(t *testing.T) {
	in := &fakeInputs{}
	s := New(in, nil, nil)
	in.raw[types.PinEncLeftA] = true

	s.Sample()
	if s.Level(types.PinEncLeftA) {
		t.Fatal("encoder phase toggled after one sample")
	}
	s.Sample()
	if !s.Level(types.PinEncLeftA) {
		t.Fatal("encoder phase did not toggle after two samples")
	}

	// Counter resets after the toggle: release takes two more samples.
	in.raw[types.PinEncLeftA] = false
	s.Sample()
	if !s.Level(types.PinEncLeftA) {
		t.Fatal("released too early")
	}
	s.Sample()
	if s.Level(types.PinEncLeftA) {
		t.Fatal("did not release after two samples")
	}
}

func TestMatchingSampleResetsCounter(t *testing.T) {
	in := &fakeInputs{}
	s := New(in, nil, nil)

	in.raw[types.PinStart] = true
	s.Sample()
	s.Sample()
	in.raw[types.PinStart] = false
	s.Sample() // counter back to zero
	in.raw[types.PinStart] = true
	s.Sample()
	s.Sample()
	s.Sample()
	if s.Level(types.PinStart) {
		t.Fatal("counter was not reset by the matching sample")
	}
	s.Sample()
	if !s.Level(types.PinStart) {
		t.Fatal("expected toggle on fourth consecutive sample")
	}
}

func TestPollHonoursTimer(t *testing.T) {
	in := &fakeInputs{}
	tm := &fakeTimer{}
	s := New(in, tm, nil)
	in.raw[types.PinEncRightB] = true

	for i := 0; i < 10; i++ {
		if s.Poll() {
			t.Fatal("Poll sampled with timer not expired")
		}
	}
	if s.Level(types.PinEncRightB) {
		t.Fatal("level changed without samples")
	}

	tm.expired = true
	if !s.Poll() {
		t.Fatal("Poll did not sample on expiry")
	}
	tm.expired = true
	s.Poll()
	if !s.Level(types.PinEncRightB) {
		t.Fatal("expected toggle after two timed samples")
	}
	if tm.rearms != 2 {
		t.Fatalf("rearms = %d, want 2", tm.rearms)
	}
}

func TestStats(t *testing.T) {
	tm := &fakeTimer{}
	clk := &fakeClock{}
	s := New(&fakeInputs{}, tm, clk)

	if got := s.Stats(); got.Min != 0xff || got.Max != 0 || got.Avg != 0 {
		t.Fatalf("initial stats = %+v", got)
	}

	fire := func(at time.Duration) {
		clk.now = at
		tm.expired = true
		s.Poll()
	}
	// The first firing only records the time; then 63, 100 and a
	// saturated 255 counts.
	fire(0)
	fire(252 * time.Microsecond)
	fire(652 * time.Microsecond)
	fire(2 * time.Second)

	st := s.Stats()
	if st.Min != 63 {
		t.Fatalf("Min = %d, want 63", st.Min)
	}
	if st.Max != 255 {
		t.Fatalf("Max = %d, want 255", st.Max)
	}
	// 0 -> 18 -> (300+126)/10=42 -> (765+294)/10=105
	if st.Avg != 105 {
		t.Fatalf("Avg = %d, want 105", st.Avg)
	}
}
