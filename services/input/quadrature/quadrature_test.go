package quadrature

import "testing"

// feed drives c from phase state prev to next and returns the delta change.
func feed(c *Channel, prev, next uint8) int8 {
	c.Advance(prev&2 != 0, prev&1 != 0)
	c.Reset()
	c.Advance(next&2 != 0, next&1 != 0)
	return c.Delta()
}

func TestTransitionTable(t *testing.T) {
	want := [16]int8{0, -1, 1, 0, 1, 0, 0, -1, -1, 0, 0, 1, 0, 1, -1, 0}
	for idx := uint8(0); idx < 16; idx++ {
		var c Channel
		got := feed(&c, idx>>2, idx&3)
		if got != want[idx] {
			t.Fatalf("index %04b: delta %d, want %d", idx, got, want[idx])
		}
		if c.History() != idx {
			t.Fatalf("history = %04b, want %04b", c.History(), idx)
		}
	}
}

func TestInvalidJumpsIgnored(t *testing.T) {
	for _, idx := range []uint8{0, 3, 6, 9, 12, 5, 10, 15} {
		var c Channel
		if got := feed(&c, idx>>2, idx&3); got != 0 {
			t.Fatalf("index %04b: delta %d, want 0", idx, got)
		}
	}
}

// rotate applies n full forward Gray-code steps (00 -> 10 -> 11 -> 01 -> 00).
func rotate(c *Channel, n int) {
	seq := [4][2]bool{{true, false}, {true, true}, {false, true}, {false, false}}
	for i := 0; i < n; i++ {
		s := seq[i%4]
		c.Advance(s[0], s[1])
	}
}

func TestForwardRotationCounts(t *testing.T) {
	var c Channel
	c.Advance(false, false)
	rotate(&c, 8)
	if got := c.Delta(); got != 8 {
		t.Fatalf("delta = %d, want 8", got)
	}
}

func TestSaturatesHigh(t *testing.T) {
	var c Channel
	c.Advance(false, false)
	rotate(&c, 1000)
	if got := c.Delta(); got != DeltaMax {
		t.Fatalf("delta = %d, want %d", got, DeltaMax)
	}
}

func TestSaturatesLow(t *testing.T) {
	var c Channel
	seq := [4][2]bool{{false, true}, {true, true}, {true, false}, {false, false}}
	c.Advance(false, false)
	for i := 0; i < 1000; i++ {
		s := seq[i%4]
		c.Advance(s[0], s[1])
		if c.Delta() > 0 {
			t.Fatalf("wrapped positive at step %d: %d", i, c.Delta())
		}
	}
	if got := c.Delta(); got != DeltaMin {
		t.Fatalf("delta = %d, want %d", got, DeltaMin)
	}
}

func TestHistoryUpdatesWhileSaturated(t *testing.T) {
	var c Channel
	c.Advance(false, false)
	rotate(&c, 1000)
	c.Advance(false, true) // from 00: index 0001
	if c.History() != 0b0001 {
		t.Fatalf("history = %04b, want 0001", c.History())
	}
	c.Reset()
	c.Advance(false, false) // 0100 -> +1
	if got := c.Delta(); got != 1 {
		t.Fatalf("delta after reset = %d, want 1", got)
	}
}

func TestResetThenRead(t *testing.T) {
	var c Channel
	c.Advance(false, false)
	rotate(&c, 5)
	c.Reset()
	if c.Delta() != 0 {
		t.Fatal("Delta after Reset != 0")
	}
	rotate(&c, 3)
	if got := c.Take(); got == 0 {
		t.Fatal("Take returned 0 after motion")
	}
	if c.Delta() != 0 {
		t.Fatal("Take did not clear")
	}
}
