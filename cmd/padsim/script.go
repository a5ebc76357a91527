package main

import (
	"sort"
	"time"

	"padcode-go/types"
)

// step sets one raw input at a point in simulated time.
type step struct {
	At     time.Duration
	Pin    types.PinID
	Active bool
}

// forward is one detent cycle of phase states (A, B) that decodes as +4.
var forward = [4][2]bool{{true, false}, {true, true}, {false, true}, {false, false}}

// rotate emits n detent cycles on enc starting at at, one phase change per
// gap. Negative n turns the other way.
func rotate(at time.Duration, enc types.EncoderID, n int, gap time.Duration) []step {
	a, b := enc.Phases()
	var out []step
	cycles, rev := n, false
	if n < 0 {
		cycles, rev = -n, true
	}
	for c := 0; c < cycles; c++ {
		for i := range forward {
			st := forward[i]
			if rev {
				// Reverse order ends at (0,0) as well.
				st = forward[(len(forward)-2-i+len(forward))%len(forward)]
			}
			out = append(out,
				step{At: at, Pin: a, Active: st[0]},
				step{At: at, Pin: b, Active: st[1]},
			)
			at += gap
		}
	}
	return out
}

// press holds pin for hold starting at at, with a short contact bounce on
// the leading edge.
func press(at time.Duration, pin types.PinID, hold time.Duration) []step {
	return []step{
		{At: at, Pin: pin, Active: true},
		{At: at + 100*time.Microsecond, Pin: pin, Active: false},
		{At: at + 200*time.Microsecond, Pin: pin, Active: true},
		{At: at + hold, Pin: pin, Active: false},
	}
}

func defaultScript() []step {
	var s []step
	s = append(s, press(5*time.Millisecond, types.PinBTA, 20*time.Millisecond)...)
	s = append(s, press(15*time.Millisecond, types.PinFXL, 10*time.Millisecond)...)
	s = append(s, rotate(40*time.Millisecond, types.EncoderLeft, 2, time.Millisecond)...)
	s = append(s, rotate(60*time.Millisecond, types.EncoderRight, -1, time.Millisecond)...)
	s = append(s, press(80*time.Millisecond, types.PinStart, 15*time.Millisecond)...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].At < s[j].At })
	return s
}
