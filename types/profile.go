package types

import "time"

// Profile is the embedded controller configuration.
type Profile struct {
	Brightness   uint8
	ChannelOrder string // "grb", "rgb", ...
	Colors       Palette
	SampleHz     uint32
	Diag         DiagConfig
}

type DiagConfig struct {
	Interval time.Duration // 0 = every loop iteration
	UART     bool          // mirror to the debug UART where available
	Deltas   bool          // also print encoder motion when non-zero
}
