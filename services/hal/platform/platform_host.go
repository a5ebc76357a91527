//go:build !rp2040

package platform

import (
	"io"
	"os"

	"padcode-go/errcode"
	"padcode-go/services/hal/core"
	"padcode-go/x/timex"
)

// Default returns an idle simulated board on hosts.
func Default(sampleHz uint32) core.Platform {
	return NewSim(timex.PeriodFromHz(sampleHz))
}

// DiagUART has no host equivalent.
func DiagUART() (io.Writer, error) {
	return nil, errcode.Wrap(errcode.Unsupported, "hal.uart0", "no uart on host")
}

// ProfileName selects the simulator profile on hosts; the firmware board
// profile assumes real pins and a running clock.
func ProfileName() string { return "sim" }

// Console is stdout on hosts.
func Console() io.Writer { return os.Stdout }
