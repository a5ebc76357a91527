package main

import (
	"context"
	"io"
	"time"

	"padcode-go/services/config"
	"padcode-go/services/diag"
	"padcode-go/services/hal/platform"
	"padcode-go/services/hal/platform/boards"
	"padcode-go/services/scheduler"
	"padcode-go/services/usbhid"
)

// Firmware entry. Host builds idle on the simulated board with its
// throttled profile; cmd/padsim drives a scripted session instead.
func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot", boards.Selected.Name)

	prof, err := config.Load(platform.ProfileName())
	if err != nil {
		println("[main] profile:", err.Error(), "(using defaults)")
	}

	plat := platform.Default(prof.SampleHz)

	var out io.Writer = platform.Console()
	if prof.Diag.UART {
		if u, err := platform.DiagUART(); err != nil {
			println("[main] diag uart:", err.Error())
		} else {
			out = diag.Tee{out, u}
		}
	}
	rep := diag.New(out, plat.Clock(), prof.Diag.Interval)

	loop, err := scheduler.New(scheduler.Deps{
		Platform: plat,
		Profile:  prof,
		Reporter: rep,
		NumLEDs:  boards.Selected.NumLEDs,
	})
	if err != nil {
		println("[main] loop:", err.Error())
	}
	loop.Attach(usbhid.New(loop, usbhid.Default()))

	println("[main] running")
	loop.Start()
	loop.Run(context.Background())
}
