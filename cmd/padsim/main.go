// Command padsim runs the controller pipeline against the simulated board
// and logs what the firmware would do: debounced level changes, encoder
// motion, LED frames and debounce statistics.
package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"padcode-go/services/config"
	"padcode-go/services/diag"
	"padcode-go/services/hal/platform"
	"padcode-go/services/scheduler"
	"padcode-go/types"
	"padcode-go/x/timex"
)

var (
	profileName string
	duration    time.Duration
	tickStep    time.Duration
	verbose     bool

	mainCmd = &cobra.Command{
		Use:   "padsim",
		Short: "Replay a scripted controller session on the simulated board",
		Run:   runSim,
	}
)

func main() {
	mainCmd.Flags().StringVarP(&profileName, "profile", "p", "sim", "embedded profile to load")
	mainCmd.Flags().DurationVarP(&duration, "duration", "d", 120*time.Millisecond, "simulated time to run")
	mainCmd.Flags().DurationVar(&tickStep, "tick", 50*time.Microsecond, "simulated time between loop iterations")
	mainCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every LED frame")

	if err := mainCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, args []string) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if tickStep <= 0 {
		log.Fatalln("tick must be positive")
	}

	prof, err := config.Load(profileName)
	if err != nil {
		log.WithError(err).WithField("Profile", profileName).Warnln("using default profile")
	}
	log.WithFields(log.Fields{
		"Profile":    profileName,
		"Brightness": prof.Brightness,
		"Order":      prof.ChannelOrder,
		"SampleHz":   prof.SampleHz,
	}).Infoln("profile loaded")

	sim := platform.NewSim(timex.PeriodFromHz(prof.SampleHz))
	loop, err := scheduler.New(scheduler.Deps{
		Platform: sim,
		Profile:  prof,
		Reporter: diag.New(logWriter{}, sim.Clock(), prof.Diag.Interval),
	})
	if err != nil {
		log.WithError(err).Warnln("loop built with fallbacks")
	}

	loop.Start()
	logFrame(loop)
	replay(sim, loop, defaultScript(), duration, tickStep)

	for e := types.EncoderID(0); int(e) < types.NumEncoders; e++ {
		log.WithFields(log.Fields{
			"Encoder": e.String(),
			"Delta":   loop.Delta(e),
		}).Infoln("encoder total")
	}
	st := loop.Stats()
	ticks, frames := loop.Counters()
	log.WithFields(log.Fields{
		"Ticks":  ticks,
		"Frames": frames,
		"Avg":    st.Avg,
		"Min":    st.Min,
		"Max":    st.Max,
	}).Infoln("done")
}

// replay applies script to sim as simulated time passes, ticking loop every
// tick until the clock reaches until. Level changes and new frames are logged.
func replay(sim *platform.Sim, loop *scheduler.Loop, script []step, until, tick time.Duration) {
	var prev [types.NumPins]bool
	_, sent := loop.Counters()
	for now := sim.Clock().Now(); now < until; now = sim.Clock().Now() {
		for len(script) > 0 && script[0].At <= now {
			sim.Set(script[0].Pin, script[0].Active)
			script = script[1:]
		}

		loop.Tick()

		for p := types.PinID(0); int(p) < types.NumPins; p++ {
			if lv := loop.Level(p); lv != prev[p] {
				prev[p] = lv
				log.WithFields(log.Fields{
					"Pin":   p.String(),
					"State": lv,
					"At":    sim.Clock().Now().String(),
				}).Infoln("level changed")
			}
		}
		if _, n := loop.Counters(); n != sent {
			sent = n
			logFrame(loop)
		}
		sim.Advance(tick)
	}
}

func logFrame(loop *scheduler.Loop) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	s := loop.Strip()
	for _, b := range loop.Bindings() {
		r, g, bl := s.Pixel(b.LED1)
		log.WithFields(log.Fields{
			"Pin":  b.Pin.String(),
			"LEDs": [2]int{b.LED1, b.LED2},
			"R":    r,
			"G":    g,
			"B":    bl,
		}).Debugln("frame")
	}
}

// logWriter forwards diagnostic lines to the structured logger.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	n := len(p)
	for n > 0 && (p[n-1] == '\n' || p[n-1] == '\r') {
		n--
	}
	log.Debugln(string(p[:n]))
	return len(p), nil
}
