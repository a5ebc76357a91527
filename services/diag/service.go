package diag

import (
	"io"
	"time"

	"padcode-go/services/hal/core"
	"padcode-go/types"
	"padcode-go/x/conv"
)

// AppendStats appends the debounce diagnostic line to dst.
func AppendStats(dst []byte, st types.DebounceStats) []byte {
	dst = append(dst, "Debounce Stats: avg("...)
	dst = conv.AppendUint(dst, uint64(st.Avg))
	dst = append(dst, ") min("...)
	dst = conv.AppendUint(dst, uint64(st.Min))
	dst = append(dst, ") max("...)
	dst = conv.AppendUint(dst, uint64(st.Max))
	return append(dst, ") 4us counts\r\n"...)
}

// AppendDeltas appends the encoder motion line to dst.
func AppendDeltas(dst []byte, left, right int8) []byte {
	dst = append(dst, "Left: "...)
	dst = conv.AppendInt(dst, int64(left))
	dst = append(dst, ", Right: "...)
	dst = conv.AppendInt(dst, int64(right))
	return append(dst, "\r\n"...)
}

// Reporter writes the stats line to w at most once per interval. An
// interval of zero reports on every call.
type Reporter struct {
	w        io.Writer
	clock    core.Clock
	interval time.Duration

	last time.Duration
	sent bool
	buf  [64]byte
}

func New(w io.Writer, clock core.Clock, interval time.Duration) *Reporter {
	return &Reporter{w: w, clock: clock, interval: interval}
}

// Report emits one line if the interval has elapsed. Write errors are
// dropped: the output is observational.
func (r *Reporter) Report(st types.DebounceStats) bool {
	if r.w == nil {
		return false
	}
	if r.interval > 0 && r.clock != nil {
		now := r.clock.Now()
		if r.sent && now-r.last < r.interval {
			return false
		}
		r.last = now
	}
	r.sent = true
	_, _ = r.w.Write(AppendStats(r.buf[:0], st))
	return true
}

// ReportDeltas writes the encoder line when either channel moved. It is not
// throttled: motion is usually consumed by the USB side on the same tick.
func (r *Reporter) ReportDeltas(left, right int8) bool {
	if r.w == nil || (left == 0 && right == 0) {
		return false
	}
	_, _ = r.w.Write(AppendDeltas(r.buf[:0], left, right))
	return true
}

// Tee fans a diagnostic line out to several writers.
type Tee []io.Writer

func (t Tee) Write(p []byte) (int, error) {
	for _, w := range t {
		if w != nil {
			_, _ = w.Write(p)
		}
	}
	return len(p), nil
}
