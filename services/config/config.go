package config

import (
	"time"

	"github.com/andreyvit/tinyjson"

	"padcode-go/errcode"
	"padcode-go/services/leds/neopixel"
	"padcode-go/types"
	"padcode-go/x/mathx"
)

const DefaultSampleHz = 4000 // 250 µs debounce period

// EmbeddedProfileLookup allows overriding how board profiles are resolved.
var EmbeddedProfileLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedProfiles[board]
	return b, ok
}

// Default returns the stock profile.
func Default() types.Profile {
	return types.Profile{
		Brightness:   neopixel.DefaultBrightness,
		ChannelOrder: "grb",
		Colors:       types.DefaultPalette(),
		SampleHz:     DefaultSampleHz,
	}
}

// Load resolves the embedded profile for board. On any error it returns
// the defaults together with the error so the caller can log and carry on.
func Load(board string) (types.Profile, error) {
	raw, ok := EmbeddedProfileLookup(board)
	if !ok || len(raw) == 0 {
		return Default(), errcode.Wrap(errcode.UnknownProfile, "config.load", board)
	}
	p, err := Decode(raw)
	if err != nil {
		return Default(), err
	}
	return p, nil
}

// Decode parses a JSON profile on top of the defaults. Unknown keys are
// skipped, numbers are clamped to their field range.
func Decode(raw []byte) (p types.Profile, err error) {
	p = Default()
	defer func() {
		if r := recover(); r != nil {
			p, err = Default(), payloadError(r)
		}
	}()

	r := tinyjson.Raw(raw)
	for key := r.StartObject(); key != nil; key = r.ContinueObject() {
		switch key.Str() {
		case "brightness":
			p.Brightness = uint8(mathx.Clamp(r.Int(), 0, 255))
		case "channel_order":
			p.ChannelOrder = r.Str()
			if _, oerr := neopixel.ParseOrder(p.ChannelOrder); oerr != nil {
				panic("channel_order " + p.ChannelOrder)
			}
		case "sample_hz":
			p.SampleHz = uint32(mathx.Clamp(r.Int(), 100, 20000))
		case "colors":
			decodePalette(&r, &p.Colors)
		case "diag":
			decodeDiag(&r, &p.Diag)
		default:
			r.Skip()
		}
	}
	r.EnsureEOF()
	return p, nil
}

// payloadError converts a tinyjson parse panic (always a string) into an
// invalid_payload error. Any other panic value is a bug and is re-raised.
func payloadError(r any) error {
	msg, ok := r.(string)
	if !ok {
		panic(r)
	}
	return &errcode.E{C: errcode.InvalidPayload, Op: "config.decode", Msg: msg}
}

func decodePalette(r *tinyjson.Raw, pal *types.Palette) {
	for key := r.StartObject(); key != nil; key = r.ContinueObject() {
		switch key.Str() {
		case "released":
			pal.Released = decodeRGB(r)
		case "primary":
			pal.Primary = decodeRGB(r)
		case "special":
			pal.Special = decodeRGB(r)
		default:
			r.Skip()
		}
	}
}

func decodeRGB(r *tinyjson.Raw) types.RGB {
	var c [3]uint8
	n := 0
	for r.StartArray(); r.ContinueArray(); {
		v := uint8(mathx.Clamp(r.Int(), 0, 255))
		if n < len(c) {
			c[n] = v
		}
		n++
	}
	if n != len(c) {
		panic("colour needs three components")
	}
	return types.RGB{R: c[0], G: c[1], B: c[2]}
}

func decodeDiag(r *tinyjson.Raw, d *types.DiagConfig) {
	for key := r.StartObject(); key != nil; key = r.ContinueObject() {
		switch key.Str() {
		case "interval_ms":
			d.Interval = time.Duration(mathx.Clamp(r.Int(), 0, 60_000)) * time.Millisecond
		case "uart":
			d.UART = r.Bool()
		case "deltas":
			d.Deltas = r.Bool()
		default:
			r.Skip()
		}
	}
}
