package config

// -----------------------------------------------------------------------------
// Embedded profiles
//
// Key: board name (see boards.Selected.Name)
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

const profilePico = `{
  "brightness": 100,
  "channel_order": "grb",
  "sample_hz": 4000,
  "colors": {
    "released": [100, 100, 100],
    "primary":  [52, 108, 239],
    "special":  [252, 178, 20]
  },
  "diag": {
    "interval_ms": 0,
    "uart": false,
    "deltas": false
  }
}`

const profileSim = `{
  "brightness": 255,
  "diag": { "interval_ms": 1000, "deltas": true }
}`

var embeddedProfiles = map[string][]byte{
	"pico": []byte(profilePico),
	"sim":  []byte(profileSim),
}
