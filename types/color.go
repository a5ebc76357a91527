package types

// RGB is an unscaled colour as authored in the profile.
type RGB struct {
	R, G, B uint8
}

// Palette holds the three colours the LED mapper uses.
type Palette struct {
	Released RGB // shared neutral colour
	Primary  RGB // accent for BT-A..BT-D
	Special  RGB // accent for FX-L/FX-R
}

// DefaultPalette matches the stock controller colours.
func DefaultPalette() Palette {
	return Palette{
		Released: RGB{100, 100, 100},
		Primary:  RGB{52, 108, 239},
		Special:  RGB{252, 178, 20},
	}
}
