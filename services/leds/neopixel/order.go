package neopixel

import (
	"strings"

	"padcode-go/errcode"
)

// Order maps the R, G and B arguments to their byte offsets within a pixel.
type Order struct{ R, G, B uint8 }

var (
	OrderGRB = Order{R: 1, G: 0, B: 2}
	OrderRGB = Order{R: 0, G: 1, B: 2}
	OrderRBG = Order{R: 0, G: 2, B: 1}
	OrderGBR = Order{R: 2, G: 0, B: 1}
	OrderBRG = Order{R: 1, G: 2, B: 0}
	OrderBGR = Order{R: 2, G: 1, B: 0}
)

// ParseOrder accepts a three letter wire order such as "grb".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "", "grb":
		return OrderGRB, nil
	case "rgb":
		return OrderRGB, nil
	case "rbg":
		return OrderRBG, nil
	case "gbr":
		return OrderGBR, nil
	case "brg":
		return OrderBRG, nil
	case "bgr":
		return OrderBGR, nil
	}
	return OrderGRB, errcode.Wrap(errcode.InvalidParams, "neopixel.order", s)
}
