package resolver

import (
	"fmt"
	"math"
)

// DefaultColor is the hex string used for unrecognized color observations.
const DefaultColor = "000000"

// channel scales a 0-1 component to 0-255, rounding half away from zero and
// clamping out-of-range operands.
func channel(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// HexRGB converts 0-1 RGB components to a 6-hex-digit uppercase string.
func HexRGB(r, g, b float64) string {
	return fmt.Sprintf("%02X%02X%02X", channel(r), channel(g), channel(b))
}

// HexCMYK converts CMYK components via channel = 255*(1-x)*(1-k).
func HexCMYK(c, m, y, k float64) string {
	r, g, b := CMYKToRGB(c, m, y, k)
	return HexRGB(r, g, b)
}

// HexGray replicates a single 0-1 gray value to all three channels.
func HexGray(gray float64) string {
	return HexRGB(gray, gray, gray)
}

// CMYKToRGB converts CMYK to RGB in the 0-1 range (approximate conversion).
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	r = (1 - c) * (1 - k)
	g = (1 - m) * (1 - k)
	b = (1 - y) * (1 - k)
	return r, g, b
}
