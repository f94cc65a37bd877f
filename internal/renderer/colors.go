package renderer

import (
	"fmt"
	"image/color"
)

// darkenColor darkens a color by a percentage, keeping its alpha
func darkenColor(c color.NRGBA, percent int) color.NRGBA {
	factor := 1.0 - float64(percent)/100.0
	if factor < 0 {
		factor = 0
	}

	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// hexColor formats the RGB part of a color as #RRGGBB
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// opacity returns the alpha of a color in [0, 1]
func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}
