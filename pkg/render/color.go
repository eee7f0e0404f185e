// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves each channel toward white by delta.
func LightenColor(c color.RGBA, delta uint8) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+int(delta))),
		G: uint8(min(255, int(c.G)+int(delta))),
		B: uint8(min(255, int(c.B)+int(delta))),
		A: c.A,
	}
}
