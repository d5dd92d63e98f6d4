// pkg/render/color.go
package render

import "image/color"

// Palette holds the three colours a counter screen uses.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Outline    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// SleepTint is multiplied over the canvas while the display is asleep.
func SleepTint() color.RGBA {
	return DarkenColor(color.RGBA{255, 255, 255, 255})
}
