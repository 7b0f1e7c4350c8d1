package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// PartColor returns the display color for the body part at index out of
// total. Hues span 0-200 degrees so neighboring parts stay visually
// distinct without wrapping back to the first part's color.
func PartColor(index, total int) color.RGBA {
	if total <= 1 {
		return color.RGBA{R: 255, A: 255}
	}
	position := float64(index) / float64(total-1)
	c := colorful.Hsv(position*200, 0.85, 0.95)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// blend mixes the two endpoint colors for a skeleton line, brightened the
// way the annotation canvas draws connections.
func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: clamp8((int(a.R) + int(b.R)) * 2 / 3),
		G: clamp8((int(a.G) + int(b.G)) * 2 / 3),
		B: clamp8((int(a.B) + int(b.B)) * 2 / 3),
		A: 255,
	}
}

func clamp8(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
