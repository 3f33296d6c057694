// Package argb holds the canonical pixel representation: four 8-bit channels
// packed into a uint32 as alpha, red, green, blue from the most to the least
// significant byte.
package argb

import "image/color"

type Color struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

var Model = color.ModelFunc(argbConvert)

func argbConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Unpack splits a packed value back into its channels.
func Unpack(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

func (c Color) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA treats the channels as non-premultiplied, the same way BMP stores them.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}
