package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"bmpview/argb"
)

type Axis int

const (
	AxisX Axis = iota // mirror columns
	AxisY             // mirror rows
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxes reads a flip list such as "x", "y", "xy" or "none".
func ParseAxes(s string) ([]Axis, error) {
	if s == "none" || s == "" {
		return nil, nil
	}

	var axes []Axis
	for _, r := range s {
		switch r {
		case 'x', 'X':
			axes = append(axes, AxisX)
		case 'y', 'Y':
			axes = append(axes, AxisY)
		default:
			return nil, fmt.Errorf("invalid flip axis %q in %q", r, s)
		}
	}
	return axes, nil
}

type Image struct {
	// Pix holds packed argb values, row-major. The pixel at (x, y) is
	// Pix[y*Width + x].
	Pix    []uint32
	Width  int
	Height int
}

var _ draw.Image = &Image{}

// New wraps pix, which must hold exactly width*height pixels.
func New(pix []uint32, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("negative resolution %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("resolution %dx%d and pixel count %d mismatch", width, height, len(pix))
	}

	return &Image{Pix: pix, Width: width, Height: height}, nil
}

func Filled(width, height int, v uint32) *Image {
	pix := make([]uint32, width*height)
	for i := range pix {
		pix[i] = v
	}

	return &Image{Pix: pix, Width: width, Height: height}
}

func (m *Image) Pixel(x, y int) uint32 {
	return m.Pix[y*m.Width+x]
}

func (m *Image) SetPixel(x, y int, v uint32) {
	m.Pix[y*m.Width+x] = v
}

func (m *Image) ColorModel() color.Model {
	return argb.Model
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return argb.Color{}
	}

	return argb.Unpack(m.Pixel(x, y))
}

func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return
	}

	m.SetPixel(x, y, argb.Model.Convert(c).(argb.Color).Pack())
}

// Flip mirrors the image in place. Applying the same flip twice restores the
// original pixels.
func (m *Image) Flip(axis Axis) {
	switch axis {
	case AxisX:
		for y := 0; y < m.Height; y++ {
			row := m.Pix[y*m.Width : (y+1)*m.Width]
			for x := 0; x < m.Width/2; x++ {
				row[x], row[m.Width-1-x] = row[m.Width-1-x], row[x]
			}
		}
	case AxisY:
		for y := 0; y < m.Height/2; y++ {
			top := m.Pix[y*m.Width : (y+1)*m.Width]
			bottom := m.Pix[(m.Height-1-y)*m.Width : (m.Height-y)*m.Width]
			for x := 0; x < m.Width; x++ {
				top[x], bottom[x] = bottom[x], top[x]
			}
		}
	}
}

func (m *Image) Clone() *Image {
	pix := make([]uint32, len(m.Pix))
	copy(pix, m.Pix)

	return &Image{Pix: pix, Width: m.Width, Height: m.Height}
}
