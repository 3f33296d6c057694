package bmp

import (
	"fmt"
	"os"

	"bmpview/raster"
)

// ReadFile reads and decodes the named bitmap.
func ReadFile(name string, opts Options) (*Image, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}

	img, err := DecodeWith(raw, opts)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", name, err)
	}
	return img, nil
}

// Upright flips bottom-up images so that row 0 is the top of the picture.
func (img *Image) Upright() {
	if !img.InfoHeader.TopDown() {
		img.Flip(raster.AxisY)
	}
}

// Orient applies a flip mode as given on the command line: "auto" calls
// Upright, anything else is handed to raster.ParseAxes.
func (img *Image) Orient(mode string) error {
	if mode == "auto" {
		img.Upright()
		return nil
	}

	axes, err := raster.ParseAxes(mode)
	if err != nil {
		return err
	}
	for _, a := range axes {
		img.Flip(a)
	}
	return nil
}
