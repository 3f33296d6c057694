// Package preview puts decoded images on screen.
package preview

import (
	"bufio"
	"fmt"
	"io"

	"bmpview/argb"
)

// Surface accepts a packed argb pixel buffer and shows it.
type Surface interface {
	Blit(pix []uint32, width, height int) error
}

// Terminal draws every pixel as a cell with a 24-bit ANSI background color.
// Alpha is ignored.
type Terminal struct {
	W    io.Writer
	Cell string
}

var _ Surface = &Terminal{}

func (t *Terminal) Blit(pix []uint32, width, height int) error {
	if len(pix) != width*height {
		return fmt.Errorf("resolution %dx%d and pixel count %d mismatch", width, height, len(pix))
	}

	cell := t.Cell
	if cell == "" {
		cell = "  "
	}

	w := bufio.NewWriter(t.W)
	for y := 0; y < height; y++ {
		for _, v := range pix[y*width : (y+1)*width] {
			c := argb.Unpack(v)
			if _, err := fmt.Fprintf(w, "\033[48;2;%d;%d;%dm%s", c.R, c.G, c.B, cell); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\033[0m\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}
