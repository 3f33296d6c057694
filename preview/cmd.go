package preview

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bmpview/bmp"
	"bmpview/raster"

	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"
)

type CLICmd struct {
	File     string      `arg:"" help:"Bitmap to show"`
	Flip     string      `help:"Flip axes: auto turns bottom-up bitmaps upright, or none, x, y, xy" default:"auto"`
	Order    string      `help:"Byte order of pixels in the file" enum:"rgb,bgr" default:"rgb"`
	Stride   string      `help:"Row layout: literal reads pixels back to back, padded skips the 4-byte row alignment" enum:"literal,padded" default:"literal"`
	MaxWidth int         `help:"Shrink wider images to this many cells, 0 to disable" default:"80"`
	Cell     string      `help:"Text printed for each pixel" default:"  "`
	Opts     bmp.Options `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	name, err := filepath.Abs(c.File)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", c.File, err)
	}
	c.File = name

	if c.MaxWidth < 0 {
		return fmt.Errorf("invalid max width: %d", c.MaxWidth)
	}

	if c.Flip != "auto" {
		if _, err := raster.ParseAxes(c.Flip); err != nil {
			return err
		}
	}

	if c.Opts.Order, err = bmp.ParseChannelOrder(c.Order); err != nil {
		return err
	}
	c.Opts.SkipRowPadding, err = bmp.ParseStride(c.Stride)
	return err
}

func (c *CLICmd) Run() error {
	return c.Show(&Terminal{W: os.Stdout, Cell: c.Cell})
}

func (c *CLICmd) Show(s Surface) error {
	logger := slog.Default().With("file", c.File)

	img, err := bmp.ReadFile(c.File, c.Opts)
	if err != nil {
		return err
	}
	if err = img.Orient(c.Flip); err != nil {
		return err
	}

	out := fit(img.Image, c.MaxWidth)
	logger.Debug("showing", "width", out.Width, "height", out.Height,
		"source_width", img.Width, "source_height", img.Height)

	return s.Blit(out.Pix, out.Width, out.Height)
}

// fit shrinks img to at most maxWidth columns, keeping the aspect ratio.
func fit(img *raster.Image, maxWidth int) *raster.Image {
	if maxWidth == 0 || img.Width <= maxWidth {
		return img
	}

	height := max(img.Height*maxWidth/img.Width, 1)
	dest := raster.Filled(maxWidth, height, 0)
	draw.NearestNeighbor.Scale(dest, dest.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dest
}
