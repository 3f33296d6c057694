package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"bmpview/bmp"
	"bmpview/parallel"
	"bmpview/raster"
	"bmpview/scan"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Paths  []string    `arg:"" optional:"" help:"Bitmap files or folders to scan"`
	Dest   string      `help:"Destination folder for converted pictures. Relative to the current folder if not absolute." default:"converted"`
	Format string      `help:"Output format" enum:"png,bmp,tiff,gif,jpeg" default:"png"`
	Flip   string      `help:"Flip axes: auto turns bottom-up bitmaps upright, or none, x, y, xy" default:"auto"`
	Order  string      `help:"Byte order of pixels in the source files" enum:"rgb,bgr" default:"rgb"`
	Stride string      `help:"Row layout: literal reads pixels back to back, padded skips the 4-byte row alignment" enum:"literal,padded" default:"literal"`
	Width  int         `help:"Resize to this width, keeping aspect ratio if height is 0" group:"resize"`
	Height int         `help:"Resize to this height, keeping aspect ratio if width is 0" group:"resize"`
	Files  []string    `kong:"-"`
	Opts   bmp.Options `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	files, err := scan.Files(c.Paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no bitmaps found in %v", c.Paths)
	}
	c.Files = files

	if c.Dest, err = filepath.Abs(c.Dest); err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}

	// All outputs share Dest, so base names must not collide.
	seen := make(map[string]string, len(files))
	for _, f := range files {
		name := outputName(filepath.Base(f), c.Format)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%q and %q would both be converted to %q", prev, f, name)
		}
		seen[name] = f
	}

	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
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

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, filePath := range c.Files {
		filePath := filePath
		worker(func() {
			logger := slog.Default().With("file", filePath)

			if err := c.convert(logger, filePath); err != nil {
				errCount.Add(1)
				logger.Error("could not convert image", "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) convert(logger *slog.Logger, filePath string) error {
	img, err := bmp.ReadFile(filePath, c.Opts)
	if err != nil {
		return err
	}

	if err = img.Orient(c.Flip); err != nil {
		return err
	}

	out := resize(logger, img.Image, c.Width, c.Height)

	dest, err := save(out, c.Format, c.Dest, filepath.Base(filePath))
	if err != nil {
		return err
	}
	logger.Info("converted", "to", dest, "width", out.Bounds().Dx(), "height", out.Bounds().Dy())
	return nil
}
