package inspect

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"bmpview/bmp"
	"bmpview/parallel"
	"bmpview/scan"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Paths      []string `arg:"" optional:"" help:"Bitmap files or folders to scan"`
	CrossCheck bool     `help:"Compare decoded pixels with golang.org/x/image/bmp" default:"false"`
	Files      []string `kong:"-"`
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

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	var portraitCount, landscapeCount, errCount atomic.Uint64
	for _, name := range c.Files {
		name := name
		worker(func() {
			logger := slog.Default().With("file", name)

			report, err := Inspect(name, c.CrossCheck)
			if err != nil {
				errCount.Add(1)
				logger.Error("invalid bitmap", "error", err)
				return
			}

			if report.Portrait {
				portraitCount.Add(1)
			} else {
				landscapeCount.Add(1)
			}
			logger.Info("bitmap", report.attrs()...)
		})
	}

	wait()

	portraits, landscapes, errors := portraitCount.Load(), landscapeCount.Load(), errCount.Load()
	slog.Info("stats", "portraits", portraits, "landscapes", landscapes, "errors", errors,
		"total", portraits+landscapes+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

// Inspect decodes one file and describes it.
func Inspect(name string, crossCheck bool) (Report, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return Report{}, fmt.Errorf("could not read %q: %w", name, err)
	}

	img, err := bmp.Decode(raw)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		FileHeader: img.FileHeader,
		InfoHeader: img.InfoHeader,
		Width:      img.Width,
		Height:     img.Height,
		Portrait:   img.Height > img.Width,
	}
	r.RowSize, r.Stride = bmp.RowStride(uint32(img.Width), img.InfoHeader.BitsPerPixel)

	if crossCheck {
		if r.Reference, err = crossCheckOrder(raw); err != nil {
			return r, err
		}
	}
	return r, nil
}

type Report struct {
	FileHeader bmp.FileHeader
	InfoHeader bmp.InfoHeader
	Width      int
	Height     int
	RowSize    uint64
	Stride     uint64
	Portrait   bool
	Reference  Match // set by cross-checking only
}

func (r Report) attrs() []any {
	rows := "bottom-up"
	if r.InfoHeader.TopDown() {
		rows = "top-down"
	}

	attrs := []any{
		"type", string(r.FileHeader.Type[:]),
		"size", r.FileHeader.Size,
		"offset", r.FileHeader.DataOffset,
		"width", r.Width,
		"height", r.Height,
		"bpp", r.InfoHeader.BitsPerPixel,
		"stride", r.Stride,
		"padding", r.Stride - r.RowSize,
		"rows", rows,
		"portrait", r.Portrait,
	}
	if r.Reference != MatchUnchecked {
		attrs = append(attrs, "reference", r.Reference.String())
	}
	return attrs
}
