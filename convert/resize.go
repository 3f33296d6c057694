package convert

import (
	"log/slog"
	"math"

	"bmpview/raster"

	"golang.org/x/image/draw"
)

// targetSize keeps the source aspect ratio when one of width or height is 0.
func targetSize(srcWidth, srcHeight, width, height int) (int, int) {
	switch {
	case width == 0 && height == 0:
		return srcWidth, srcHeight
	case srcWidth == 0 || srcHeight == 0:
		return srcWidth, srcHeight
	case width == 0:
		width = int(math.Round(float64(height) * float64(srcWidth) / float64(srcHeight)))
	case height == 0:
		height = int(math.Round(float64(width) * float64(srcHeight) / float64(srcWidth)))
	}

	return max(width, 1), max(height, 1)
}

func resize(logger *slog.Logger, img *raster.Image, width, height int) *raster.Image {
	destWidth, destHeight := targetSize(img.Width, img.Height, width, height)
	if destWidth == img.Width && destHeight == img.Height {
		return img
	}

	logger.Info("resizing", "width", destWidth, "height", destHeight)
	dest := raster.Filled(destWidth, destHeight, 0)
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dest
}
