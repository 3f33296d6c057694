// Package bmp decodes uncompressed 24- and 32-bit Windows bitmaps into packed
// argb pixel buffers.
//
// Decoding is strict: the declared file size, pixel depth, header layout and
// pixel geometry must all agree with the bytes supplied, otherwise no pixels
// are produced. Rows are returned in the order they appear in the file; use
// raster.Image.Flip to turn a bottom-up image upright.
package bmp

import (
	"fmt"
	"math/bits"

	"bmpview/argb"
	"bmpview/raster"
)

// ChannelOrder selects how the bytes of one pixel map onto color channels.
type ChannelOrder int

const (
	// OrderRGB maps 24-bit pixels as R,G,B and 32-bit pixels as A,R,G,B in file
	// order. This is the default.
	OrderRGB ChannelOrder = iota
	// OrderBGR maps 24-bit pixels as B,G,R and 32-bit pixels as B,G,R,A, the
	// layout most encoders write.
	OrderBGR
)

func (o ChannelOrder) String() string {
	switch o {
	case OrderRGB:
		return "rgb"
	case OrderBGR:
		return "bgr"
	default:
		return fmt.Sprintf("ChannelOrder(%d)", int(o))
	}
}

// ParseChannelOrder maps the command line spelling of a channel order.
func ParseChannelOrder(s string) (ChannelOrder, error) {
	switch s {
	case "rgb", "":
		return OrderRGB, nil
	case "bgr":
		return OrderBGR, nil
	default:
		return OrderRGB, fmt.Errorf("unsupported channel order %q", s)
	}
}

// ParseStride maps the command line row stride mode to
// Options.SkipRowPadding: "literal" reads pixels back to back, "padded" skips
// each row's alignment bytes.
func ParseStride(s string) (skipRowPadding bool, err error) {
	switch s {
	case "literal", "":
		return false, nil
	case "padded":
		return true, nil
	default:
		return false, fmt.Errorf("unsupported row stride %q", s)
	}
}

// Options tune how pixel bytes are read after the headers validated.
type Options struct {
	Order ChannelOrder

	// SkipRowPadding reads every row at its 4-byte aligned offset. By default
	// pixel i is read at DataOffset+i*bytesPerPixel and the row padding
	// counted by the size check is never skipped.
	SkipRowPadding bool
}

// Image is a decoded bitmap together with the headers it was read from.
type Image struct {
	FileHeader FileHeader
	InfoHeader InfoHeader
	*raster.Image
}

// RowStride returns the unpadded and the 4-byte aligned length of one pixel
// row.
func RowStride(width uint32, bitsPerPixel uint16) (rowSize, padded uint64) {
	rowSize = uint64(width) * uint64(bitsPerPixel/8)
	padded = rowSize
	if rem := rowSize % 4; rem != 0 {
		padded += 4 - rem
	}
	return rowSize, padded
}

// Decode is DecodeWith using the default options.
func Decode(raw []byte) (*Image, error) {
	return DecodeWith(raw, Options{})
}

// DecodeWith validates raw as an uncompressed 24 or 32-bit bitmap and unpacks
// its pixels in file order. Rows are not reordered.
func DecodeWith(raw []byte, opts Options) (*Image, error) {
	fh, ih, err := ParseHeaders(raw)
	if err != nil {
		return nil, err
	}

	if uint64(fh.Size) != uint64(len(raw)) {
		return nil, &SizeMismatchError{Reported: fh.Size, Actual: len(raw)}
	}

	if ih.BitsPerPixel != 24 && ih.BitsPerPixel != 32 {
		return nil, &UnsupportedDepthError{Got: ih.BitsPerPixel}
	}
	if ih.Size != InfoHeaderSize {
		return nil, &UnsupportedHeaderError{Got: ih.Size}
	}
	if ih.Compression != 0 {
		return nil, &UnsupportedCompressionError{Got: ih.Compression}
	}
	if fh.DataOffset < HeaderSize {
		return nil, &BadOffsetError{Offset: fh.DataOffset}
	}

	width, height := abs32(ih.Width), abs32(ih.Height)
	rowSize, padded := RowStride(width, ih.BitsPerPixel)

	hi, data := bits.Mul64(padded, uint64(height))
	total, carry := bits.Add64(data, uint64(fh.DataOffset), 0)
	if hi != 0 || carry != 0 || total != uint64(len(raw)) {
		e := &GeometryMismatchError{
			Width:        width,
			Height:       height,
			BitsPerPixel: ih.BitsPerPixel,
			Padding:      padded - rowSize,
			DataOffset:   fh.DataOffset,
			Actual:       len(raw),
		}
		if hi != 0 || carry != 0 {
			e.Overflow = true
		} else {
			e.Expected = total
		}
		return nil, e
	}

	// Everything below fits in an int: it was just matched against len(raw).
	w, h := int(width), int(height)
	stride := int(rowSize)
	if opts.SkipRowPadding {
		stride = int(padded)
	}
	pix := extract(raw[fh.DataOffset:], w, h, int(ih.BitsPerPixel/8), stride, opts.Order)

	img, err := raster.New(pix, w, h)
	if err != nil {
		return nil, err
	}

	return &Image{
		FileHeader: fh,
		InfoHeader: ih,
		Image:      img,
	}, nil
}

func extract(data []byte, w, h, bpp, stride int, order ChannelOrder) []uint32 {
	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		row := data[y*stride:]
		for x := 0; x < w; x++ {
			p := row[x*bpp : x*bpp+bpp]
			var c argb.Color
			switch {
			case bpp == 3 && order == OrderBGR:
				c = argb.Color{A: 0xFF, R: p[2], G: p[1], B: p[0]}
			case bpp == 3:
				c = argb.Color{A: 0xFF, R: p[0], G: p[1], B: p[2]}
			case order == OrderBGR:
				c = argb.Color{A: p[3], R: p[2], G: p[1], B: p[0]}
			default:
				c = argb.Color{A: p[0], R: p[1], G: p[2], B: p[3]}
			}
			pix[y*w+x] = c.Pack()
		}
	}

	return pix
}

func abs32(v int32) uint32 {
	if v < 0 {
		return uint32(-int64(v))
	}
	return uint32(v)
}
