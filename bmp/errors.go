package bmp

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat matches, through errors.Is, every error the decoder
// returns for malformed or unsupported input.
var ErrInvalidFormat = errors.New("bmp: invalid format")

type invalidFormat struct{}

func (invalidFormat) Is(target error) bool { return target == ErrInvalidFormat }

// TruncatedHeaderError reports a buffer too short to hold the headers.
type TruncatedHeaderError struct {
	invalidFormat
	Got  int
	Want int
}

func (e *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("bmp: truncated header: want at least %d bytes, got %d", e.Want, e.Got)
}

// SizeMismatchError reports a file header size that disagrees with the
// number of bytes supplied.
type SizeMismatchError struct {
	invalidFormat
	Reported uint32
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("bmp: file header claims %d bytes, but there are %d", e.Reported, e.Actual)
}

// UnsupportedDepthError reports a bit depth other than 24 or 32.
type UnsupportedDepthError struct {
	invalidFormat
	Got uint16
}

func (e *UnsupportedDepthError) Error() string {
	return fmt.Sprintf("bmp: only 24 and 32 bits per pixel are supported, got %d", e.Got)
}

// UnsupportedHeaderError reports an info header that is not 40 bytes long.
type UnsupportedHeaderError struct {
	invalidFormat
	Got uint32
}

func (e *UnsupportedHeaderError) Error() string {
	return fmt.Sprintf("bmp: only the %d-byte info header is supported, got %d", InfoHeaderSize, e.Got)
}

// UnsupportedCompressionError reports any compression other than none.
type UnsupportedCompressionError struct {
	invalidFormat
	Got uint32
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("bmp: only uncompressed images are supported, got compression %d", e.Got)
}

// BadOffsetError reports pixel data that would overlap the headers.
type BadOffsetError struct {
	invalidFormat
	Offset uint32
}

func (e *BadOffsetError) Error() string {
	return fmt.Sprintf("bmp: pixel data offset %d is inside the %d-byte header", e.Offset, HeaderSize)
}

// GeometryMismatchError reports that the data offset plus the padded pixel
// rows do not add up to the buffer length.
type GeometryMismatchError struct {
	invalidFormat
	Width        uint32
	Height       uint32
	BitsPerPixel uint16
	Padding      uint64 // per row
	DataOffset   uint32
	Expected     uint64 // zero when the computation overflowed
	Overflow     bool
	Actual       int
}

func (e *GeometryMismatchError) Error() string {
	expected := fmt.Sprint(e.Expected)
	if e.Overflow {
		expected = "more than 2^64"
	}
	return fmt.Sprintf("bmp: width %d, height %d, %d bits per pixel, %d bytes of row padding and data offset %d "+
		"need %s bytes, got %d", e.Width, e.Height, e.BitsPerPixel, e.Padding, e.DataOffset, expected, e.Actual)
}
