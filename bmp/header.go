package bmp

import "fmt"

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize
)

// FileHeader is the BITMAPFILEHEADER that opens every BMP file.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Type       [2]byte // "BM"
	Size       uint32  // claimed size of the whole file
	Reserved   uint32
	DataOffset uint32 // offset of the pixel array from the start of the file
}

// InfoHeader is the 40-byte BITMAPINFOHEADER following the file header.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // positive: rows stored bottom-up, negative: top-down
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	UsedColors      uint32
	ImportantColors uint32
}

// ParseFileHeader decodes the first FileHeaderSize bytes of b without
// validating them.
func ParseFileHeader(b []byte) (FileHeader, error) {
	if len(b) < FileHeaderSize {
		return FileHeader{}, &TruncatedHeaderError{Got: len(b), Want: FileHeaderSize}
	}

	r := reader{b: b}
	var h FileHeader
	copy(h.Type[:], r.bytes(2))
	h.Size = r.u32()
	h.Reserved = r.u32()
	h.DataOffset = r.u32()
	return h, nil
}

// ParseInfoHeader decodes the first InfoHeaderSize bytes of b without
// validating them.
func ParseInfoHeader(b []byte) (InfoHeader, error) {
	if len(b) < InfoHeaderSize {
		return InfoHeader{}, &TruncatedHeaderError{Got: len(b), Want: InfoHeaderSize}
	}

	r := reader{b: b}
	return InfoHeader{
		Size:            r.u32(),
		Width:           r.i32(),
		Height:          r.i32(),
		Planes:          r.u16(),
		BitsPerPixel:    r.u16(),
		Compression:     r.u32(),
		ImageSize:       r.u32(),
		XPixelsPerMeter: r.i32(),
		YPixelsPerMeter: r.i32(),
		UsedColors:      r.u32(),
		ImportantColors: r.u32(),
	}, nil
}

// ParseHeaders decodes both headers from the start of raw.
func ParseHeaders(raw []byte) (FileHeader, InfoHeader, error) {
	if len(raw) < HeaderSize {
		return FileHeader{}, InfoHeader{}, &TruncatedHeaderError{Got: len(raw), Want: HeaderSize}
	}

	fh, err := ParseFileHeader(raw[:FileHeaderSize])
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	ih, err := ParseInfoHeader(raw[FileHeaderSize:HeaderSize])
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	return fh, ih, nil
}

// TopDown reports whether the rows are stored top row first.
func (h InfoHeader) TopDown() bool {
	return h.Height < 0
}

func (h FileHeader) String() string {
	return fmt.Sprintf("%q %d bytes, pixels at %d", h.Type[:], h.Size, h.DataOffset)
}

func (h InfoHeader) String() string {
	return fmt.Sprintf("%dx%d %d bpp, compression %d", h.Width, h.Height, h.BitsPerPixel, h.Compression)
}
