package inspect

import (
	"bytes"
	"image"
	"image/color"

	"bmpview/argb"
	"bmpview/bmp"

	xbmp "golang.org/x/image/bmp"
)

// Match tells which channel order reproduces the reference decoder's pixels.
type Match int

const (
	MatchUnchecked Match = iota
	MatchRGB
	MatchBGR
	MatchNone
	MatchRejected // the reference decoder refused the file
)

func (m Match) String() string {
	switch m {
	case MatchUnchecked:
		return "unchecked"
	case MatchRGB:
		return "rgb"
	case MatchBGR:
		return "bgr"
	case MatchNone:
		return "none"
	case MatchRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

func crossCheckOrder(raw []byte) (Match, error) {
	ref, err := xbmp.Decode(bytes.NewReader(raw))
	if err != nil {
		return MatchRejected, nil
	}

	for _, c := range []struct {
		order bmp.ChannelOrder
		match Match
	}{
		{bmp.OrderRGB, MatchRGB},
		{bmp.OrderBGR, MatchBGR},
	} {
		img, err := bmp.DecodeWith(raw, bmp.Options{Order: c.order, SkipRowPadding: true})
		if err != nil {
			return MatchUnchecked, err
		}
		img.Upright()
		if sameRGB(img, ref) {
			return c.match, nil
		}
	}

	return MatchNone, nil
}

// sameRGB ignores alpha: the reference decoder drops it for most 32-bit files.
func sameRGB(img *bmp.Image, ref image.Image) bool {
	rb := ref.Bounds()
	if rb.Dx() != img.Width || rb.Dy() != img.Height {
		return false
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			got := argb.Unpack(img.Pixel(x, y))
			want := color.NRGBAModel.Convert(ref.At(rb.Min.X+x, rb.Min.Y+y)).(color.NRGBA)
			if got.R != want.R || got.G != want.G || got.B != want.B {
				return false
			}
		}
	}
	return true
}
