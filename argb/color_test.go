package argb_test

import (
	"image/color"
	"testing"

	"bmpview/argb"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	vals := []uint8{0x00, 0x01, 0x7F, 0x80, 0xAA, 0xFE, 0xFF}
	for _, a := range vals {
		for _, r := range vals {
			for _, g := range vals {
				for _, b := range vals {
					c := argb.Color{A: a, R: r, G: g, B: b}
					if got := argb.Unpack(c.Pack()); got != c {
						t.Fatalf("Unpack(Pack(%+v)): got %+v", c, got)
					}
				}
			}
		}
	}
}

func TestPackByteOrder(t *testing.T) {
	c := argb.Color{A: 0x11, R: 0x22, G: 0x33, B: 0x44}
	if got := c.Pack(); got != 0x11223344 {
		t.Fatalf("Pack: got %#08x want %#08x", got, 0x11223344)
	}
	if got := argb.Unpack(0xFF000080); got != (argb.Color{A: 0xFF, B: 0x80}) {
		t.Fatalf("Unpack: got %+v", got)
	}
}

func TestModelConvert(t *testing.T) {
	got := argb.Model.Convert(color.NRGBA{R: 10, G: 20, B: 30, A: 255}).(argb.Color)
	want := argb.Color{A: 255, R: 10, G: 20, B: 30}
	if got != want {
		t.Fatalf("Convert: got %+v want %+v", got, want)
	}

	r, g, b, a := want.RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Fatalf("RGBA: got %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}
