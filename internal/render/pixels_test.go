package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 255}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("pixels (-want +got):\n%s", diff)
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared buffer", i, b)
		}
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	if got := scaleAlpha(c, 0.5); got != (color.RGBA{R: 50, G: 50, B: 50, A: 128}) {
		t.Fatalf("scaleAlpha(0.5) = %v", got)
	}
	if got := scaleAlpha(c, -1); got != (color.RGBA{}) {
		t.Fatalf("scaleAlpha(-1) = %v", got)
	}
	if got := scaleAlpha(c, 2); got != c {
		t.Fatalf("scaleAlpha(2) = %v", got)
	}
}
