package render

import (
	"image/color"
	"testing"
)

func TestFillHeightRGBA(t *testing.T) {
	heights := []float64{0.0, 0.3, 1.0}
	buf := make([]byte, len(heights)*4)
	FillHeightRGBA(buf, heights, 0.3)

	// Submerged cells are blue-tinted, never grayscale.
	if buf[0] != 20 || buf[2] <= buf[0] {
		t.Fatalf("deep water pixel = %v", buf[0:4])
	}
	if buf[4] != 20 {
		t.Fatalf("waterline pixel not tinted: %v", buf[4:8])
	}
	// Full height renders white.
	if buf[8] != 255 || buf[9] != 255 || buf[10] != 255 {
		t.Fatalf("peak pixel = %v, want white", buf[8:12])
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want opaque", i, buf[i])
		}
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, A: 255},
		{R: 20, A: 255},
	}
	cells := []uint8{0, 1, 9} // out-of-range index clamps to the last entry
	buf := make([]byte, len(cells)*4)
	FillPaletteRGBA(buf, cells, palette)

	if buf[0] != 10 || buf[4] != 20 || buf[8] != 20 {
		t.Fatalf("palette mapping wrong: %v", buf)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{0, 1}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want cleared", i, b)
		}
	}
}

func TestLayerPalette(t *testing.T) {
	palette := LayerPalette([]string{"water", "grass", "obsidian", "basalt"})
	if len(palette) != 4 {
		t.Fatalf("palette length = %d, want 4", len(palette))
	}
	if palette[0] == palette[1] {
		t.Fatal("known layers share a color")
	}
	if palette[2] == palette[3] {
		t.Fatal("consecutive unknown layers share a fallback color")
	}
	for i, c := range palette {
		if c.A != 255 {
			t.Fatalf("palette entry %d not opaque", i)
		}
	}
}
