package render

import (
	"image/color"
	"math"
)

// FillHeightRGBA shades normalized heights into buf as grayscale relief.
// Cells at or below the water line are tinted toward deep blue by depth.
func FillHeightRGBA(buf []byte, heights []float64, water float64) {
	for i, h := range heights {
		base := i * 4
		if h <= water {
			depth := 0.0
			if water > 0 {
				depth = (water - h) / water
			}
			buf[base+0] = 20
			buf[base+1] = uint8(90 - 50*depth)
			buf[base+2] = uint8(200 - 80*depth)
			buf[base+3] = 255
			continue
		}
		v := uint8(math.Round(h * 255))
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 255
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// LayerPalette maps well-known surface layer IDs to display colors and hands
// out fallback hues for anything unrecognized.
func LayerPalette(ids []string) []color.RGBA {
	known := map[string]color.RGBA{
		"water":  {R: 30, G: 90, B: 190, A: 255},
		"mud":    {R: 95, G: 75, B: 50, A: 255},
		"sand":   {R: 215, G: 195, B: 130, A: 255},
		"grass":  {R: 90, G: 155, B: 70, A: 255},
		"forest": {R: 40, G: 105, B: 50, A: 255},
		"rock":   {R: 130, G: 130, B: 135, A: 255},
		"snow":   {R: 240, G: 243, B: 248, A: 255},
	}
	fallbacks := []color.RGBA{
		{R: 200, G: 90, B: 140, A: 255},
		{R: 90, G: 190, B: 190, A: 255},
		{R: 190, G: 150, B: 60, A: 255},
	}
	palette := make([]color.RGBA, len(ids))
	next := 0
	for i, id := range ids {
		if col, ok := known[id]; ok {
			palette[i] = col
			continue
		}
		palette[i] = fallbacks[next%len(fallbacks)]
		next++
	}
	return palette
}
