//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from per-cell terrain data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// BlitHeights uploads a height shading of the grid and draws it scaled.
func (gp *GridPainter) BlitHeights(dst *ebiten.Image, heights []float64, water float64, scale int) {
	if len(heights) != gp.w*gp.h {
		return
	}
	FillHeightRGBA(gp.buf, heights, water)
	gp.blit(dst, scale)
}

// BlitCells uploads palette-colored cells and draws them scaled.
func (gp *GridPainter) BlitCells(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillPaletteRGBA(gp.buf, cells, palette)
	gp.blit(dst, scale)
}

func (gp *GridPainter) blit(dst *ebiten.Image, scale int) {
	gp.img.ReplacePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
