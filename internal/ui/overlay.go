//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"landgen/internal/terrain"
)

// Overlay draws river centerlines and scatter placements on top of the
// terrain view.
type Overlay struct {
	scale          int
	showRivers     bool
	showPlacements bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showRivers: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRivers = !o.showRivers
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showPlacements = !o.showPlacements
	}
}

// Draw renders the enabled overlays for the given result.
func (o *Overlay) Draw(screen *ebiten.Image, result *terrain.Result) {
	if result == nil {
		return
	}
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	extent := float64(result.Resolution-1) * scale

	if o.showRivers {
		for _, path := range result.Rivers {
			col := color.RGBA{R: 80, G: 170, B: 255, A: 220}
			if path.Kind == terrain.PathBranch {
				col = color.RGBA{R: 120, G: 200, B: 255, A: 180}
			}
			for i := 1; i < len(path.Points); i++ {
				a := path.Points[i-1]
				b := path.Points[i]
				o.drawLine(screen, a.X()*extent, a.Y()*extent, b.X()*extent, b.Y()*extent, scale*0.8, col)
			}
		}
	}

	if o.showPlacements {
		col := color.RGBA{R: 40, G: 220, B: 90, A: 230}
		for _, p := range result.Placements {
			o.drawPoint(screen, p.Pos.X()*extent, p.Pos.Y()*extent, scale*1.5, col)
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
