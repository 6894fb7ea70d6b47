//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"landgen/internal/render"
	"landgen/internal/terrain"
	"landgen/internal/ui"
)

// View selects what the base layer of the terrain window shows.
type View int

const (
	// ViewHeights shades the raw heightfield with a water tint.
	ViewHeights View = iota
	// ViewLayers colors each cell by its dominant splat layer.
	ViewLayers
)

const hudWidth = 230

// Game adapts a terrain generator to the ebiten.Game interface.
type Game struct {
	gen     *terrain.Generator
	result  *terrain.Result
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cells   []uint8
	palette []color.RGBA

	scale int
	seed  int64
	view  View
}

// New constructs a Game for the provided generator and runs the first
// generation.
func New(gen *terrain.Generator, scale int) *Game {
	size := gen.Size()
	g := &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(gen, hudWidth),
		scale:   scale,
		seed:    gen.Config().Seed,
	}
	g.regenerate()
	return g
}

// regenerate reruns the pipeline with the current seed and refreshes the
// dominant-layer view buffers.
func (g *Game) regenerate() {
	g.result = g.gen.GenerateSeed(g.seed)

	ids := make([]string, len(g.gen.Config().Params.Layers))
	for i, layer := range g.gen.Config().Params.Layers {
		ids[i] = layer.ID
	}
	g.palette = render.LayerPalette(ids)

	splat := g.result.Splat
	if cap(g.cells) < splat.Cells {
		g.cells = make([]uint8, splat.Cells)
	}
	g.cells = g.cells[:splat.Cells]
	for i := range g.cells {
		g.cells[i] = uint8(splat.Dominant(i))
	}
}

// Update handles input and regenerates the terrain when asked to.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.view == ViewHeights {
			g.view = ViewLayers
		} else {
			g.view = ViewHeights
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.regenerate()
	}

	g.overlay.Update()
	if g.hud.Update() {
		g.regenerate()
	}
	return nil
}

// Draw renders the current terrain result.
func (g *Game) Draw(screen *ebiten.Image) {
	water := g.gen.Config().Params.WaterHeight
	switch g.view {
	case ViewLayers:
		g.painter.BlitCells(screen, g.cells, g.palette, g.scale)
	default:
		g.painter.BlitHeights(screen, g.result.Heights.Values(), water, g.scale)
	}
	g.overlay.Draw(screen, g.result)

	size := g.gen.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.gen.Size()
	return size.W*g.scale + g.hud.Width(), size.H * g.scale
}
