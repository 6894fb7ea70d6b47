//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"landgen/internal/core"
	"landgen/internal/terrain"
)

// HUD renders the parameter panel to the right of the terrain view and lets
// the user adjust a few tunables. Every adjustment asks the app for a full
// regeneration.
type HUD struct {
	gen   *terrain.Generator
	width int

	controls []core.ParameterControl
	selected int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided generator and panel width.
func NewHUD(gen *terrain.Generator, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{gen: gen, width: width, controls: gen.ParameterControls()}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles control selection and adjustment. It reports whether a
// parameter changed and the terrain should be regenerated.
func (h *HUD) Update() bool {
	if h == nil || len(h.controls) == 0 {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected - 1 + len(h.controls)) % len(h.controls)
	}

	dir := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		dir = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		dir = -1
	}
	if dir == 0 {
		return false
	}

	ctrl := h.controls[h.selected]
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return false
	}
	next := current + ctrl.Step*dir
	if next < ctrl.Min {
		next = ctrl.Min
	}
	if next > ctrl.Max {
		next = ctrl.Max
	}
	if ctrl.Type == core.ParamTypeInt {
		return h.gen.SetIntParameter(ctrl.Key, int(math.Round(next)))
	}
	return h.gen.SetFloatParameter(ctrl.Key, next)
}

// currentValue finds the control's present value in the parameter snapshot.
func (h *HUD) currentValue(key string) (float64, bool) {
	snapshot := h.gen.Parameters()
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			if param.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw renders the panel at the given x offset.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorM.Scale(0.07, 0.07, 0.1, 0.92)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	x := offsetX + 10
	y := 18

	snapshot := h.gen.Parameters()
	for _, group := range snapshot.Groups {
		text.Draw(screen, group.Name, face, x, y, color.RGBA{R: 255, G: 220, B: 130, A: 255})
		y += 14
		for _, param := range group.Params {
			line := fmt.Sprintf("%s: %s", param.Label, param.Value)
			col := color.RGBA{R: 200, G: 205, B: 215, A: 255}
			if h.isSelected(param.Key) {
				line = "> " + line
				col = color.RGBA{R: 120, G: 230, B: 120, A: 255}
			}
			text.Draw(screen, line, face, x, y, col)
			y += 13
		}
		y += 8
	}

	text.Draw(screen, "arrows: select/adjust", face, x, height-34, color.RGBA{R: 130, G: 135, B: 145, A: 255})
	text.Draw(screen, "tab: view  r/s: regen", face, x, height-20, color.RGBA{R: 130, G: 135, B: 145, A: 255})
}

func (h *HUD) isSelected(key string) bool {
	return len(h.controls) > 0 && h.controls[h.selected].Key == key
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}
