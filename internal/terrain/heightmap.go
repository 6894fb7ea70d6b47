package terrain

import (
	"math"

	"landgen/internal/core"
)

// waterEpsilon is the margin dry terrain keeps above the water line and the
// clearance a scatter candidate must have over it.
const waterEpsilon = 1e-3

// synthesizeHeightmap fills the grid with renormalized fractal noise, applies
// the sharpness exponent and height cap, and optionally floors dry terrain at
// the water line. Pure numeric transform; degenerate parameters are rejected
// by Config.Validate before this runs.
func synthesizeHeightmap(grid *core.FloatGrid, noise *NoiseField, p Params) {
	maxAmp := noise.MaxAmplitude()
	floor := p.WaterHeight + waterEpsilon
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			v := noise.Sample(float64(x), float64(y)) / maxAmp
			h := (v + 1) * 0.5
			if p.Noise.Sharpness != 1 {
				h = math.Pow(h, p.Noise.Sharpness)
			}
			if h > p.Noise.MaxHeight {
				h = p.Noise.MaxHeight
			}
			if p.WaterFloor && h < floor {
				h = floor
			}
			grid.Set(x, y, h)
		}
	}
	grid.Clamp01()
}
