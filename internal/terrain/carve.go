package terrain

import (
	"math"

	"landgen/internal/core"
)

// carveRivers rasterizes every path footprint onto the grid. Cells inside a
// footprint are lowered by the falloff-scaled profile depth and clamped so
// they end up below the water line near the centerline. Overlapping paths
// min-combine: a later path can lower a cell further but never raise it.
// Returns a mask of the cells any path touched.
func carveRivers(grid *core.FloatGrid, paths []RiverPath, p Params) []bool {
	touched := make([]bool, grid.W*grid.H)
	for _, path := range paths {
		carvePath(grid, path, p, touched)
	}
	grid.Clamp01()
	return touched
}

func carvePath(grid *core.FloatGrid, path RiverPath, p Params, touched []bool) {
	radius := int(math.Ceil(path.Profile.Width * float64(grid.W) * 0.5))
	if radius < 1 {
		return
	}
	fr := float64(radius)
	depth := path.Profile.Depth

	for _, pt := range path.Points {
		cx := pt.X() * float64(grid.W-1)
		cy := pt.Y() * float64(grid.H-1)
		x0 := int(math.Floor(cx)) - radius
		y0 := int(math.Floor(cy)) - radius
		x1 := int(math.Ceil(cx)) + radius
		y1 := int(math.Ceil(cy)) + radius

		for y := y0; y <= y1; y++ {
			if y < 0 || y >= grid.H {
				continue
			}
			for x := x0; x <= x1; x++ {
				if x < 0 || x >= grid.W {
					continue
				}
				d := math.Hypot(float64(x)-cx, float64(y)-cy) / fr
				if d >= 1 {
					continue
				}
				fall := falloffValue(p.Rivers.Falloff, d)
				h := grid.At(x, y)
				carved := h - fall*depth
				// Canonical waterline policy: a carved cell never ends up
				// above waterHeight - fall*depth.
				if ceiling := p.WaterHeight - fall*depth; carved > ceiling {
					carved = ceiling
				}
				if carved < 0 {
					carved = 0
				}
				if carved < h {
					grid.Set(x, y, carved)
				}
				touched[grid.Index(x, y)] = true
			}
		}
	}
}

// falloffValue evaluates the configured falloff at distance fraction d in [0,1).
func falloffValue(kind Falloff, d float64) float64 {
	switch kind {
	case FalloffQuadratic:
		return (1 - d) * (1 - d)
	default:
		return 1 - d
	}
}

// blendCarved recomputes a Gaussian-weighted 3x3 average for carved cells
// only, blending the channel into the surrounding terrain while leaving
// untouched cells exactly as they were. Reads old values, writes new ones.
func blendCarved(grid *core.FloatGrid, touched []bool) {
	// 3x3 binomial kernel.
	weights := [3][3]float64{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}
	next := grid.Clone()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if !touched[grid.Index(x, y)] {
				continue
			}
			sum := 0.0
			wsum := 0.0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if !grid.InBounds(nx, ny) {
						continue
					}
					w := weights[dy+1][dx+1]
					sum += grid.At(nx, ny) * w
					wsum += w
				}
			}
			next.Set(x, y, sum/wsum)
		}
	}
	grid.CopyFrom(next)
	grid.Clamp01()
}

// relaxSlopes blends interior cells toward their 4-neighbor average when the
// deviation exceeds the threshold. Bounds local discontinuities without
// flattening hills. Double-buffered so results do not depend on scan order.
func relaxSlopes(grid *core.FloatGrid, threshold, strength float64) {
	if strength <= 0 {
		return
	}
	next := grid.Clone()
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			h := grid.At(x, y)
			avg := (grid.At(x-1, y) + grid.At(x+1, y) + grid.At(x, y-1) + grid.At(x, y+1)) * 0.25
			if math.Abs(h-avg) > threshold {
				next.Set(x, y, h+(avg-h)*strength)
			}
		}
	}
	grid.CopyFrom(next)
	grid.Clamp01()
}
