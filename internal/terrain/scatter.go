package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"landgen/internal/core"
	pkgcore "landgen/pkg/core"
)

// GroundQuery resolves the exact surface height under a normalized XY column.
// Returning false means no surface was found and the candidate is dropped.
type GroundQuery func(x, y float64) (float64, bool)

// Instantiator creates a scene object for an accepted placement. Failures are
// not recoverable by the pipeline; the placement is simply dropped.
type Instantiator interface {
	Instantiate(p Placement) error
}

// Placement is one accepted scatter candidate, ready for the host to
// instantiate.
type Placement struct {
	CellX, CellY int
	Pos          mgl64.Vec2 // normalized [0,1]x[0,1]
	Yaw          float64    // radians
	Height       float64    // grid height, or the ground-query result when one is injected
}

// ScatterStats counts candidate outcomes per rejection cause.
type ScatterStats struct {
	Attempts        int
	Accepted        int
	RejectedWater   int
	RejectedDensity int
	RejectedChance  int
	RejectedGround  int
}

// scatterObjects draws up to the attempt budget of random cells and filters
// them through the water exclusion, the density mask, and the spawn coin
// flip. A candidate passes the density mask only by strictly exceeding the
// threshold, so a threshold of 1 admits nothing. Accepted placements paint
// the splat map when a paint layer is configured.
func scatterObjects(rng *pkgcore.RNG, grid *core.FloatGrid, density *NoiseField, splat *SplatMap, p ScatterParams, water float64, ground GroundQuery) ([]Placement, ScatterStats) {
	stats := ScatterStats{Attempts: p.Attempts}
	var placements []Placement

	for i := 0; i < p.Attempts; i++ {
		x := rng.IntN(grid.W)
		y := rng.IntN(grid.H)

		h := grid.At(x, y)
		if h <= water+waterEpsilon {
			stats.RejectedWater++
			continue
		}
		if density.Sample01(float64(x), float64(y)) <= p.DensityThreshold {
			stats.RejectedDensity++
			continue
		}
		if rng.Float64() >= p.SpawnChance {
			stats.RejectedChance++
			continue
		}

		pos := mgl64.Vec2{float64(x) / float64(grid.W-1), float64(y) / float64(grid.H-1)}
		yaw := rng.Angle()

		height := h
		if ground != nil {
			gh, ok := ground(pos.X(), pos.Y())
			if !ok {
				stats.RejectedGround++
				continue
			}
			height = gh
		}

		placements = append(placements, Placement{
			CellX:  x,
			CellY:  y,
			Pos:    pos,
			Yaw:    yaw,
			Height: height,
		})
		stats.Accepted++

		if splat != nil && p.PaintLayer >= 0 && p.PaintRadius > 0 {
			paintSplat(splat, grid, x, y, p)
		}
	}
	return placements, stats
}

// paintSplat raises the paint layer's weight around a placement with radial
// falloff and proportionally suppresses the other layers, keeping each cell's
// weights normalized. This softens texture transitions around placements.
func paintSplat(splat *SplatMap, grid *core.FloatGrid, cx, cy int, p ScatterParams) {
	r := float64(p.PaintRadius)
	for dy := -p.PaintRadius; dy <= p.PaintRadius; dy++ {
		for dx := -p.PaintRadius; dx <= p.PaintRadius; dx++ {
			x, y := cx+dx, cy+dy
			if !grid.InBounds(x, y) {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy)) / r
			if d >= 1 {
				continue
			}
			t := float32(p.PaintStrength * (1 - d))

			w := splat.cell(grid.Index(x, y))
			old := w[p.PaintLayer]
			raised := old + (1-old)*t
			w[p.PaintLayer] = raised

			others := float32(0)
			for i, v := range w {
				if i != p.PaintLayer {
					others += v
				}
			}
			if others > 0 {
				scale := (1 - raised) / others
				for i := range w {
					if i != p.PaintLayer {
						w[i] *= scale
					}
				}
			} else {
				w[p.PaintLayer] = 1
			}
		}
	}
}

// PlaceAll hands every placement to the instantiator. Failed instantiations
// are dropped without aborting; the counts let the caller report attrition.
func PlaceAll(inst Instantiator, placements []Placement) (placed, dropped int) {
	for _, p := range placements {
		if err := inst.Instantiate(p); err != nil {
			dropped++
			continue
		}
		placed++
	}
	return placed, dropped
}
