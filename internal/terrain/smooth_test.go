package terrain

import (
	"math"
	"slices"
	"testing"

	"landgen/internal/core"
	pkgcore "landgen/pkg/core"
)

func noisyGrid(res int, seed int64) *core.FloatGrid {
	grid := core.NewFloatGrid(res, res)
	rng := pkgcore.NewRNG(seed)
	for i := range grid.Values() {
		grid.Values()[i] = rng.Float64()
	}
	return grid
}

func maxAdjacentDiff(grid *core.FloatGrid) float64 {
	max := 0.0
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			h := grid.At(x, y)
			for _, n := range []float64{grid.At(x-1, y), grid.At(x+1, y), grid.At(x, y-1), grid.At(x, y+1)} {
				if d := math.Abs(h - n); d > max {
					max = d
				}
			}
		}
	}
	return max
}

func TestSmoothGridZeroIterationsNoop(t *testing.T) {
	grid := noisyGrid(32, 1)
	before := grid.Clone()
	smoothGrid(grid, 0)
	if !slices.Equal(grid.Values(), before.Values()) {
		t.Fatal("zero iterations modified the grid")
	}
}

func TestSmoothGridPreservesBorders(t *testing.T) {
	grid := noisyGrid(32, 2)
	before := grid.Clone()
	smoothGrid(grid, 3)

	for x := 0; x < grid.W; x++ {
		if grid.At(x, 0) != before.At(x, 0) || grid.At(x, grid.H-1) != before.At(x, grid.H-1) {
			t.Fatalf("border row changed at x=%d", x)
		}
	}
	for y := 0; y < grid.H; y++ {
		if grid.At(0, y) != before.At(0, y) || grid.At(grid.W-1, y) != before.At(grid.W-1, y) {
			t.Fatalf("border column changed at y=%d", y)
		}
	}
}

func TestSmoothGridReducesInteriorRoughness(t *testing.T) {
	grid := core.NewFloatGrid(17, 17)
	grid.Set(8, 8, 1) // lone spike far from the border

	before := maxAdjacentDiff(grid)
	smoothGrid(grid, 1)
	after := maxAdjacentDiff(grid)

	if before != 1 {
		t.Fatalf("setup: spike roughness = %v, want 1", before)
	}
	if after >= before {
		t.Fatalf("smoothing did not reduce max adjacent difference: %v -> %v", before, after)
	}
	if got := grid.At(8, 8); got != 0.2 {
		t.Fatalf("spike after one pass = %v, want 0.2", got)
	}
}

func TestSmoothGridStaysWithinInputRange(t *testing.T) {
	grid := noisyGrid(32, 4)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range grid.Values() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	smoothGrid(grid, 4)
	for i, v := range grid.Values() {
		if v < lo-1e-12 || v > hi+1e-12 {
			t.Fatalf("cell %d = %v outside the input range [%v, %v]", i, v, lo, hi)
		}
	}
}

func TestStencilPassInteriorMean(t *testing.T) {
	grid := core.NewFloatGrid(3, 3)
	vals := []float64{
		0, 1, 0,
		1, 1, 1,
		0, 1, 0,
	}
	copy(grid.Values(), vals)
	dst := core.NewFloatGrid(3, 3)
	stencilPass(grid, dst)

	if got := dst.At(1, 1); got != 1 {
		t.Fatalf("center mean = %v, want 1", got)
	}
	if got := dst.At(0, 0); got != 0 {
		t.Fatalf("border cell changed to %v", got)
	}
}
