package terrain

import "landgen/internal/core"

// smoothGrid applies the given number of 5-point stencil passes over interior
// cells. Each pass reads one buffer and writes a fresh one, then swaps, so a
// pass never reads values it already rewrote. Border cells are left untouched.
// More iterations only increase local homogeneity.
func smoothGrid(grid *core.FloatGrid, iterations int) {
	if iterations <= 0 {
		return
	}
	buf := grid.Clone()
	src, dst := grid, buf
	for i := 0; i < iterations; i++ {
		stencilPass(src, dst)
		src, dst = dst, src
	}
	if src != grid {
		grid.CopyFrom(src)
	}
	grid.Clamp01()
}

// stencilPass writes the self-plus-4-neighbor mean of src into dst for every
// interior cell and copies the border rows and columns through unchanged.
func stencilPass(src, dst *core.FloatGrid) {
	dst.CopyFrom(src)
	for y := 1; y < src.H-1; y++ {
		for x := 1; x < src.W-1; x++ {
			sum := src.At(x, y) + src.At(x-1, y) + src.At(x+1, y) + src.At(x, y-1) + src.At(x, y+1)
			dst.Set(x, y, sum/5)
		}
	}
}
