package core

// FloatGrid stores a square 2D grid of normalized height values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// InBounds reports whether (x, y) lies inside the grid.
func (g *FloatGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clone returns a deep copy of the grid.
func (g *FloatGrid) Clone() *FloatGrid {
	c := NewFloatGrid(g.W, g.H)
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites this grid's values with those of src. Dimensions must match.
func (g *FloatGrid) CopyFrom(src *FloatGrid) {
	if src == nil || src.W != g.W || src.H != g.H {
		return
	}
	copy(g.data, src.data)
}

// Clamp01 clamps every value to [0, 1]. Mutating passes call this at their
// boundary so out-of-range intermediates never escape the pipeline.
func (g *FloatGrid) Clamp01() {
	for i, v := range g.data {
		if v < 0 {
			g.data[i] = 0
		} else if v > 1 {
			g.data[i] = 1
		}
	}
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
