package terrain

import "landgen/internal/core"

// SurfaceLayer names one splat layer and the highest cell height it covers.
// Layers are ordered ascending by threshold.
type SurfaceLayer struct {
	ID        string
	MaxHeight float64
}

// SplatMap stores one weight per (cell, layer), cells in row-major order.
// Weights of a cell sum to 1 after classification and stay normalized through
// paint blending.
type SplatMap struct {
	Cells  int
	Layers int

	weights []float32
}

// newSplatMap allocates a zeroed weight map.
func newSplatMap(cells, layers int) *SplatMap {
	return &SplatMap{
		Cells:   cells,
		Layers:  layers,
		weights: make([]float32, cells*layers),
	}
}

// Weights exposes the backing slice, cell-major: cell*Layers+layer.
func (s *SplatMap) Weights() []float32 { return s.weights }

// At returns the weight of one layer at one cell.
func (s *SplatMap) At(cell, layer int) float32 {
	return s.weights[cell*s.Layers+layer]
}

// cell returns the weight vector of one cell.
func (s *SplatMap) cell(cell int) []float32 {
	base := cell * s.Layers
	return s.weights[base : base+s.Layers]
}

// Dominant returns the layer index with the highest weight at a cell.
func (s *SplatMap) Dominant(cell int) int {
	w := s.cell(cell)
	best := 0
	for i := 1; i < len(w); i++ {
		if w[i] > w[best] {
			best = i
		}
	}
	return best
}

// classifySurface assigns weight 1 to the first layer whose threshold covers
// the cell height and 0 to all others. A cell above every threshold stays
// unclassified; Config.Validate prevents that by requiring the last threshold
// to cover the height cap.
func classifySurface(grid *core.FloatGrid, layers []SurfaceLayer) *SplatMap {
	splat := newSplatMap(grid.W*grid.H, len(layers))
	values := grid.Values()
	for cell, h := range values {
		for i, layer := range layers {
			if layer.MaxHeight >= h {
				splat.weights[cell*len(layers)+i] = 1
				break
			}
		}
	}
	return splat
}
