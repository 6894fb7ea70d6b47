package terrain

import (
	"fmt"
	"math"

	"landgen/internal/core"
	pkgcore "landgen/pkg/core"
)

// Fixed stream offsets keep every sub-generator reproducible for a given seed
// regardless of how many draws any other sub-generator makes.
const (
	noiseStreamOffset   int64 = 1
	riverStreamOffset   int64 = 2
	scatterStreamOffset int64 = 3
	densityStreamOffset int64 = 4
)

// Result is the immutable output of one generation run. The grid, splat map,
// and placement list are created fresh per run and handed off to the host;
// nothing in the pipeline retains or mutates them afterwards.
type Result struct {
	Resolution int
	Heights    *core.FloatGrid
	Rivers     []RiverPath
	Splat      *SplatMap
	Placements []Placement
	Stats      ScatterStats
	Timings    []core.PassTiming
}

// Generator runs the full terrain pipeline for a validated configuration.
type Generator struct {
	cfg    Config
	ground GroundQuery
}

// Option customizes a Generator.
type Option func(*Generator)

// WithGroundQuery injects the host's surface probe used to resolve exact
// placement heights. Without it placements carry the grid height.
func WithGroundQuery(q GroundQuery) Option {
	return func(g *Generator) { g.ground = q }
}

// NewGenerator validates the configuration and returns a ready generator.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain config: %w", err)
	}
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string { return "terrain" }

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Size reports the grid dimensions.
func (g *Generator) Size() core.Size {
	return core.Size{W: g.cfg.Resolution, H: g.cfg.Resolution}
}

// Generate runs the pipeline with the configured seed.
func (g *Generator) Generate() *Result {
	return g.GenerateSeed(g.cfg.Seed)
}

// GenerateSeed runs the whole pipeline for an explicit seed. The run is a
// synchronous batch: it either completes or the caller discards the result
// and retries with another seed. Two calls with the same seed and config
// produce identical results.
func (g *Generator) GenerateSeed(seed int64) *Result {
	p := g.cfg.Params
	res := g.cfg.Resolution
	timer := core.NewPassTimer()

	grid := core.NewFloatGrid(res, res)

	timer.Start("heightmap")
	noise := NewNoiseField(pkgcore.NewStream(seed, noiseStreamOffset), p.Noise)
	synthesizeHeightmap(grid, noise, p)

	timer.Start("rivers")
	riverRNG := pkgcore.NewStream(seed, riverStreamOffset)
	rivers := planRivers(riverRNG, grid, p.Rivers)

	timer.Start("carve")
	touched := carveRivers(grid, rivers, p)
	if p.Rivers.BlendChannel && len(rivers) > 0 {
		blendCarved(grid, touched)
	}

	timer.Start("relax")
	relaxSlopes(grid, p.SlopeThreshold, p.SlopeStrength)

	timer.Start("smooth")
	smoothGrid(grid, p.SmoothIterations)

	timer.Start("classify")
	splat := classifySurface(grid, p.Layers)

	timer.Start("scatter")
	density := NewNoiseField(pkgcore.NewStream(seed, densityStreamOffset), densityNoiseParams(p.Scatter))
	scatterRNG := pkgcore.NewStream(seed, scatterStreamOffset)
	placements, stats := scatterObjects(scatterRNG, grid, density, splat, p.Scatter, p.WaterHeight, g.ground)
	timer.Stop()

	return &Result{
		Resolution: res,
		Heights:    grid,
		Rivers:     rivers,
		Splat:      splat,
		Placements: placements,
		Stats:      stats,
		Timings:    timer.Timings(),
	}
}

// densityNoiseParams derives the scatter mask's noise parameters. The mask
// runs at its own scale and stream, fully independent of the terrain noise.
func densityNoiseParams(s ScatterParams) NoiseParams {
	return NoiseParams{
		Scale:       s.DensityScale,
		Octaves:     2,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Sharpness:   1.0,
		MaxHeight:   1.0,
	}
}

// GroundQuery returns a pure grid-height lookup over the finalized heights,
// bilinearly interpolated. It substitutes for the host's physics probe in
// tests and headless tools.
func (r *Result) GroundQuery() GroundQuery {
	grid := r.Heights
	return func(x, y float64) (float64, bool) {
		if x < 0 || x > 1 || y < 0 || y > 1 {
			return 0, false
		}
		fx := x * float64(grid.W-1)
		fy := y * float64(grid.H-1)
		x0 := int(math.Floor(fx))
		y0 := int(math.Floor(fy))
		x1, y1 := x0+1, y0+1
		if x1 > grid.W-1 {
			x1 = grid.W - 1
		}
		if y1 > grid.H-1 {
			y1 = grid.H - 1
		}
		tx := fx - float64(x0)
		ty := fy - float64(y0)
		top := lerp(grid.At(x0, y0), grid.At(x1, y0), tx)
		bottom := lerp(grid.At(x0, y1), grid.At(x1, y1), tx)
		return lerp(top, bottom, ty), true
	}
}
