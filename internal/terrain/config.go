package terrain

import (
	"fmt"
	"strconv"
)

// Falloff selects the carving falloff curve applied across a river footprint.
type Falloff string

const (
	// FalloffLinear lowers cells by (1-d) of the profile depth.
	FalloffLinear Falloff = "linear"
	// FalloffQuadratic lowers cells by (1-d)^2 of the profile depth.
	FalloffQuadratic Falloff = "quadratic"
)

// NoiseParams holds the fractal noise parameters for the base heightmap.
type NoiseParams struct {
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Sharpness   float64 // height exponent: <1 flattens, >1 sharpens peaks
	MaxHeight   float64 // cap applied after the exponent
}

// RiverParams controls river planning and carving.
type RiverParams struct {
	Count          int     // main rivers
	Branches       int     // branch paths per main river
	Points         int     // points per main path; branches use half
	Width          float64 // channel width, normalized to grid extent
	Depth          float64 // carve depth below the local surface
	MaxStep        float64 // upper bound on the distance between consecutive points
	Falloff        Falloff
	DownhillBias   bool // steer main paths along the negative height gradient
	AvoidCrossings bool // deflect branch steps that approach earlier paths
	BlendChannel   bool // Gaussian-like blend over carved cells after carving
}

// ScatterParams controls density-masked object placement.
type ScatterParams struct {
	Attempts         int     // trial draw budget, not one draw per cell
	DensityScale     float64 // noise scale of the density mask, independent of the terrain noise
	DensityThreshold float64 // mask value a candidate must exceed
	SpawnChance      float64 // probability a surviving candidate is accepted
	PaintLayer       int     // splat layer painted around placements, -1 to disable
	PaintRadius      int     // paint footprint in cells
	PaintStrength    float64 // peak weight contribution at the placement center
}

// Params holds every tunable of a generation run.
type Params struct {
	Noise   NoiseParams
	Rivers  RiverParams
	Scatter ScatterParams
	Layers  []SurfaceLayer

	WaterHeight float64
	WaterFloor  bool // keep un-carved terrain at or above the water line

	SlopeThreshold float64 // 4-neighbor deviation that triggers relaxation
	SlopeStrength  float64 // blend factor toward the neighbor average

	SmoothIterations int
}

// Config describes one generation run. Immutable once handed to a Generator.
type Config struct {
	Resolution int
	Seed       int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Resolution: 128,
		Seed:       1337,
		Params: Params{
			Noise: NoiseParams{
				Scale:       64,
				Octaves:     4,
				Persistence: 0.5,
				Lacunarity:  2.0,
				Sharpness:   1.0,
				MaxHeight:   1.0,
			},
			Rivers: RiverParams{
				Count:          1,
				Branches:       1,
				Points:         48,
				Width:          0.06,
				Depth:          0.15,
				MaxStep:        0.08,
				Falloff:        FalloffQuadratic,
				DownhillBias:   false,
				AvoidCrossings: true,
				BlendChannel:   true,
			},
			Scatter: ScatterParams{
				Attempts:         400,
				DensityScale:     24,
				DensityThreshold: 0.55,
				SpawnChance:      0.35,
				PaintLayer:       3,
				PaintRadius:      3,
				PaintStrength:    0.8,
			},
			Layers: []SurfaceLayer{
				{ID: "water", MaxHeight: 0.30},
				{ID: "sand", MaxHeight: 0.36},
				{ID: "grass", MaxHeight: 0.55},
				{ID: "forest", MaxHeight: 0.75},
				{ID: "rock", MaxHeight: 0.90},
				{ID: "snow", MaxHeight: 1.00},
			},
			WaterHeight:      0.30,
			WaterFloor:       true,
			SlopeThreshold:   0.04,
			SlopeStrength:    0.5,
			SmoothIterations: 2,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["res"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Resolution = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Noise.Scale = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Noise.Persistence = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.Params.Noise.Lacunarity = parsed
		}
	}
	if v, ok := cfg["sharpness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Noise.Sharpness = parsed
		}
	}
	if v, ok := cfg["water"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Params.WaterHeight = parsed
		}
	}
	if v, ok := cfg["rivers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Rivers.Count = parsed
		}
	}
	if v, ok := cfg["branches"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Rivers.Branches = parsed
		}
	}
	if v, ok := cfg["river_points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Params.Rivers.Points = parsed
		}
	}
	if v, ok := cfg["river_width"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Rivers.Width = parsed
		}
	}
	if v, ok := cfg["river_depth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Rivers.Depth = parsed
		}
	}
	if v, ok := cfg["smooth_iters"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SmoothIterations = parsed
		}
	}
	if v, ok := cfg["scatter_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Scatter.Attempts = parsed
		}
	}
	if v, ok := cfg["density_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Scatter.DensityThreshold = parsed
		}
	}
	if v, ok := cfg["spawn_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Scatter.SpawnChance = parsed
		}
	}
	return c
}

// Validate rejects degenerate parameter combinations before generation starts.
func (c Config) Validate() error {
	if c.Resolution < 4 {
		return fmt.Errorf("resolution must be at least 4, got %d", c.Resolution)
	}
	n := c.Params.Noise
	if n.Scale <= 0 {
		return fmt.Errorf("noise scale must be positive, got %g", n.Scale)
	}
	if n.Octaves < 1 {
		return fmt.Errorf("octave count must be at least 1, got %d", n.Octaves)
	}
	if n.Persistence <= 0 {
		return fmt.Errorf("persistence must be positive, got %g", n.Persistence)
	}
	if n.Lacunarity < 1 {
		return fmt.Errorf("lacunarity must be at least 1, got %g", n.Lacunarity)
	}
	if n.Sharpness <= 0 {
		return fmt.Errorf("sharpness exponent must be positive, got %g", n.Sharpness)
	}
	if n.MaxHeight <= 0 || n.MaxHeight > 1 {
		return fmt.Errorf("max height cap must be in (0,1], got %g", n.MaxHeight)
	}
	if c.Params.WaterHeight < 0 || c.Params.WaterHeight >= 1 {
		return fmt.Errorf("water height must be in [0,1), got %g", c.Params.WaterHeight)
	}

	r := c.Params.Rivers
	if r.Count < 0 || r.Branches < 0 {
		return fmt.Errorf("river counts must be non-negative")
	}
	if r.Count > 0 {
		if r.Points < 2 {
			return fmt.Errorf("river paths need at least 2 points, got %d", r.Points)
		}
		if r.Width <= 0 {
			return fmt.Errorf("river width must be positive, got %g", r.Width)
		}
		if r.Depth < 0 {
			return fmt.Errorf("river depth must be non-negative, got %g", r.Depth)
		}
		if r.MaxStep <= 0 {
			return fmt.Errorf("river max step must be positive, got %g", r.MaxStep)
		}
		if r.Falloff != FalloffLinear && r.Falloff != FalloffQuadratic {
			return fmt.Errorf("unknown river falloff %q", r.Falloff)
		}
	}

	if len(c.Params.Layers) == 0 {
		return fmt.Errorf("at least one surface layer is required")
	}
	prev := -1.0
	for i, layer := range c.Params.Layers {
		if layer.MaxHeight < 0 || layer.MaxHeight > 1 {
			return fmt.Errorf("layer %q threshold must be in [0,1], got %g", layer.ID, layer.MaxHeight)
		}
		if layer.MaxHeight < prev {
			return fmt.Errorf("layer thresholds must be ascending; layer %d (%q) breaks the order", i, layer.ID)
		}
		prev = layer.MaxHeight
	}
	last := c.Params.Layers[len(c.Params.Layers)-1]
	if last.MaxHeight < n.MaxHeight {
		return fmt.Errorf("last layer threshold %g does not cover max height %g", last.MaxHeight, n.MaxHeight)
	}

	s := c.Params.Scatter
	if s.Attempts < 0 {
		return fmt.Errorf("scatter attempts must be non-negative, got %d", s.Attempts)
	}
	if s.Attempts > 0 {
		if s.DensityScale <= 0 {
			return fmt.Errorf("density scale must be positive, got %g", s.DensityScale)
		}
		if s.DensityThreshold < 0 || s.DensityThreshold > 1 {
			return fmt.Errorf("density threshold must be in [0,1], got %g", s.DensityThreshold)
		}
		if s.SpawnChance < 0 || s.SpawnChance > 1 {
			return fmt.Errorf("spawn chance must be in [0,1], got %g", s.SpawnChance)
		}
		if s.PaintLayer >= len(c.Params.Layers) {
			return fmt.Errorf("paint layer %d out of range for %d layers", s.PaintLayer, len(c.Params.Layers))
		}
		if s.PaintRadius < 0 {
			return fmt.Errorf("paint radius must be non-negative, got %d", s.PaintRadius)
		}
		if s.PaintStrength < 0 || s.PaintStrength > 1 {
			return fmt.Errorf("paint strength must be in [0,1], got %g", s.PaintStrength)
		}
	}

	if c.Params.SlopeThreshold < 0 {
		return fmt.Errorf("slope threshold must be non-negative, got %g", c.Params.SlopeThreshold)
	}
	if c.Params.SlopeStrength < 0 || c.Params.SlopeStrength > 1 {
		return fmt.Errorf("slope strength must be in [0,1], got %g", c.Params.SlopeStrength)
	}
	if c.Params.SmoothIterations < 0 {
		return fmt.Errorf("smoothing iterations must be non-negative, got %d", c.Params.SmoothIterations)
	}
	return nil
}
