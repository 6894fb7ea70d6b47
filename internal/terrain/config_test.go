package terrain

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny resolution", func(c *Config) { c.Resolution = 3 }},
		{"zero noise scale", func(c *Config) { c.Params.Noise.Scale = 0 }},
		{"zero octaves", func(c *Config) { c.Params.Noise.Octaves = 0 }},
		{"zero persistence", func(c *Config) { c.Params.Noise.Persistence = 0 }},
		{"sub-unit lacunarity", func(c *Config) { c.Params.Noise.Lacunarity = 0.5 }},
		{"zero sharpness", func(c *Config) { c.Params.Noise.Sharpness = 0 }},
		{"height cap above 1", func(c *Config) { c.Params.Noise.MaxHeight = 1.5 }},
		{"water height at 1", func(c *Config) { c.Params.WaterHeight = 1 }},
		{"negative river count", func(c *Config) { c.Params.Rivers.Count = -1 }},
		{"one-point river", func(c *Config) { c.Params.Rivers.Points = 1 }},
		{"zero river width", func(c *Config) { c.Params.Rivers.Width = 0 }},
		{"negative river depth", func(c *Config) { c.Params.Rivers.Depth = -0.1 }},
		{"zero max step", func(c *Config) { c.Params.Rivers.MaxStep = 0 }},
		{"unknown falloff", func(c *Config) { c.Params.Rivers.Falloff = "cubic" }},
		{"no layers", func(c *Config) { c.Params.Layers = nil }},
		{"descending layers", func(c *Config) {
			c.Params.Layers = []SurfaceLayer{
				{ID: "a", MaxHeight: 0.8},
				{ID: "b", MaxHeight: 0.3},
				{ID: "c", MaxHeight: 1.0},
			}
		}},
		{"layers below height cap", func(c *Config) {
			c.Params.Layers = []SurfaceLayer{{ID: "a", MaxHeight: 0.5}}
		}},
		{"negative scatter attempts", func(c *Config) { c.Params.Scatter.Attempts = -1 }},
		{"zero density scale", func(c *Config) { c.Params.Scatter.DensityScale = 0 }},
		{"density threshold above 1", func(c *Config) { c.Params.Scatter.DensityThreshold = 1.1 }},
		{"spawn chance above 1", func(c *Config) { c.Params.Scatter.SpawnChance = 2 }},
		{"paint layer out of range", func(c *Config) { c.Params.Scatter.PaintLayer = 99 }},
		{"negative paint radius", func(c *Config) { c.Params.Scatter.PaintRadius = -1 }},
		{"paint strength above 1", func(c *Config) { c.Params.Scatter.PaintStrength = 1.5 }},
		{"negative slope threshold", func(c *Config) { c.Params.SlopeThreshold = -0.01 }},
		{"slope strength above 1", func(c *Config) { c.Params.SlopeStrength = 1.1 }},
		{"negative smooth iterations", func(c *Config) { c.Params.SmoothIterations = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateRiverParamsIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Rivers.Count = 0
	cfg.Params.Rivers.Width = 0
	cfg.Params.Rivers.Points = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled rivers should skip river validation, got: %v", err)
	}
}

func TestValidateScatterParamsIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Scatter.Attempts = 0
	cfg.Params.Scatter.DensityScale = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled scatter should skip scatter validation, got: %v", err)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"res":               "256",
		"seed":              "42",
		"scale":             "80",
		"octaves":           "6",
		"sharpness":         "1.4",
		"water":             "0.25",
		"rivers":            "3",
		"branches":          "0",
		"river_points":      "64",
		"river_width":       "0.04",
		"river_depth":       "0.2",
		"smooth_iters":      "5",
		"scatter_attempts":  "100",
		"density_threshold": "0.7",
		"spawn_chance":      "0.9",
	})

	if cfg.Resolution != 256 || cfg.Seed != 42 {
		t.Fatalf("grid overrides not applied: res=%d seed=%d", cfg.Resolution, cfg.Seed)
	}
	if cfg.Params.Noise.Scale != 80 || cfg.Params.Noise.Octaves != 6 || cfg.Params.Noise.Sharpness != 1.4 {
		t.Fatalf("noise overrides not applied: %+v", cfg.Params.Noise)
	}
	if cfg.Params.WaterHeight != 0.25 {
		t.Fatalf("water override not applied: %v", cfg.Params.WaterHeight)
	}
	r := cfg.Params.Rivers
	if r.Count != 3 || r.Branches != 0 || r.Points != 64 || r.Width != 0.04 || r.Depth != 0.2 {
		t.Fatalf("river overrides not applied: %+v", r)
	}
	s := cfg.Params.Scatter
	if s.Attempts != 100 || s.DensityThreshold != 0.7 || s.SpawnChance != 0.9 {
		t.Fatalf("scatter overrides not applied: %+v", s)
	}
	if cfg.Params.SmoothIterations != 5 {
		t.Fatalf("smooth override not applied: %d", cfg.Params.SmoothIterations)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("overridden config invalid: %v", err)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"res":     "not-a-number",
		"scale":   "-5",
		"octaves": "0",
		"water":   "1.5",
	})
	if cfg.Resolution != def.Resolution {
		t.Fatalf("unparsable res overrode default: %d", cfg.Resolution)
	}
	if cfg.Params.Noise.Scale != def.Params.Noise.Scale {
		t.Fatalf("negative scale overrode default: %v", cfg.Params.Noise.Scale)
	}
	if cfg.Params.Noise.Octaves != def.Params.Noise.Octaves {
		t.Fatalf("zero octaves overrode default: %d", cfg.Params.Noise.Octaves)
	}
	if cfg.Params.WaterHeight != def.Params.WaterHeight {
		t.Fatalf("out-of-range water overrode default: %v", cfg.Params.WaterHeight)
	}
}

func TestFromMapNil(t *testing.T) {
	if got, want := FromMap(nil), DefaultConfig(); got.Resolution != want.Resolution || got.Seed != want.Seed {
		t.Fatal("nil map must yield the default config")
	}
}
