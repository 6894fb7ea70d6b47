package terrain

import "sort"

var presets = map[string]func() Config{
	"default":   DefaultConfig,
	"highlands": HighlandsConfig,
	"wetlands":  WetlandsConfig,
}

// Preset returns the named parameter preset.
func Preset(name string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return f(), true
}

// PresetNames lists the available presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HighlandsConfig trades rivers for sharp peaks and sparse scatter.
func HighlandsConfig() Config {
	c := DefaultConfig()
	c.Params.Noise.Octaves = 5
	c.Params.Noise.Sharpness = 1.6
	c.Params.WaterHeight = 0.22
	c.Params.Rivers.Count = 1
	c.Params.Rivers.Branches = 0
	c.Params.Rivers.Depth = 0.1
	c.Params.SmoothIterations = 1
	c.Params.Scatter.Attempts = 200
	c.Params.Scatter.DensityThreshold = 0.6
	c.Params.Layers = []SurfaceLayer{
		{ID: "water", MaxHeight: 0.22},
		{ID: "grass", MaxHeight: 0.45},
		{ID: "forest", MaxHeight: 0.6},
		{ID: "rock", MaxHeight: 0.85},
		{ID: "snow", MaxHeight: 1.0},
	}
	c.Params.Scatter.PaintLayer = 2
	return c
}

// WetlandsConfig raises the water line and multiplies river branches.
func WetlandsConfig() Config {
	c := DefaultConfig()
	c.Params.Noise.Sharpness = 0.7
	c.Params.WaterHeight = 0.42
	c.Params.Rivers.Count = 2
	c.Params.Rivers.Branches = 2
	c.Params.Rivers.Width = 0.08
	c.Params.Scatter.Attempts = 600
	c.Params.Scatter.DensityThreshold = 0.45
	c.Params.Scatter.SpawnChance = 0.5
	c.Params.Layers = []SurfaceLayer{
		{ID: "water", MaxHeight: 0.42},
		{ID: "mud", MaxHeight: 0.48},
		{ID: "grass", MaxHeight: 0.65},
		{ID: "forest", MaxHeight: 0.85},
		{ID: "rock", MaxHeight: 1.0},
	}
	c.Params.Scatter.PaintLayer = 3
	return c
}
