package terrain

import (
	"strconv"

	"landgen/internal/core"
)

// Parameters exposes the current tunables for the HUD panel.
func (g *Generator) Parameters() core.ParameterSnapshot {
	p := g.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("res", "Resolution", g.cfg.Resolution),
				int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam("scale", "Scale", p.Noise.Scale),
				intParam("octaves", "Octaves", p.Noise.Octaves),
				floatParam("persistence", "Persistence", p.Noise.Persistence),
				floatParam("lacunarity", "Lacunarity", p.Noise.Lacunarity),
				floatParam("sharpness", "Sharpness", p.Noise.Sharpness),
				floatParam("max_height", "Max height", p.Noise.MaxHeight),
			},
		},
		{
			Name: "Water & slopes",
			Params: []core.Parameter{
				floatParam("water", "Water height", p.WaterHeight),
				floatParam("slope_threshold", "Slope threshold", p.SlopeThreshold),
				floatParam("slope_strength", "Slope strength", p.SlopeStrength),
				intParam("smooth_iters", "Smooth iterations", p.SmoothIterations),
			},
		},
		{
			Name: "Rivers",
			Params: []core.Parameter{
				intParam("rivers", "Main rivers", p.Rivers.Count),
				intParam("branches", "Branches per river", p.Rivers.Branches),
				intParam("river_points", "Path points", p.Rivers.Points),
				floatParam("river_width", "Width", p.Rivers.Width),
				floatParam("river_depth", "Depth", p.Rivers.Depth),
			},
		},
		{
			Name: "Scatter",
			Params: []core.Parameter{
				intParam("scatter_attempts", "Attempts", p.Scatter.Attempts),
				floatParam("density_threshold", "Density threshold", p.Scatter.DensityThreshold),
				floatParam("spawn_chance", "Spawn chance", p.Scatter.SpawnChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD. Every change
// reruns the whole pipeline; there is no partial reconfiguration mid-run.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "water", Label: "Water height", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 0.98},
		{Key: "sharpness", Label: "Sharpness", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 4},
		{Key: "smooth_iters", Label: "Smooth iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 12},
		{Key: "density_threshold", Label: "Density threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "spawn_chance", Label: "Spawn chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates one float tunable, clamping to its control bounds.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	clampTo := func(min, max float64) float64 {
		if value < min {
			return min
		}
		if value > max {
			return max
		}
		return value
	}
	switch key {
	case "water":
		g.cfg.Params.WaterHeight = clampTo(0, 0.98)
	case "sharpness":
		g.cfg.Params.Noise.Sharpness = clampTo(0.1, 4)
	case "density_threshold":
		g.cfg.Params.Scatter.DensityThreshold = clampTo(0, 1)
	case "spawn_chance":
		g.cfg.Params.Scatter.SpawnChance = clampTo(0, 1)
	default:
		return false
	}
	return true
}

// SetIntParameter updates one integer tunable.
func (g *Generator) SetIntParameter(key string, value int) bool {
	switch key {
	case "smooth_iters":
		if value < 0 {
			value = 0
		}
		if value > 12 {
			value = 12
		}
		g.cfg.Params.SmoothIterations = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
