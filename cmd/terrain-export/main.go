package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"landgen/internal/render"
	"landgen/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	preset := flag.String("preset", "default", "parameter preset: "+strings.Join(terrain.PresetNames(), ", "))
	res := flag.Int("res", 0, "grid resolution override")
	seed := flag.Int64("seed", 0, "seed override")
	out := flag.String("out", "terrain", "output file prefix")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable, default preset only)")
	flag.Parse()

	cfg, ok := terrain.Preset(*preset)
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	if len(overrides) > 0 {
		if *preset != "default" {
			log.Fatal("-set overrides are only supported with the default preset")
		}
		m := make(map[string]string, len(overrides))
		for _, kv := range overrides {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				log.Fatalf("invalid override %q, want key=value", kv)
			}
			m[parts[0]] = parts[1]
		}
		cfg = terrain.FromMap(m)
	}
	if *res > 0 {
		cfg.Resolution = *res
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	gen, err := terrain.NewGenerator(cfg)
	if err != nil {
		log.Fatal(err)
	}
	result := gen.Generate()

	if err := writeHeightPNG(*out+"_height.png", result, cfg.Params.WaterHeight); err != nil {
		log.Fatal(err)
	}
	if err := writeLayerPNG(*out+"_layers.png", result, cfg.Params.Layers); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("generated %dx%d terrain (seed %d)\n", result.Resolution, result.Resolution, cfg.Seed)
	fmt.Printf("rivers: %d paths\n", len(result.Rivers))
	fmt.Printf("placements: %d accepted of %d attempts (water %d, density %d, chance %d, ground %d rejected)\n",
		result.Stats.Accepted, result.Stats.Attempts,
		result.Stats.RejectedWater, result.Stats.RejectedDensity,
		result.Stats.RejectedChance, result.Stats.RejectedGround)
	for _, t := range result.Timings {
		fmt.Printf("  %-10s %s\n", t.Name, t.Duration)
	}
}

func writeHeightPNG(path string, result *terrain.Result, water float64) error {
	img := image.NewRGBA(image.Rect(0, 0, result.Resolution, result.Resolution))
	render.FillHeightRGBA(img.Pix, result.Heights.Values(), water)
	return writePNG(path, img)
}

func writeLayerPNG(path string, result *terrain.Result, layers []terrain.SurfaceLayer) error {
	ids := make([]string, len(layers))
	for i, layer := range layers {
		ids[i] = layer.ID
	}
	palette := render.LayerPalette(ids)

	cells := make([]uint8, result.Splat.Cells)
	for i := range cells {
		cells[i] = uint8(result.Splat.Dominant(i))
	}

	img := image.NewRGBA(image.Rect(0, 0, result.Resolution, result.Resolution))
	render.FillPaletteRGBA(img.Pix, cells, palette)
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
