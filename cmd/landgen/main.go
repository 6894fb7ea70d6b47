//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"landgen/internal/app"
	"landgen/internal/terrain"
)

func main() {
	preset := flag.String("preset", "default", "parameter preset: "+strings.Join(terrain.PresetNames(), ", "))
	res := flag.Int("res", 0, "grid resolution override")
	seed := flag.Int64("seed", 0, "seed override")
	scale := flag.Int("scale", 4, "pixel scale multiplier")
	flag.Parse()

	cfg, ok := terrain.Preset(*preset)
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
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

	game := app.New(gen, *scale)
	size := gen.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("landgen (%s)", *preset))
	ebiten.SetWindowSize(size.W**scale+230, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
