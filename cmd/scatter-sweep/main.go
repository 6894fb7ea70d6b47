package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"landgen/internal/terrain"
)

type paramSet struct {
	densityThreshold float64
	spawnChance      float64
	attempts         int
}

func (p paramSet) String() string {
	return fmt.Sprintf("density=%.2f chance=%.2f attempts=%d", p.densityThreshold, p.spawnChance, p.attempts)
}

type sweepResult struct {
	params          paramSet
	meanAccepted    float64
	rejectedWater   int
	rejectedDensity int
	rejectedChance  int
}

func main() {
	seeds := flag.Int("seeds", 5, "seeds to average per parameter set")
	res := flag.Int("res", 128, "grid resolution for sweep runs")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	baseCfg := terrain.DefaultConfig()
	baseCfg.Resolution = *res

	densityOptions := []float64{0.35, 0.45, 0.55, 0.65, 0.8}
	chanceOptions := []float64{0.15, 0.35, 0.55, 0.8}
	attemptOptions := []int{200, 400, 800}

	var sets []paramSet
	for _, density := range densityOptions {
		for _, chance := range chanceOptions {
			for _, attempts := range attemptOptions {
				sets = append(sets, paramSet{
					densityThreshold: density,
					spawnChance:      chance,
					attempts:         attempts,
				})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds each)\n", len(sets), *workers, *seeds)

	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSweep(baseCfg, params, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].meanAccepted > all[j].meanAccepted })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 by mean accepted placements (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		r := all[i]
		fmt.Printf("%2d) accepted=%.1f rejected[water=%d density=%d chance=%d] %s\n",
			i+1, r.meanAccepted, r.rejectedWater, r.rejectedDensity, r.rejectedChance, r.params)
	}
}

func runSweep(base terrain.Config, params paramSet, seeds int) sweepResult {
	cfg := base
	cfg.Params.Scatter.DensityThreshold = params.densityThreshold
	cfg.Params.Scatter.SpawnChance = params.spawnChance
	cfg.Params.Scatter.Attempts = params.attempts

	gen, err := terrain.NewGenerator(cfg)
	if err != nil {
		// Sweep sets are built from valid ranges; a failure here is a bug.
		panic(err)
	}

	out := sweepResult{params: params}
	total := 0
	for seed := int64(1); seed <= int64(seeds); seed++ {
		result := gen.GenerateSeed(seed)
		total += result.Stats.Accepted
		out.rejectedWater += result.Stats.RejectedWater
		out.rejectedDensity += result.Stats.RejectedDensity
		out.rejectedChance += result.Stats.RejectedChance
	}
	if seeds > 0 {
		out.meanAccepted = float64(total) / float64(seeds)
	}
	return out
}
