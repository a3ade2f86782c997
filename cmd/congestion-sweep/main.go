// congestion-sweep runs the freight scenario headless across a grid of
// congestion tunings and reports dwell-time percentiles, peak congestion
// levels, and replay heat coverage per parameter set.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridlock/internal/core"
	"gridlock/internal/overlay"
	"gridlock/internal/render"
	"gridlock/internal/sim/freight"
	"gridlock/pkg/stats"
)

type paramSet struct {
	trucks   int
	onset    float64
	capacity float64
	jamMass  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("trucks=%d onset=%.0f cap=%.0f jam=%.0f", p.trucks, p.onset, p.capacity, p.jamMass)
}

type result struct {
	params    paramSet
	dwellP50  float64
	dwellP90  float64
	dwellP99  float64
	peakLevel float64
	meanLevel float64
	heatCells int
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "scenario seed")
	flag.Parse()

	truckOptions := []int{120, 220, 360}
	onsetOptions := []float64{200, 400, 800}
	capOptions := []float64{2400, 4800}
	jamOptions := []float64{3000, 5000}

	var sets []paramSet
	for _, trucks := range truckOptions {
		for _, onset := range onsetOptions {
			for _, capacity := range capOptions {
				for _, jam := range jamOptions {
					sets = append(sets, paramSet{trucks: trucks, onset: onset, capacity: capacity, jamMass: jam})
				}
			}
		}
	}

	jobs := make(chan paramSet)
	results := make(chan result)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- run(p, *steps, *seed)
			}
		}()
	}
	go func() {
		for _, p := range sets {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	start := time.Now()
	var all []result
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].peakLevel > all[j].peakLevel })

	fmt.Printf("swept %d parameter sets in %s\n", len(all), time.Since(start).Round(time.Millisecond))
	for _, r := range all {
		fmt.Printf("%s  dwell p50/p90/p99=%.0f/%.0f/%.0f  level mean=%.3f peak=%.3f  heat cells=%d\n",
			r.params, r.dwellP50, r.dwellP90, r.dwellP99, r.meanLevel, r.peakLevel, r.heatCells)
	}
}

func run(p paramSet, steps int, seed int64) result {
	cfg := freight.DefaultConfig()
	cfg.Seed = seed
	cfg.Params.TruckCount = p.trucks
	cfg.Params.JamMass = p.jamMass
	cfg.Thresholds.OnsetThreshold = p.onset
	cfg.Thresholds.RoadCapacity = p.capacity

	sim := freight.New(cfg)
	for i := 0; i < steps; i++ {
		sim.Step()
	}

	res := result{params: p}
	dwell := sim.DwellTimes()
	res.dwellP50 = stats.Percentile(dwell, 0.50)
	res.dwellP90 = stats.Percentile(dwell, 0.90)
	res.dwellP99 = stats.Percentile(dwell, 0.99)

	grid := sim.Snapshot()
	th := sim.Thresholds()
	denom := th.DensityRange()
	sum := 0.0
	for _, idx := range grid.RoadCells {
		eff := grid.Mass[idx] + th.CommuterEquivKg*grid.CommuterLoad[idx]
		level := (eff - th.OnsetThreshold) / denom
		if level < 0 {
			level = 0
		}
		sum += level
		if level > res.peakLevel {
			res.peakLevel = level
		}
	}
	if len(grid.RoadCells) > 0 {
		res.meanLevel = sum / float64(len(grid.RoadCells))
	}
	res.heatCells = heatCoverage(sim)
	return res
}

// heatCoverage renders the last captured replay frame into an offscreen
// raster and counts the pixels the heatmap touched.
func heatCoverage(sim *freight.Sim) int {
	rec := sim.Recorder()
	frame := rec.Frame(rec.Len() - 1)
	if frame == nil {
		return 0
	}
	roi := sim.ROI()
	n := sim.Snapshot().N
	side := int(float64(n) * roi.CellSize)
	dst := render.NewBufferSurface(side, side)
	cam := core.NewCamera(1, 0, 0, side, side)

	var heat overlay.ReplayHeatmap
	heat.Draw(frame, cam, roi, dst)

	px := dst.Pixels()
	count := 0
	for i := 3; i < len(px); i += 4 {
		if px[i] > 0 {
			count++
		}
	}
	return count
}
