package worldgen

import (
	"math"
	"runtime"
	"sync"

	"evoworld/internal/domain/world"
)

// Noise channel offsets. Each scalar field gets an independently seeded
// generator so the fields decorrelate.
const (
	seedOffsetMoisture    = 1
	seedOffsetTemperature = 2
	seedOffsetMineral     = 3
	seedOffsetStructure   = 4
)

const (
	continentScale = 0.008
	mountainScale  = 0.035
	detailScale    = 0.11
	moistureScale  = 0.02
	temperatScale  = 0.015
)

// fieldGenerator produces the raw elevation/moisture/temperature scalar
// fields for a grid. Per-tile sampling is pure, so rows fan out across a
// worker pool and merge into flat slices afterward.
type fieldGenerator struct {
	cfg       world.GenConfig
	elevation *perlin
	moisture  *perlin
	temperat  *perlin
}

func newFieldGenerator(cfg world.GenConfig) *fieldGenerator {
	return &fieldGenerator{
		cfg:       cfg,
		elevation: newPerlin(cfg.Seed),
		moisture:  newPerlin(cfg.Seed + seedOffsetMoisture),
		temperat:  newPerlin(cfg.Seed + seedOffsetTemperature),
	}
}

// elevationAt combines the continental, mountain and detail bands into a
// weighted sum. The raw sum is rescaled later; see generateFields.
func (g *fieldGenerator) elevationAt(x, y float64) float64 {
	continent := (g.elevation.octaveNoise2D(x*continentScale, y*continentScale, 4, 2.0, 0.5) + 1) * 0.5
	mountain := g.elevation.ridged(x*mountainScale, y*mountainScale, 3)
	detail := (g.elevation.octaveNoise2D(x*detailScale, y*detailScale, 2, 2.0, 0.5) + 1) * 0.5

	return continent*g.cfg.ContinentWeight + mountain*g.cfg.MountainWeight + detail*g.cfg.DetailWeight
}

func (g *fieldGenerator) moistureAt(x, y float64) float64 {
	return (g.moisture.octaveNoise2D(x*moistureScale, y*moistureScale, 3, 2.0, 0.5) + 1) * 0.5
}

func (g *fieldGenerator) temperatureNoiseAt(x, y float64) float64 {
	return (g.temperat.octaveNoise2D(x*temperatScale, y*temperatScale, 3, 2.0, 0.5) + 1) * 0.5
}

type rawFields struct {
	elevation []float64
	moisture  []float64
	tempNoise []float64
}

// generateFields fills all three fields, then rescales elevation to span
// [0,1] exactly. Without the rescale, extreme octave weights collapse the
// field into all-ocean or all-land.
func (g *fieldGenerator) generateFields(progress func(done, total int)) rawFields {
	w, h := g.cfg.Width, g.cfg.Height
	out := rawFields{
		elevation: make([]float64, w*h),
		moisture:  make([]float64, w*h),
		tempNoise: make([]float64, w*h),
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < w; x++ {
					fx, fy := float64(x), float64(y)
					idx := y*w + x
					out.elevation[idx] = g.elevationAt(fx, fy)
					out.moisture[idx] = g.moistureAt(fx, fy)
					out.tempNoise[idx] = g.temperatureNoiseAt(fx, fy)
				}
				if progress != nil {
					mu.Lock()
					done++
					progress(done, h)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	rescaleUnit(out.elevation)
	clampUnit(out.moisture)
	return out
}

// rescaleUnit stretches values to fill [0,1]. A flat field maps to 0.5.
func rescaleUnit(vals []float64) {
	if len(vals) == 0 {
		return
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		for i := range vals {
			vals[i] = 0.5
		}
		return
	}
	for i := range vals {
		vals[i] = (vals[i] - lo) / span
	}
}

func clampUnit(vals []float64) {
	for i, v := range vals {
		vals[i] = clamp01(v)
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
