package worldgen

import (
	"fmt"
	"math/rand"

	"evoworld/internal/domain/world"
)

// ProgressFunc reports generation progress as a fraction of rows
// classified. Large worlds surface this to the bootstrap log.
type ProgressFunc func(fraction float64)

// Generate builds a Terrain from (seed, config). The passes run in a fixed
// order (fields, erosion, climate, biomes, rivers, features, finalize) and
// all randomness flows through one RNG seeded from cfg.Seed, so the same
// inputs always produce a bit-identical world.
func Generate(cfg world.GenConfig, progress ProgressFunc) (*world.Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("worldgen: %w", err)
	}

	t := world.NewTerrain(cfg)
	rng := rand.New(rand.NewSource(cfg.Seed))

	gen := newFieldGenerator(cfg)
	var rowProgress func(done, total int)
	if progress != nil {
		rowProgress = func(done, total int) {
			progress(float64(done) / float64(total))
		}
	}
	fields := gen.generateFields(rowProgress)

	erode(fields.elevation, cfg.Width, cfg.Height, cfg.ErosionIterations, cfg.ErosionThreshold, cfg.ErosionRate)

	for y := 0; y < cfg.Height; y++ {
		lat := t.Latitude(y)
		for x := 0; x < cfg.Width; x++ {
			idx := y*cfg.Width + x
			tile := &t.Tiles[idx]
			tile.X, tile.Y = x, y
			tile.Elevation = fields.elevation[idx]
			tile.Moisture = fields.moisture[idx]
			tile.Temperature = temperatureAt(lat, tile.Elevation, fields.tempNoise[idx], cfg.ClimateZones)
			tile.Biome = ClassifyBiome(tile.Elevation, tile.Moisture, tile.Temperature, lat, cfg.SeaLevel)
		}
	}

	traceRivers(t, rng)
	placeFeatures(t, rng)
	finalizeTiles(t)

	return t, nil
}

// finalizeTiles derives the dependent fields after every mutation pass has
// run, so riverbank moisture boosts feed fertility and vegetation.
func finalizeTiles(t *world.Terrain) {
	for i := range t.Tiles {
		tile := &t.Tiles[i]
		tile.Fertility = fertility(tile.Biome, tile.Elevation, tile.Moisture, tile.Temperature)
		tile.Vegetation = vegetationDensity(tile.Biome, tile.Fertility, tile.Moisture)
		tile.WaterLevel = waterLevel(tile.Elevation, tile.Moisture, t.Config.SeaLevel)
	}
}
