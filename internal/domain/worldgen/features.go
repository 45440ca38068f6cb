package worldgen

import (
	"math/rand"

	"evoworld/internal/domain/world"
)

// structureRule is a per-kind eligibility predicate plus an acceptance
// rate over eligible tiles.
type structureRule struct {
	kind     world.StructureKind
	rate     float64
	eligible func(t *world.Terrain, tile *world.Tile) bool
}

var structureRules = []structureRule{
	{world.StructureCave, 0.010, func(_ *world.Terrain, tile *world.Tile) bool {
		return tile.Biome == world.BiomeMountain || tile.Biome == world.BiomeHighland
	}},
	{world.StructureWaterfall, 0.020, func(_ *world.Terrain, tile *world.Tile) bool {
		return tile.River && tile.Elevation > 0.5
	}},
	{world.StructureHotSpring, 0.020, func(t *world.Terrain, tile *world.Tile) bool {
		return nearBiome(t, tile.X, tile.Y, world.BiomeVolcanic, 2)
	}},
	{world.StructureGeyser, 0.010, func(_ *world.Terrain, tile *world.Tile) bool {
		return tile.Biome == world.BiomeVolcanic
	}},
	{world.StructureCanyon, 0.003, func(_ *world.Terrain, tile *world.Tile) bool {
		return (tile.Biome == world.BiomeDesert || tile.Biome == world.BiomeHighland) &&
			tile.Elevation > 0.4 && tile.Elevation < 0.8
	}},
	{world.StructureAncientRuins, 0.002, func(_ *world.Terrain, tile *world.Tile) bool {
		switch tile.Biome {
		case world.BiomeGrassland, world.BiomeDesert, world.BiomeForest:
			return true
		}
		return false
	}},
	{world.StructureRockFormation, 0.004, func(_ *world.Terrain, tile *world.Tile) bool {
		return !tile.Biome.IsWater()
	}},
}

// mineralWeights order matters: common first. Rarity weight shrinks and
// the elevation bias grows toward the end of the table.
var mineralTable = []struct {
	typ      world.MineralType
	weight   float64
	elevBias float64 // added weight share at elevation 1.0
}{
	{world.MineralStone, 8.0, 0.0},
	{world.MineralClay, 6.0, 0.0},
	{world.MineralSalt, 3.0, 0.0},
	{world.MineralCoal, 2.0, 0.5},
	{world.MineralIron, 3.0, 1.0},
	{world.MineralCopper, 2.0, 1.0},
	{world.MineralSilver, 0.8, 1.5},
	{world.MineralGold, 0.5, 2.0},
	{world.MineralGems, 0.2, 2.5},
}

const mineralNoiseThreshold = 0.62

// placeFeatures scatters mineral deposits and natural structures.
// Candidates come from the dedicated mineral noise channel and the seeded
// RNG; a minimum-spacing rule rejects any candidate within the configured
// radius of an already-placed feature of the same kind.
func placeFeatures(t *world.Terrain, rng *rand.Rand) {
	cfg := t.Config
	mineralNoise := newPerlin(cfg.Seed + seedOffsetMineral)

	placedMinerals := map[world.MineralType][]world.Point{}
	placedStructs := map[world.StructureKind][]world.Point{}

	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			tile := &t.Tiles[y*t.Width+x]

			if !tile.Biome.IsWater() {
				n := (mineralNoise.octaveNoise2D(float64(x)*0.05, float64(y)*0.05, 2, 2.0, 0.5) + 1) * 0.5
				if n > mineralNoiseThreshold {
					placeMineral(tile, n, rng, placedMinerals, cfg.MineralSpacing)
				}
			}

			for _, rule := range structureRules {
				if !rule.eligible(t, tile) {
					continue
				}
				if rng.Float64() >= rule.rate {
					continue
				}
				if tooClose(placedStructs[rule.kind], x, y, cfg.StructureSpacing) {
					continue
				}
				tile.Structure = &world.Structure{
					Kind:      rule.kind,
					Magnitude: 0.5 + rng.Float64()*0.5,
					Condition: 1.0,
				}
				placedStructs[rule.kind] = append(placedStructs[rule.kind], world.Point{X: x, Y: y})
				break // one structure per tile
			}
		}
	}
}

// placeMineral draws a type from the rarity-weighted table. Elevation
// shifts weight toward rarer minerals, so peaks and deep terrain carry the
// gold and gems.
func placeMineral(tile *world.Tile, noise float64, rng *rand.Rand, placed map[world.MineralType][]world.Point, spacing int) {
	total := 0.0
	weights := make([]float64, len(mineralTable))
	for i, m := range mineralTable {
		w := m.weight + m.elevBias*tile.Elevation
		weights[i] = w
		total += w
	}

	roll := rng.Float64() * total
	idx := len(mineralTable) - 1
	acc := 0.0
	for i, w := range weights {
		acc += w
		if roll <= acc {
			idx = i
			break
		}
	}

	typ := mineralTable[idx].typ
	if tooClose(placed[typ], tile.X, tile.Y, spacing) {
		return
	}

	richness := clamp01((noise - mineralNoiseThreshold) / (1 - mineralNoiseThreshold) * (0.5 + tile.Elevation*0.5))
	tile.Mineral = &world.MineralDeposit{
		Type:     typ,
		Richness: richness,
		Depth:    tile.Elevation * 10,
	}
	placed[typ] = append(placed[typ], world.Point{X: tile.X, Y: tile.Y})
}

func tooClose(placed []world.Point, x, y, radius int) bool {
	r2 := radius * radius
	for _, p := range placed {
		dx, dy := p.X-x, p.Y-y
		if dx*dx+dy*dy < r2 {
			return true
		}
	}
	return false
}

func nearBiome(t *world.Terrain, x, y int, biome world.BiomeType, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if tile := t.TileAt(x+dx, y+dy); tile != nil && tile.Biome == biome {
				return true
			}
		}
	}
	return false
}
