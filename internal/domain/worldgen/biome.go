package worldgen

import (
	"log"

	"evoworld/internal/domain/world"
)

// classifierInput bundles the four classifier inputs so the fallback log
// can print them when the unreachable branch fires.
type classifierInput struct {
	Elevation   float64
	Moisture    float64
	Temperature float64
	Latitude    float64
}

// ClassifyBiome is a pure, total function over (elevation, moisture,
// temperature, latitude). Rules evaluate top-down; the grassland default
// guarantees no input triple goes unmatched. Thresholds relative to
// seaLevel so reconfigured oceans keep coherent coastlines.
func ClassifyBiome(elevation, moisture, temperature, latitude, seaLevel float64) world.BiomeType {
	b, ok := classify(elevation, moisture, temperature, latitude, seaLevel)
	if !ok {
		// Unreachable given the default rule. Logged as a defect signal
		// rather than aborting generation.
		log.Printf("biome classifier fell through: %+v", classifierInput{elevation, moisture, temperature, latitude})
		return world.BiomeGrassland
	}
	return b
}

func classify(elevation, moisture, temperature, latitude, seaLevel float64) (world.BiomeType, bool) {
	// Water short-circuits everything else.
	if elevation < seaLevel {
		if elevation < seaLevel*0.5 {
			return world.BiomeOcean, true
		}
		if moisture < 0.35 {
			// Shallow dry basin reads as coastal sand, not water.
			return world.BiomeBeach, true
		}
		return world.BiomeLake, true
	}

	polar := latitude > 0.85 || latitude < -0.85

	// High elevation band.
	if elevation > 0.8 {
		switch {
		case temperature > 0.75:
			return world.BiomeVolcanic, true
		case temperature < 0.25 || polar:
			return world.BiomeArctic, true
		default:
			return world.BiomeMountain, true
		}
	}

	// Highland band.
	if elevation > 0.6 {
		switch {
		case temperature < 0.2 || polar:
			return world.BiomeTundra, true
		default:
			return world.BiomeHighland, true
		}
	}

	// Lowland: 2D moisture x temperature table.
	if polar {
		return world.BiomeArctic, true
	}
	switch {
	case temperature < 0.2:
		return world.BiomeTundra, true
	case temperature > 0.65 && moisture < 0.3:
		return world.BiomeDesert, true
	case temperature > 0.65 && moisture > 0.7:
		return world.BiomeJungle, true
	case moisture > 0.8:
		return world.BiomeSwamp, true
	case moisture > 0.5:
		return world.BiomeForest, true
	case elevation < seaLevel+0.03 && moisture < 0.45:
		return world.BiomeBeach, true
	default:
		return world.BiomeGrassland, true
	}
}

var baseFertility = map[world.BiomeType]float64{
	world.BiomeJungle:    0.9,
	world.BiomeSwamp:     0.8,
	world.BiomeForest:    0.7,
	world.BiomeGrassland: 0.6,
	world.BiomeVolcanic:  0.5,
	world.BiomeHighland:  0.4,
	world.BiomeMountain:  0.3,
	world.BiomeTundra:    0.2,
	world.BiomeDesert:    0.1,
	world.BiomeArctic:    0.1,
}

func fertility(biome world.BiomeType, elevation, moisture, temperature float64) float64 {
	base := baseFertility[biome] // water biomes stay 0
	moistureFactor := moisture*0.5 + 0.5
	temperatureFactor := 0.5
	if temperature > 0.3 && temperature < 0.8 {
		temperatureFactor = 1.0
	}
	elevationFactor := 0.7
	if elevation > 0.2 && elevation < 0.6 {
		elevationFactor = 1.0
	}
	return base * moistureFactor * temperatureFactor * elevationFactor
}

var baseVegetation = map[world.BiomeType]float64{
	world.BiomeJungle:    0.9,
	world.BiomeForest:    0.8,
	world.BiomeSwamp:     0.6,
	world.BiomeGrassland: 0.4,
	world.BiomeHighland:  0.35,
	world.BiomeMountain:  0.3,
	world.BiomeTundra:    0.2,
	world.BiomeVolcanic:  0.2,
	world.BiomeDesert:    0.1,
	world.BiomeArctic:    0.1,
}

func vegetationDensity(biome world.BiomeType, fert, moisture float64) float64 {
	return baseVegetation[biome] * fert * moisture
}

func waterLevel(elevation, moisture, seaLevel float64) float64 {
	switch {
	case elevation < seaLevel*0.5:
		return 1.0
	case elevation < seaLevel && moisture >= 0.35:
		return 0.5
	default:
		return 0.0
	}
}
