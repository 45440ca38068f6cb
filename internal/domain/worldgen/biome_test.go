package worldgen

import (
	"testing"

	"evoworld/internal/domain/world"
)

func TestClassifyBiomeIsTotal(t *testing.T) {
	known := map[world.BiomeType]bool{}
	for _, b := range world.Biomes {
		known[b] = true
	}

	const step = 0.05
	latitudes := []float64{-1, -0.9, -0.5, 0, 0.5, 0.9, 1}
	seaLevels := []float64{0.2, 0.32, 0.5}

	for _, sea := range seaLevels {
		for _, lat := range latitudes {
			for e := 0.0; e <= 1.0; e += step {
				for m := 0.0; m <= 1.0; m += step {
					for temp := 0.0; temp <= 1.0; temp += step {
						b := ClassifyBiome(e, m, temp, lat, sea)
						if !known[b] {
							t.Fatalf("classifier returned unknown biome %q for e=%v m=%v t=%v lat=%v sea=%v",
								b, e, m, temp, lat, sea)
						}
					}
				}
			}
		}
	}
}

func TestClassifyBiomeWaterShortCircuit(t *testing.T) {
	const sea = 0.32

	if got := ClassifyBiome(0.1, 0.9, 0.9, 0, sea); got != world.BiomeOcean {
		t.Fatalf("deep tile: got %q, want ocean", got)
	}
	if got := ClassifyBiome(0.2, 0.9, 0.5, 0, sea); got != world.BiomeLake {
		t.Fatalf("shallow wet tile: got %q, want lake", got)
	}
	if got := ClassifyBiome(0.2, 0.1, 0.5, 0, sea); got != world.BiomeBeach {
		t.Fatalf("shallow dry tile: got %q, want beach", got)
	}
}

func TestClassifyBiomeBands(t *testing.T) {
	const sea = 0.32
	cases := []struct {
		name            string
		e, m, temp, lat float64
		want            world.BiomeType
	}{
		{"hot peak is volcanic", 0.9, 0.5, 0.9, 0, world.BiomeVolcanic},
		{"cold peak is arctic", 0.9, 0.5, 0.1, 0, world.BiomeArctic},
		{"temperate peak is mountain", 0.9, 0.5, 0.5, 0, world.BiomeMountain},
		{"polar peak is arctic", 0.9, 0.5, 0.5, 0.95, world.BiomeArctic},
		{"cold highland is tundra", 0.7, 0.5, 0.1, 0, world.BiomeTundra},
		{"mild highland is highland", 0.7, 0.5, 0.5, 0, world.BiomeHighland},
		{"polar lowland is arctic", 0.4, 0.5, 0.5, -0.95, world.BiomeArctic},
		{"hot dry lowland is desert", 0.4, 0.1, 0.9, 0, world.BiomeDesert},
		{"hot wet lowland is jungle", 0.4, 0.9, 0.9, 0, world.BiomeJungle},
		{"soaked lowland is swamp", 0.4, 0.9, 0.5, 0, world.BiomeSwamp},
		{"moist lowland is forest", 0.4, 0.6, 0.5, 0, world.BiomeForest},
		{"dry shore is beach", 0.33, 0.2, 0.5, 0, world.BiomeBeach},
		{"temperate default is grassland", 0.45, 0.4, 0.5, 0, world.BiomeGrassland},
	}

	for _, tc := range cases {
		if got := ClassifyBiome(tc.e, tc.m, tc.temp, tc.lat, sea); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
