package worldgen

import (
	"evoworld/internal/domain/world"
)

const (
	elevationCooling = 0.6
	noiseVariance    = 0.25
	weatherTempStep  = 0.01
	weatherWetStep   = 0.01
)

// baseTemp returns the latitude-band base temperature. Bands quantize the
// absolute latitude into cfg.ClimateZones steps: band 0 is equatorial and
// hot, the last band polar and cold.
func baseTemp(lat float64, zones int) float64 {
	if lat < 0 {
		lat = -lat
	}
	band := int(lat * float64(zones))
	if band >= zones {
		band = zones - 1
	}
	// Linear falloff from 1.0 at the equator band to 0.05 at the pole band.
	if zones == 1 {
		return 0.6
	}
	return 1.0 - 0.95*float64(band)/float64(zones-1)
}

// temperatureAt applies the climate overlay to one tile:
// base(latitude) - elevation*cooling + noise*variance, clamped.
func temperatureAt(lat, elevation, noise float64, zones int) float64 {
	t := baseTemp(lat, zones) - elevation*elevationCooling + (noise-0.5)*noiseVariance
	return clamp01(t)
}

// ApplyWeatherDelta nudges temperature and moisture across the grid without
// regenerating. This is the one sanctioned post-generation terrain
// mutation besides the generation passes themselves. Vegetation is
// recomputed because it derives from moisture.
func ApplyWeatherDelta(t *world.Terrain, delta world.WeatherDelta) {
	for i := range t.Tiles {
		tile := &t.Tiles[i]
		tile.Temperature = clamp01(tile.Temperature + delta.Temperature*weatherTempStep)
		if delta.Precipitation != 0 {
			tile.Moisture = clamp01(tile.Moisture + delta.Precipitation*weatherWetStep)
		}
		tile.Vegetation = vegetationDensity(tile.Biome, tile.Fertility, tile.Moisture)
	}
}
