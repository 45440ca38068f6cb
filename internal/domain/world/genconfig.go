package world

import (
	"errors"
	"fmt"
)

var ErrInvalidGenConfig = errors.New("invalid generation config")

// GenConfig holds every knob the generation passes read. Invalid values
// fail fast at Validate; nothing is silently clamped.
type GenConfig struct {
	Width  int   `json:"width" yaml:"width"`
	Height int   `json:"height" yaml:"height"`
	Seed   int64 `json:"seed" yaml:"seed"`

	// Noise band weights for the elevation field.
	ContinentWeight float64 `json:"continent_weight" yaml:"continent_weight"`
	MountainWeight  float64 `json:"mountain_weight" yaml:"mountain_weight"`
	DetailWeight    float64 `json:"detail_weight" yaml:"detail_weight"`

	SeaLevel     float64 `json:"sea_level" yaml:"sea_level"`
	ClimateZones int     `json:"climate_zones" yaml:"climate_zones"`

	ErosionIterations int     `json:"erosion_iterations" yaml:"erosion_iterations"`
	ErosionThreshold  float64 `json:"erosion_threshold" yaml:"erosion_threshold"`
	ErosionRate       float64 `json:"erosion_rate" yaml:"erosion_rate"`

	RiverCount    int `json:"river_count" yaml:"river_count"`
	RiverMaxSteps int `json:"river_max_steps" yaml:"river_max_steps"`
	BankRadius    int `json:"bank_radius" yaml:"bank_radius"`

	MineralSpacing   int `json:"mineral_spacing" yaml:"mineral_spacing"`
	StructureSpacing int `json:"structure_spacing" yaml:"structure_spacing"`

	// RegionSize is the side length, in tiles, of an environmental region.
	RegionSize int `json:"region_size" yaml:"region_size"`

	ResourceDensity float64 `json:"resource_density" yaml:"resource_density"`
}

func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:             256,
		Height:            256,
		Seed:              42,
		ContinentWeight:   1.0,
		MountainWeight:    0.55,
		DetailWeight:      0.2,
		SeaLevel:          0.32,
		ClimateZones:      5,
		ErosionIterations: 12,
		ErosionThreshold:  0.02,
		ErosionRate:       0.25,
		RiverCount:        8,
		RiverMaxSteps:     4096,
		BankRadius:        1,
		MineralSpacing:    4,
		StructureSpacing:  6,
		RegionSize:        16,
		ResourceDensity:   0.05,
	}
}

func (c GenConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGenConfig, c.Width, c.Height)
	case c.ContinentWeight < 0 || c.MountainWeight < 0 || c.DetailWeight < 0:
		return fmt.Errorf("%w: negative noise weight", ErrInvalidGenConfig)
	case c.ContinentWeight+c.MountainWeight+c.DetailWeight == 0:
		return fmt.Errorf("%w: all noise weights are zero", ErrInvalidGenConfig)
	case c.SeaLevel <= 0 || c.SeaLevel >= 1:
		return fmt.Errorf("%w: sea level %v outside (0,1)", ErrInvalidGenConfig, c.SeaLevel)
	case c.ClimateZones < 1:
		return fmt.Errorf("%w: climate zones %d", ErrInvalidGenConfig, c.ClimateZones)
	case c.ErosionIterations < 0:
		return fmt.Errorf("%w: erosion iterations %d", ErrInvalidGenConfig, c.ErosionIterations)
	case c.ErosionRate < 0 || c.ErosionRate > 1:
		return fmt.Errorf("%w: erosion rate %v outside [0,1]", ErrInvalidGenConfig, c.ErosionRate)
	case c.RiverCount < 0:
		return fmt.Errorf("%w: river count %d", ErrInvalidGenConfig, c.RiverCount)
	case c.RiverMaxSteps <= 0:
		return fmt.Errorf("%w: river max steps %d", ErrInvalidGenConfig, c.RiverMaxSteps)
	case c.BankRadius < 0:
		return fmt.Errorf("%w: bank radius %d", ErrInvalidGenConfig, c.BankRadius)
	case c.MineralSpacing < 0 || c.StructureSpacing < 0:
		return fmt.Errorf("%w: negative feature spacing", ErrInvalidGenConfig)
	case c.RegionSize < 1:
		return fmt.Errorf("%w: region size %d", ErrInvalidGenConfig, c.RegionSize)
	case c.ResourceDensity < 0 || c.ResourceDensity > 1:
		return fmt.Errorf("%w: resource density %v outside [0,1]", ErrInvalidGenConfig, c.ResourceDensity)
	}
	return nil
}
