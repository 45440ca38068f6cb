package ecology

import "evoworld/internal/domain/world"

// Per-type spawn profile. Weights follow the original catalog; eligibility
// is biome membership plus elevation/moisture/temperature ranges evaluated
// at the candidate tile.
type spawnProfile struct {
	Weight      float64
	Renewable   bool
	Rarity      Rarity
	Tech        int
	QuantityMin float64
	QuantityMax float64
	QualityMin  float64
	QualityMax  float64
	Biomes      []world.BiomeType
	ElevMin     float64
	ElevMax     float64
	MoistMin    float64
	MoistMax    float64
	TempMin     float64
	TempMax     float64
	Seasons     []world.Season // empty = year-round
}

var (
	anyLand = []world.BiomeType{
		world.BiomeBeach, world.BiomeDesert, world.BiomeGrassland,
		world.BiomeForest, world.BiomeJungle, world.BiomeSwamp,
		world.BiomeTundra, world.BiomeArctic, world.BiomeHighland,
		world.BiomeMountain, world.BiomeVolcanic,
	}
	fertileLand = []world.BiomeType{
		world.BiomeGrassland, world.BiomeForest, world.BiomeJungle, world.BiomeSwamp,
	}
	wooded    = []world.BiomeType{world.BiomeForest, world.BiomeJungle}
	rocky     = []world.BiomeType{world.BiomeMountain, world.BiomeHighland, world.BiomeVolcanic}
	waterside = []world.BiomeType{world.BiomeOcean, world.BiomeLake, world.BiomeBeach, world.BiomeSwamp}

	growthSeasons = []world.Season{world.SeasonSpring, world.SeasonSummer, world.SeasonAutumn}
	warmSeasons   = []world.Season{world.SeasonSpring, world.SeasonSummer}
)

var spawnProfiles = map[ResourceType]spawnProfile{
	ResourceFood:    {Weight: 15, Renewable: true, Rarity: RarityCommon, Tech: 0, QuantityMin: 10, QuantityMax: 50, QualityMin: 0.7, QualityMax: 1.0, Biomes: fertileLand, ElevMin: 0, ElevMax: 0.7, MoistMin: 0.2, MoistMax: 1, TempMin: 0.2, TempMax: 0.9, Seasons: growthSeasons},
	ResourceWater:   {Weight: 12, Renewable: true, Rarity: RarityCommon, Tech: 0, QuantityMin: 10, QuantityMax: 50, QualityMin: 0.7, QualityMax: 1.0, Biomes: waterside, ElevMin: 0, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceHerbs:   {Weight: 8, Renewable: true, Rarity: RarityUncommon, Tech: 0, QuantityMin: 0.5, QuantityMax: 3, QualityMin: 0.4, QualityMax: 0.8, Biomes: fertileLand, ElevMin: 0, ElevMax: 0.6, MoistMin: 0.3, MoistMax: 1, TempMin: 0.3, TempMax: 0.9, Seasons: warmSeasons},
	ResourceBerries: {Weight: 9, Renewable: true, Rarity: RarityCommon, Tech: 0, QuantityMin: 2, QuantityMax: 8, QualityMin: 0.4, QualityMax: 0.8, Biomes: fertileLand, ElevMin: 0, ElevMax: 0.6, MoistMin: 0.3, MoistMax: 1, TempMin: 0.25, TempMax: 0.85, Seasons: growthSeasons},
	ResourceFish:    {Weight: 5, Renewable: true, Rarity: RarityCommon, Tech: 1, QuantityMin: 2, QuantityMax: 8, QualityMin: 0.4, QualityMax: 0.8, Biomes: waterside, ElevMin: 0, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceGame:    {Weight: 4, Renewable: true, Rarity: RarityUncommon, Tech: 1, QuantityMin: 1, QuantityMax: 4, QualityMin: 0.4, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeGrassland, world.BiomeForest, world.BiomeTundra}, ElevMin: 0, ElevMax: 0.8, MoistMin: 0.1, MoistMax: 1, TempMin: 0.1, TempMax: 0.9},
	ResourceWood:    {Weight: 10, Renewable: true, Rarity: RarityCommon, Tech: 0, QuantityMin: 5, QuantityMax: 20, QualityMin: 0.5, QualityMax: 0.8, Biomes: wooded, ElevMin: 0, ElevMax: 0.75, MoistMin: 0.3, MoistMax: 1, TempMin: 0.2, TempMax: 0.95},
	ResourceStone:   {Weight: 8, Renewable: false, Rarity: RarityCommon, Tech: 1, QuantityMin: 5, QuantityMax: 20, QualityMin: 0.6, QualityMax: 0.9, Biomes: rocky, ElevMin: 0.4, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceMetal:   {Weight: 3, Renewable: false, Rarity: RarityRare, Tech: 2, QuantityMin: 2, QuantityMax: 10, QualityMin: 0.6, QualityMax: 0.9, Biomes: rocky, ElevMin: 0.5, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceClay:    {Weight: 6, Renewable: false, Rarity: RarityCommon, Tech: 1, QuantityMin: 2, QuantityMax: 10, QualityMin: 0.5, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeSwamp, world.BiomeBeach, world.BiomeGrassland}, ElevMin: 0, ElevMax: 0.5, MoistMin: 0.4, MoistMax: 1, TempMin: 0.1, TempMax: 0.9},
	ResourceFiber:   {Weight: 7, Renewable: true, Rarity: RarityCommon, Tech: 1, QuantityMin: 1, QuantityMax: 5, QualityMin: 0.4, QualityMax: 0.8, Biomes: fertileLand, ElevMin: 0, ElevMax: 0.6, MoistMin: 0.3, MoistMax: 1, TempMin: 0.2, TempMax: 0.9, Seasons: growthSeasons},
	ResourceHide:    {Weight: 4, Renewable: true, Rarity: RarityUncommon, Tech: 1, QuantityMin: 1, QuantityMax: 5, QualityMin: 0.4, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeGrassland, world.BiomeForest, world.BiomeTundra}, ElevMin: 0, ElevMax: 0.8, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 0.9},
	ResourceBone:    {Weight: 3, Renewable: true, Rarity: RarityUncommon, Tech: 1, QuantityMin: 0.5, QuantityMax: 3, QualityMin: 0.4, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeGrassland, world.BiomeTundra, world.BiomeDesert}, ElevMin: 0, ElevMax: 0.8, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceMinerals: {Weight: 2, Renewable: false, Rarity: RarityRare, Tech: 2, QuantityMin: 1, QuantityMax: 5, QualityMin: 0.4, QualityMax: 0.8, Biomes: rocky, ElevMin: 0.5, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourcePreciousMetals: {Weight: 1, Renewable: false, Rarity: RarityEpic, Tech: 3, QuantityMin: 0.1, QuantityMax: 1, QualityMin: 0.8, QualityMax: 1.0, Biomes: rocky, ElevMin: 0.65, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceGems:    {Weight: 0.5, Renewable: false, Rarity: RarityLegendary, Tech: 4, QuantityMin: 0.05, QuantityMax: 0.5, QualityMin: 0.8, QualityMax: 1.0, Biomes: []world.BiomeType{world.BiomeMountain, world.BiomeVolcanic}, ElevMin: 0.75, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceCoal:    {Weight: 2, Renewable: false, Rarity: RarityRare, Tech: 2, QuantityMin: 1, QuantityMax: 5, QualityMin: 0.4, QualityMax: 0.8, Biomes: rocky, ElevMin: 0.45, ElevMax: 1, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceOil:     {Weight: 1, Renewable: false, Rarity: RarityEpic, Tech: 3, QuantityMin: 1, QuantityMax: 5, QualityMin: 0.4, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeDesert, world.BiomeSwamp}, ElevMin: 0, ElevMax: 0.5, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceSalt:    {Weight: 3, Renewable: false, Rarity: RarityUncommon, Tech: 1, QuantityMin: 0.5, QuantityMax: 2, QualityMin: 0.4, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeBeach, world.BiomeDesert, world.BiomeLake}, ElevMin: 0, ElevMax: 0.6, MoistMin: 0, MoistMax: 1, TempMin: 0, TempMax: 1},
	ResourceDyes:    {Weight: 2, Renewable: true, Rarity: RarityRare, Tech: 2, QuantityMin: 0.5, QuantityMax: 2, QualityMin: 0.4, QualityMax: 0.8, Biomes: []world.BiomeType{world.BiomeJungle, world.BiomeSwamp, world.BiomeForest}, ElevMin: 0, ElevMax: 0.6, MoistMin: 0.4, MoistMax: 1, TempMin: 0.3, TempMax: 0.9, Seasons: warmSeasons},
}

// ResourceTypes lists the catalog in a fixed order so weighted draws stay
// deterministic (map iteration order is not).
var ResourceTypes = []ResourceType{
	ResourceFood, ResourceWater, ResourceHerbs, ResourceBerries, ResourceFish,
	ResourceGame, ResourceWood, ResourceStone, ResourceMetal, ResourceClay,
	ResourceFiber, ResourceHide, ResourceBone, ResourceMinerals,
	ResourcePreciousMetals, ResourceGems, ResourceCoal, ResourceOil,
	ResourceSalt, ResourceDyes,
}

// Feedback and spawner constants.
const (
	// Health lost per unit harvested equals harvested / (capacity *
	// HealthDrainScale); larger worlds absorb more harvesting.
	HealthDrainScale = 1.0

	HealthRecoveryRate   = 0.002
	PollutionDecayRate   = 0.004
	PollutionPerHarvest  = 0.01
	BiodiversityFollow   = 0.01
	InitialBiodiversity  = 0.8

	// Spawner thresholds.
	MinSpawnHealth       = 0.25
	RegenHealthThreshold = 0.3
	CriticalHealth       = 0.2
	OutOfSeasonFactor    = 0.2

	RegenIntervalTicks = 20
	RegenFraction      = 0.05

	ClusterMinSize      = 3
	ClusterMaxSize      = 12
	ClusterFalloff      = 4.0
	MigrationChance     = 0.25
	MaxMigrationTries   = 24
	CenterPickAttempts  = 64

	DepletionEpsilon = 1e-6
)
