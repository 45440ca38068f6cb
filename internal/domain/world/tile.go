package world

// BiomeType is the closed set of terrain/ecosystem classes a tile can carry.
type BiomeType string

const (
	BiomeOcean     BiomeType = "ocean"
	BiomeLake      BiomeType = "lake"
	BiomeBeach     BiomeType = "beach"
	BiomeDesert    BiomeType = "desert"
	BiomeGrassland BiomeType = "grassland"
	BiomeForest    BiomeType = "forest"
	BiomeJungle    BiomeType = "jungle"
	BiomeSwamp     BiomeType = "swamp"
	BiomeTundra    BiomeType = "tundra"
	BiomeArctic    BiomeType = "arctic"
	BiomeHighland  BiomeType = "highland"
	BiomeMountain  BiomeType = "mountain"
	BiomeVolcanic  BiomeType = "volcanic"
)

// Biomes lists every BiomeType. Kept in sync with the constants above;
// classifier totality tests range over it.
var Biomes = []BiomeType{
	BiomeOcean, BiomeLake, BiomeBeach, BiomeDesert, BiomeGrassland,
	BiomeForest, BiomeJungle, BiomeSwamp, BiomeTundra, BiomeArctic,
	BiomeHighland, BiomeMountain, BiomeVolcanic,
}

func (b BiomeType) IsWater() bool {
	return b == BiomeOcean || b == BiomeLake
}

type MineralType string

const (
	MineralStone  MineralType = "stone"
	MineralClay   MineralType = "clay"
	MineralSalt   MineralType = "salt"
	MineralCoal   MineralType = "coal"
	MineralIron   MineralType = "iron"
	MineralCopper MineralType = "copper"
	MineralSilver MineralType = "silver"
	MineralGold   MineralType = "gold"
	MineralGems   MineralType = "gems"
)

// MineralDeposit is a point feature embedded in a tile.
type MineralDeposit struct {
	Type     MineralType `json:"type"`
	Richness float64     `json:"richness"` // [0,1]
	Depth    float64     `json:"depth"`
}

type StructureKind string

const (
	StructureCave          StructureKind = "cave"
	StructureRockFormation StructureKind = "rock_formation"
	StructureWaterfall     StructureKind = "waterfall"
	StructureHotSpring     StructureKind = "hot_spring"
	StructureGeyser        StructureKind = "geyser"
	StructureAncientRuins  StructureKind = "ancient_ruins"
	StructureCanyon        StructureKind = "canyon"
)

// Structure is a natural point feature. Magnitude is the kind-specific
// payload: cave depth, spring heat, ruin age, canyon length.
type Structure struct {
	Kind      StructureKind `json:"kind"`
	Magnitude float64       `json:"magnitude"`
	Condition float64       `json:"condition"` // [0,1]
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is the smallest spatial unit of the terrain grid. Elevation,
// moisture and temperature stay within [0,1] across every generation pass.
type Tile struct {
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Elevation   float64   `json:"elevation"`
	Moisture    float64   `json:"moisture"`
	Temperature float64   `json:"temperature"`
	Biome       BiomeType `json:"biome"`

	River      bool    `json:"river,omitempty"`
	RiverWidth float64 `json:"river_width,omitempty"`
	Riverbank  bool    `json:"riverbank,omitempty"`

	Fertility  float64 `json:"fertility"`
	Vegetation float64 `json:"vegetation"`
	WaterLevel float64 `json:"water_level"`

	Mineral   *MineralDeposit `json:"mineral,omitempty"`
	Structure *Structure      `json:"structure,omitempty"`
}
