package ecology

import (
	"github.com/google/uuid"

	"evoworld/internal/domain/world"
)

// ResourceType is the closed set of harvestable resource kinds.
type ResourceType string

const (
	ResourceFood           ResourceType = "food"
	ResourceWater          ResourceType = "water"
	ResourceHerbs          ResourceType = "herbs"
	ResourceBerries        ResourceType = "berries"
	ResourceFish           ResourceType = "fish"
	ResourceGame           ResourceType = "game"
	ResourceWood           ResourceType = "wood"
	ResourceStone          ResourceType = "stone"
	ResourceMetal          ResourceType = "metal"
	ResourceClay           ResourceType = "clay"
	ResourceFiber          ResourceType = "fiber"
	ResourceHide           ResourceType = "hide"
	ResourceBone           ResourceType = "bone"
	ResourceMinerals       ResourceType = "minerals"
	ResourcePreciousMetals ResourceType = "precious_metals"
	ResourceGems           ResourceType = "gems"
	ResourceCoal           ResourceType = "coal"
	ResourceOil            ResourceType = "oil"
	ResourceSalt           ResourceType = "salt"
	ResourceDyes           ResourceType = "dyes"
)

type Category string

const (
	CategoryConsumable Category = "consumable"
	CategoryMaterial   Category = "material"
	CategoryCrafting   Category = "crafting"
	CategoryIndustrial Category = "industrial"
)

func (r ResourceType) Category() Category {
	switch r {
	case ResourceFood, ResourceWater, ResourceBerries, ResourceFish, ResourceGame:
		return CategoryConsumable
	case ResourceWood, ResourceStone, ResourceMetal, ResourceClay, ResourceFiber, ResourceHide, ResourceBone:
		return CategoryMaterial
	case ResourceHerbs, ResourceDyes:
		return CategoryCrafting
	default:
		return CategoryIndustrial
	}
}

// Rarity tiers. Every member of a cluster shares its cluster's tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Position is a continuous world coordinate; resources are not tile
// aligned even though eligibility evaluates the containing tile.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Position) Tile() world.Point {
	return world.Point{X: int(p.X), Y: int(p.Y)}
}

// Resource is one harvestable instance. Quantity never drops below zero;
// the resolver enforces that. A spawned resource always exists regardless
// of tech level; gating is a query-time filter only.
type Resource struct {
	ID              uuid.UUID      `json:"id"`
	Type            ResourceType   `json:"type"`
	Position        Position       `json:"position"`
	Quantity        float64        `json:"quantity"`
	MaxQuantity     float64        `json:"max_quantity"`
	Quality         float64        `json:"quality"`
	Renewable       bool           `json:"renewable"`
	Rarity          Rarity         `json:"rarity"`
	ClusterID       uuid.UUID      `json:"cluster_id"`
	RequiredTech    int            `json:"required_tech"`
	Seasons         []world.Season `json:"seasons,omitempty"` // empty = year-round
	RegionID        int            `json:"region_id"`
	LastHarvestTick uint64         `json:"last_harvest_tick"`
	Depleted        bool           `json:"depleted"`
}

func (r *Resource) InSeason(s world.Season) bool {
	if len(r.Seasons) == 0 {
		return true
	}
	for _, w := range r.Seasons {
		if w == s {
			return true
		}
	}
	return false
}

func (r *Resource) Value() float64 {
	return r.Quantity * r.Quality
}

// Statistics summarizes the live resource set for analytics.
type Statistics struct {
	Total          int                  `json:"total"`
	ByType         map[ResourceType]int `json:"by_type"`
	TotalQuantity  float64              `json:"total_quantity"`
	TotalValue     float64              `json:"total_value"`
	RenewableCount int                  `json:"renewable_count"`
}
