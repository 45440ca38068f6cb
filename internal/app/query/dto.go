package query

import (
	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
)

type TerrainRequest struct {
	Center world.Point `json:"center"`
	Radius int         `json:"radius"`
}

type TerrainResponse struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Center world.Point  `json:"center"`
	Radius int          `json:"radius"`
	Tiles  []world.Tile `json:"tiles"`
}

type ResourcesRequest struct {
	TechLevel int `json:"tech_level"`
}

type ResourcesResponse struct {
	Tick      uint64             `json:"tick"`
	Season    world.Season       `json:"season"`
	Resources []ecology.Resource `json:"resources"`
}

type EnvironmentResponse struct {
	Tick    uint64                `json:"tick"`
	Regions []ecology.RegionState `json:"regions"`
}

type StatsResponse struct {
	Tick   uint64             `json:"tick"`
	Season world.Season       `json:"season"`
	Stats  ecology.Statistics `json:"stats"`
}

type EventsRequest struct {
	SinceTick *uint64 `json:"since_tick,omitempty"`
	Limit     int     `json:"limit"`
}

type EventsResponse struct {
	Events []ecology.DomainEvent `json:"events"`
}
