package model

import "time"

const TableNameResource = "resources"

// Resource mapped from table <resources>.
type Resource struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	Type            string    `gorm:"column:type;not null" json:"type"`
	X               float64   `gorm:"column:x;not null" json:"x"`
	Y               float64   `gorm:"column:y;not null" json:"y"`
	Quantity        float64   `gorm:"column:quantity;not null" json:"quantity"`
	MaxQuantity     float64   `gorm:"column:max_quantity;not null" json:"max_quantity"`
	Quality         float64   `gorm:"column:quality;not null" json:"quality"`
	Renewable       bool      `gorm:"column:renewable;not null" json:"renewable"`
	Rarity          string    `gorm:"column:rarity;not null" json:"rarity"`
	ClusterID       string    `gorm:"column:cluster_id;not null" json:"cluster_id"`
	RequiredTech    int32     `gorm:"column:required_tech;not null" json:"required_tech"`
	Seasons         []byte    `gorm:"column:seasons" json:"seasons"`
	RegionID        int32     `gorm:"column:region_id;not null" json:"region_id"`
	LastHarvestTick int64     `gorm:"column:last_harvest_tick;not null" json:"last_harvest_tick"`
	Depleted        bool      `gorm:"column:depleted;not null" json:"depleted"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*Resource) TableName() string {
	return TableNameResource
}
