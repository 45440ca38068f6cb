package model

import "time"

const TableNameRegionState = "region_states"

// RegionState mapped from table <region_states>.
type RegionState struct {
	RegionID     int32     `gorm:"column:region_id;primaryKey" json:"region_id"`
	Health       float64   `gorm:"column:health;not null" json:"health"`
	Pollution    float64   `gorm:"column:pollution;not null" json:"pollution"`
	Biodiversity float64   `gorm:"column:biodiversity;not null" json:"biodiversity"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*RegionState) TableName() string {
	return TableNameRegionState
}
