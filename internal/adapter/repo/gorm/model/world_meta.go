package model

import "time"

const TableNameWorldMeta = "world_meta"

// WorldMeta mapped from table <world_meta>. A single row (id=1) holds the
// world identity and clock.
type WorldMeta struct {
	ID        int32     `gorm:"column:id;primaryKey" json:"id"`
	Seed      int64     `gorm:"column:seed;not null" json:"seed"`
	Config    []byte    `gorm:"column:config;not null" json:"config"`
	Tick      int64     `gorm:"column:tick;not null" json:"tick"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*WorldMeta) TableName() string {
	return TableNameWorldMeta
}
