package model

import "time"

const TableNameTerrainChunk = "terrain_chunks"

// TerrainChunk mapped from table <terrain_chunks>.
type TerrainChunk struct {
	ChunkX    int32     `gorm:"column:chunk_x;primaryKey" json:"chunk_x"`
	ChunkY    int32     `gorm:"column:chunk_y;primaryKey" json:"chunk_y"`
	Tiles     []byte    `gorm:"column:tiles;not null" json:"tiles"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*TerrainChunk) TableName() string {
	return TableNameTerrainChunk
}
