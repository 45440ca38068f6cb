package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"evoworld/internal/adapter/repo/gorm/model"
	"evoworld/internal/app/ports"
	"evoworld/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// chunkSize is the persisted chunk edge in tiles. 32x32 keeps rows around
// a few hundred KB of JSON each.
const chunkSize = 32

type TerrainRepo struct {
	db *gorm.DB
}

func NewTerrainRepo(db *gorm.DB) TerrainRepo {
	return TerrainRepo{db: db}
}

func (r TerrainRepo) SaveTerrain(ctx context.Context, t *world.Terrain) error {
	db := getDBFromCtx(ctx, r.db)
	now := time.Now()

	for cy := 0; cy*chunkSize < t.Height; cy++ {
		for cx := 0; cx*chunkSize < t.Width; cx++ {
			tiles := chunkTiles(t, cx, cy)
			b, err := json.Marshal(tiles)
			if err != nil {
				return err
			}
			row := model.TerrainChunk{
				ChunkX:    int32(cx),
				ChunkY:    int32(cy),
				Tiles:     b,
				UpdatedAt: now,
			}
			err = db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "chunk_x"}, {Name: "chunk_y"}},
				DoUpdates: clause.AssignmentColumns([]string{"tiles", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("save chunk (%d,%d): %w", cx, cy, err)
			}
		}
	}
	return nil
}

func (r TerrainRepo) LoadTerrain(ctx context.Context, cfg world.GenConfig) (*world.Terrain, error) {
	rows := []model.TerrainChunk{}
	if err := getDBFromCtx(ctx, r.db).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	t := world.NewTerrain(cfg)
	for _, row := range rows {
		tiles := []world.Tile{}
		if err := json.Unmarshal(row.Tiles, &tiles); err != nil {
			return nil, fmt.Errorf("decode chunk (%d,%d): %w", row.ChunkX, row.ChunkY, err)
		}
		for _, tile := range tiles {
			if dst := t.TileAt(tile.X, tile.Y); dst != nil {
				*dst = tile
			}
		}
	}
	return t, nil
}

func chunkTiles(t *world.Terrain, cx, cy int) []world.Tile {
	out := make([]world.Tile, 0, chunkSize*chunkSize)
	for y := cy * chunkSize; y < (cy+1)*chunkSize && y < t.Height; y++ {
		for x := cx * chunkSize; x < (cx+1)*chunkSize && x < t.Width; x++ {
			out = append(out, *t.TileAt(x, y))
		}
	}
	return out
}
