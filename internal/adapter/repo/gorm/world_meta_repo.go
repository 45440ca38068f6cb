package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"evoworld/internal/adapter/repo/gorm/model"
	"evoworld/internal/app/ports"
	"evoworld/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// worldMetaRowID pins the singleton row; there is exactly one world per
// database.
const worldMetaRowID = 1

type WorldMetaRepo struct {
	db *gorm.DB
}

func NewWorldMetaRepo(db *gorm.DB) WorldMetaRepo {
	return WorldMetaRepo{db: db}
}

func (r WorldMetaRepo) Save(ctx context.Context, meta ports.WorldMetaRecord) error {
	cfg, err := json.Marshal(meta.Config)
	if err != nil {
		return err
	}
	row := model.WorldMeta{
		ID:        worldMetaRowID,
		Seed:      meta.Seed,
		Config:    cfg,
		Tick:      int64(meta.Tick),
		CreatedAt: meta.CreatedAt,
		UpdatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"seed", "config", "tick", "updated_at"}),
	}).Create(&row).Error
}

func (r WorldMetaRepo) Get(ctx context.Context) (ports.WorldMetaRecord, error) {
	var row model.WorldMeta
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", worldMetaRowID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.WorldMetaRecord{}, ports.ErrNotFound
		}
		return ports.WorldMetaRecord{}, err
	}
	var cfg world.GenConfig
	if err := json.Unmarshal(row.Config, &cfg); err != nil {
		return ports.WorldMetaRecord{}, err
	}
	return ports.WorldMetaRecord{
		Seed:      row.Seed,
		Config:    cfg,
		Tick:      uint64(row.Tick),
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r WorldMetaRepo) SaveTick(ctx context.Context, tick uint64) error {
	res := getDBFromCtx(ctx, r.db).Model(&model.WorldMeta{}).
		Where("id = ?", worldMetaRowID).
		Updates(map[string]any{"tick": int64(tick), "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
