package gormrepo

import (
	"context"
	"time"

	"evoworld/internal/adapter/repo/gorm/model"
	"evoworld/internal/domain/ecology"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegionRepo struct {
	db *gorm.DB
}

func NewRegionRepo(db *gorm.DB) RegionRepo {
	return RegionRepo{db: db}
}

func (r RegionRepo) SaveRegions(ctx context.Context, regions []ecology.RegionState) error {
	if len(regions) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.RegionState, 0, len(regions))
	for i, region := range regions {
		rows = append(rows, model.RegionState{
			RegionID:     int32(i),
			Health:       region.Health,
			Pollution:    region.Pollution,
			Biodiversity: region.Biodiversity,
			UpdatedAt:    now,
		})
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "region_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"health", "pollution", "biodiversity", "updated_at"}),
	}).CreateInBatches(&rows, 500).Error
}

func (r RegionRepo) LoadRegions(ctx context.Context) ([]ecology.RegionState, error) {
	rows := []model.RegionState{}
	if err := getDBFromCtx(ctx, r.db).Order("region_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ecology.RegionState, 0, len(rows))
	for _, row := range rows {
		out = append(out, ecology.RegionState{
			Health:       row.Health,
			Pollution:    row.Pollution,
			Biodiversity: row.Biodiversity,
		})
	}
	return out, nil
}
