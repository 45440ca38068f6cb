package gormrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"evoworld/internal/adapter/repo/gorm/model"
	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"

	"gorm.io/gorm"
)

type ResourceRepo struct {
	db *gorm.DB
}

func NewResourceRepo(db *gorm.DB) ResourceRepo {
	return ResourceRepo{db: db}
}

// ReplaceAll swaps the persisted set wholesale. Checkpoints always run
// inside the tick transaction, so the delete+insert pair is atomic.
func (r ResourceRepo) ReplaceAll(ctx context.Context, resources []ecology.Resource) error {
	db := getDBFromCtx(ctx, r.db)
	if err := db.Where("1 = 1").Delete(&model.Resource{}).Error; err != nil {
		return err
	}
	if len(resources) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]model.Resource, 0, len(resources))
	for _, res := range resources {
		var seasons []byte
		if len(res.Seasons) > 0 {
			seasons, _ = json.Marshal(res.Seasons)
		}
		rows = append(rows, model.Resource{
			ID:              res.ID.String(),
			Type:            string(res.Type),
			X:               res.Position.X,
			Y:               res.Position.Y,
			Quantity:        res.Quantity,
			MaxQuantity:     res.MaxQuantity,
			Quality:         res.Quality,
			Renewable:       res.Renewable,
			Rarity:          string(res.Rarity),
			ClusterID:       res.ClusterID.String(),
			RequiredTech:    int32(res.RequiredTech),
			Seasons:         seasons,
			RegionID:        int32(res.RegionID),
			LastHarvestTick: int64(res.LastHarvestTick),
			Depleted:        res.Depleted,
			UpdatedAt:       now,
		})
	}
	return db.CreateInBatches(&rows, 500).Error
}

func (r ResourceRepo) ListAll(ctx context.Context) ([]ecology.Resource, error) {
	rows := []model.Resource{}
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ecology.Resource, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, err
		}
		clusterID, err := uuid.Parse(row.ClusterID)
		if err != nil {
			return nil, err
		}
		var seasons []world.Season
		if len(row.Seasons) > 0 {
			if err := json.Unmarshal(row.Seasons, &seasons); err != nil {
				return nil, err
			}
		}
		out = append(out, ecology.Resource{
			ID:              id,
			Type:            ecology.ResourceType(row.Type),
			Position:        ecology.Position{X: row.X, Y: row.Y},
			Quantity:        row.Quantity,
			MaxQuantity:     row.MaxQuantity,
			Quality:         row.Quality,
			Renewable:       row.Renewable,
			Rarity:          ecology.Rarity(row.Rarity),
			ClusterID:       clusterID,
			RequiredTech:    int(row.RequiredTech),
			Seasons:         seasons,
			RegionID:        int(row.RegionID),
			LastHarvestTick: uint64(row.LastHarvestTick),
			Depleted:        row.Depleted,
		})
	}
	return out, nil
}
