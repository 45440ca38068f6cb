package gormrepo

import (
	"context"
	"encoding/json"
	"time"

	"evoworld/internal/adapter/repo/gorm/model"
	"evoworld/internal/domain/ecology"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []ecology.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.DomainEvent{
			Type:      e.Type,
			Tick:      int64(e.Tick),
			Payload:   b,
			CreatedAt: now,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListRecent(ctx context.Context, limit int) ([]ecology.DomainEvent, error) {
	rows := []model.DomainEvent{}
	query := getDBFromCtx(ctx, r.db).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
	})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return decodeEventRows(rows), nil
}

func (r EventRepo) ListSinceTick(ctx context.Context, tick uint64, limit int) ([]ecology.DomainEvent, error) {
	rows := []model.DomainEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where("tick >= ?", int64(tick)).
		Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return decodeEventRows(rows), nil
}

func decodeEventRows(rows []model.DomainEvent) []ecology.DomainEvent {
	out := make([]ecology.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ecology.DomainEvent{
			Type:    row.Type,
			Tick:    uint64(row.Tick),
			Payload: payload,
		})
	}
	return out
}
