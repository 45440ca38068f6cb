package ports

import (
	"context"
	"time"

	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
)

// WorldMetaRecord is the persisted identity of a world: the seed and
// config that regenerate its terrain bit-for-bit, plus the clock.
type WorldMetaRecord struct {
	Seed      int64
	Config    world.GenConfig
	Tick      uint64
	CreatedAt time.Time
}

type WorldMetaRepository interface {
	Save(ctx context.Context, meta WorldMetaRecord) error
	Get(ctx context.Context) (WorldMetaRecord, error)
	SaveTick(ctx context.Context, tick uint64) error
}

// TerrainRepository persists the immutable-after-generation tile grid.
// Implementations chunk the grid; callers see whole terrains.
type TerrainRepository interface {
	SaveTerrain(ctx context.Context, t *world.Terrain) error
	LoadTerrain(ctx context.Context, cfg world.GenConfig) (*world.Terrain, error)
}

// ResourceRepository persists the live resource set. The spawner owns the
// in-memory truth; persistence replaces wholesale at checkpoint time.
type ResourceRepository interface {
	ReplaceAll(ctx context.Context, resources []ecology.Resource) error
	ListAll(ctx context.Context) ([]ecology.Resource, error)
}

type EnvironmentRepository interface {
	SaveRegions(ctx context.Context, regions []ecology.RegionState) error
	LoadRegions(ctx context.Context) ([]ecology.RegionState, error)
}

type EventRepository interface {
	Append(ctx context.Context, events []ecology.DomainEvent) error
	ListRecent(ctx context.Context, limit int) ([]ecology.DomainEvent, error)
	ListSinceTick(ctx context.Context, tick uint64, limit int) ([]ecology.DomainEvent, error)
}

// EventSink is the append-only export stream (compressed JSONL on disk).
// Failures here must never fail a tick.
type EventSink interface {
	Write(events []ecology.DomainEvent) error
	Close() error
}
