package memory

import (
	"context"

	"evoworld/internal/app/ports"
	"evoworld/internal/domain/world"
)

type WorldMetaRepo struct {
	store *Store
}

func NewWorldMetaRepo(store *Store) WorldMetaRepo {
	return WorldMetaRepo{store: store}
}

func (r WorldMetaRepo) Save(_ context.Context, meta ports.WorldMetaRecord) error {
	r.store.meta = &meta
	return nil
}

func (r WorldMetaRepo) Get(_ context.Context) (ports.WorldMetaRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.meta == nil {
		return ports.WorldMetaRecord{}, ports.ErrNotFound
	}
	return *r.store.meta, nil
}

func (r WorldMetaRepo) SaveTick(_ context.Context, tick uint64) error {
	if r.store.meta == nil {
		return ports.ErrNotFound
	}
	r.store.meta.Tick = tick
	return nil
}

type TerrainRepo struct {
	store *Store
}

func NewTerrainRepo(store *Store) TerrainRepo {
	return TerrainRepo{store: store}
}

func (r TerrainRepo) SaveTerrain(_ context.Context, t *world.Terrain) error {
	r.store.terrain = t
	return nil
}

func (r TerrainRepo) LoadTerrain(_ context.Context, _ world.GenConfig) (*world.Terrain, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.terrain == nil {
		return nil, ports.ErrNotFound
	}
	return r.store.terrain, nil
}
