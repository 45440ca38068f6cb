package memory

import (
	"context"

	"evoworld/internal/domain/ecology"
)

type ResourceRepo struct {
	store *Store
}

func NewResourceRepo(store *Store) ResourceRepo {
	return ResourceRepo{store: store}
}

func (r ResourceRepo) ReplaceAll(_ context.Context, resources []ecology.Resource) error {
	out := make([]ecology.Resource, len(resources))
	copy(out, resources)
	r.store.resources = out
	return nil
}

func (r ResourceRepo) ListAll(_ context.Context) ([]ecology.Resource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ecology.Resource, len(r.store.resources))
	copy(out, r.store.resources)
	return out, nil
}

type RegionRepo struct {
	store *Store
}

func NewRegionRepo(store *Store) RegionRepo {
	return RegionRepo{store: store}
}

func (r RegionRepo) SaveRegions(_ context.Context, regions []ecology.RegionState) error {
	out := make([]ecology.RegionState, len(regions))
	copy(out, regions)
	r.store.regions = out
	return nil
}

func (r RegionRepo) LoadRegions(_ context.Context) ([]ecology.RegionState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ecology.RegionState, len(r.store.regions))
	copy(out, r.store.regions)
	return out, nil
}
