package memory

import (
	"context"

	"evoworld/internal/domain/ecology"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []ecology.DomainEvent) error {
	r.store.events = append(r.store.events, events...)
	return nil
}

func (r EventRepo) ListRecent(_ context.Context, limit int) ([]ecology.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := r.store.events
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	out := make([]ecology.DomainEvent, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (r EventRepo) ListSinceTick(_ context.Context, tick uint64, limit int) ([]ecology.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := []ecology.DomainEvent{}
	for _, e := range r.store.events {
		if e.Tick < tick {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
