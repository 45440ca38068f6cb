package memory

import (
	"sync"

	"evoworld/internal/app/ports"
	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
)

// Store backs the in-memory repos for tests and db-less runs. Writes go
// through the TxManager, which holds the store lock for the whole
// transaction; reads outside a transaction take the read lock themselves.
type Store struct {
	mu        sync.RWMutex
	meta      *ports.WorldMetaRecord
	terrain   *world.Terrain
	resources []ecology.Resource
	regions   []ecology.RegionState
	events    []ecology.DomainEvent
}

func NewStore() *Store {
	return &Store{}
}
