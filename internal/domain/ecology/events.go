package ecology

// DomainEvent records something the resource economy did during a tick.
// Consumers (analytics, the event log, replay) read these; the simulation
// core never does.
type DomainEvent struct {
	Type    string         `json:"type"`
	Tick    uint64         `json:"tick"`
	Payload map[string]any `json:"payload"`
}

const (
	EventHarvestSettled   = "harvest_settled"
	EventResourceDepleted = "resource_depleted"
	EventResourceRemoved  = "resource_removed"
	EventClusterSpawned   = "cluster_spawned"
	EventClusterMigrated  = "cluster_migrated"
	EventMigrationFailed  = "migration_failed"
)
