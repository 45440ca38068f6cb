package ecology

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"evoworld/internal/domain/world"
)

// Spawner owns the live resource set. It spawns, regenerates and migrates
// resources against the frozen terrain and the environmental tracker. All
// randomness flows through the one seeded RNG handed in at construction,
// and iteration always follows insertion-ordered slices (never maps), so
// a seeded run replays exactly.
type Spawner struct {
	terrain *world.Terrain
	env     *Tracker
	rng     *rand.Rand

	order     []uuid.UUID
	resources map[uuid.UUID]*Resource

	clusterOrder []uuid.UUID
	clusters     map[uuid.UUID][]uuid.UUID
}

func NewSpawner(terrain *world.Terrain, env *Tracker, rng *rand.Rand) *Spawner {
	return &Spawner{
		terrain:   terrain,
		env:       env,
		rng:       rng,
		resources: map[uuid.UUID]*Resource{},
		clusters:  map[uuid.UUID][]uuid.UUID{},
	}
}

// newID draws a UUID from the seeded RNG rather than crypto/rand so runs
// stay reproducible.
func (s *Spawner) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// math/rand reads cannot fail; keep the zero id as a hard fallback.
		return uuid.UUID{}
	}
	return id
}

// SeedInitial populates the world until the density target is met.
// Density is resources per tile.
func (s *Spawner) SeedInitial(season world.Season) []DomainEvent {
	target := int(float64(s.terrain.Width*s.terrain.Height) * s.terrain.Config.ResourceDensity)
	events := make([]DomainEvent, 0, 16)

	attempts := 0
	maxAttempts := target * 8
	for len(s.order) < target && attempts < maxAttempts {
		attempts++
		if evt, ok := s.trySpawnCluster(0, season, true); ok {
			events = append(events, evt)
		}
	}
	return events
}

// Tick runs the per-tick spawner phase: sweep depleted non-renewables
// flagged last tick, regenerate, migrate unhealthy clusters, then roll for
// fresh clusters.
func (s *Spawner) Tick(tick uint64, season world.Season) []DomainEvent {
	events := s.sweepDepleted(tick)

	if tick%RegenIntervalTicks == 0 {
		s.regenerate(tick)
	}

	events = append(events, s.migrateClusters(tick, season)...)

	// A handful of spawn rolls per tick keeps new clusters trickling in
	// as regions recover.
	for i := 0; i < 4; i++ {
		if evt, ok := s.trySpawnCluster(tick, season, false); ok {
			events = append(events, evt)
		}
	}
	return events
}

// sweepDepleted removes non-renewable resources that were flagged
// depleted on a previous tick. Renewables stay and wait for regeneration.
func (s *Spawner) sweepDepleted(tick uint64) []DomainEvent {
	var events []DomainEvent
	kept := s.order[:0]
	for _, id := range s.order {
		r := s.resources[id]
		if r.Depleted && !r.Renewable && r.LastHarvestTick < tick {
			delete(s.resources, id)
			s.removeFromCluster(r.ClusterID, id)
			events = append(events, DomainEvent{
				Type: EventResourceRemoved,
				Tick: tick,
				Payload: map[string]any{
					"resource_id": r.ID.String(),
					"type":        string(r.Type),
				},
			})
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return events
}

func (s *Spawner) regenerate(tick uint64) {
	for _, id := range s.order {
		r := s.resources[id]
		if !r.Renewable || r.Quantity >= r.MaxQuantity {
			continue
		}
		if s.env.Region(r.RegionID).Health <= RegenHealthThreshold {
			continue
		}
		r.Quantity = math.Min(r.MaxQuantity, r.Quantity+RegenFraction*r.MaxQuantity)
		if r.Quantity > DepletionEpsilon {
			r.Depleted = false
		}
	}
}

// Eligible reports whether a resource type can live on the tile given the
// current region health.
func (s *Spawner) Eligible(tile *world.Tile, typ ResourceType) bool {
	p, ok := spawnProfiles[typ]
	if !ok || tile == nil {
		return false
	}
	if s.env.Region(s.terrain.RegionID(tile.X, tile.Y)).Health < MinSpawnHealth {
		return false
	}
	return eligibleTerrain(tile, p)
}

func eligibleTerrain(tile *world.Tile, p spawnProfile) bool {
	biomeOK := false
	for _, b := range p.Biomes {
		if tile.Biome == b {
			biomeOK = true
			break
		}
	}
	if !biomeOK {
		return false
	}
	return tile.Elevation >= p.ElevMin && tile.Elevation <= p.ElevMax &&
		tile.Moisture >= p.MoistMin && tile.Moisture <= p.MoistMax &&
		tile.Temperature >= p.TempMin && tile.Temperature <= p.TempMax
}

// SpawnProbability is the documented combination model:
//
//	P = baseWeight/maxWeight × regionHealth × seasonalFactor × (1 − localDepletion)
//
// Multiplicative, each factor in [0,1], so any collapsed factor vetoes the
// spawn. maxWeight is the largest catalog weight (food, 15).
func (s *Spawner) SpawnProbability(typ ResourceType, regionID int, season world.Season) float64 {
	p := spawnProfiles[typ]
	base := p.Weight / spawnProfiles[ResourceFood].Weight

	health := s.env.Region(regionID).Health

	seasonal := 1.0
	if len(p.Seasons) > 0 && !seasonIn(p.Seasons, season) {
		seasonal = OutOfSeasonFactor
	}

	return base * health * seasonal * (1 - s.localDepletion(regionID))
}

func seasonIn(windows []world.Season, s world.Season) bool {
	for _, w := range windows {
		if w == s {
			return true
		}
	}
	return false
}

// localDepletion is the share of this region's resources sitting at zero
// quantity.
func (s *Spawner) localDepletion(regionID int) float64 {
	total, depleted := 0, 0
	for _, id := range s.order {
		r := s.resources[id]
		if r.RegionID != regionID {
			continue
		}
		total++
		if r.Depleted || r.Quantity <= DepletionEpsilon {
			depleted++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(depleted) / float64(total)
}

// trySpawnCluster picks a random center tile, draws an eligible type from
// the rarity-weighted catalog, rolls the spawn probability (skipped while
// seeding) and scatters a cluster.
func (s *Spawner) trySpawnCluster(tick uint64, season world.Season, seeding bool) (DomainEvent, bool) {
	for attempt := 0; attempt < CenterPickAttempts; attempt++ {
		x := s.rng.Intn(s.terrain.Width)
		y := s.rng.Intn(s.terrain.Height)
		tile := s.terrain.TileAt(x, y)

		typ, ok := s.drawEligibleType(tile)
		if !ok {
			continue
		}

		if !seeding {
			regionID := s.terrain.RegionID(x, y)
			if s.rng.Float64() >= s.SpawnProbability(typ, regionID, season) {
				return DomainEvent{}, false
			}
		}

		return s.spawnCluster(typ, world.Point{X: x, Y: y}, tick), true
	}
	return DomainEvent{}, false
}

// drawEligibleType draws from the catalog weights restricted to the types
// the tile can host.
func (s *Spawner) drawEligibleType(tile *world.Tile) (ResourceType, bool) {
	total := 0.0
	for _, typ := range ResourceTypes {
		if s.Eligible(tile, typ) {
			total += spawnProfiles[typ].Weight
		}
	}
	if total == 0 {
		return "", false
	}
	roll := s.rng.Float64() * total
	acc := 0.0
	for _, typ := range ResourceTypes {
		if !s.Eligible(tile, typ) {
			continue
		}
		acc += spawnProfiles[typ].Weight
		if roll <= acc {
			return typ, true
		}
	}
	return "", false
}

// spawnCluster scatters 3-12 members around the center. Quantity and
// quality fall off with distance; every member shares the cluster's
// rarity tier and id.
func (s *Spawner) spawnCluster(typ ResourceType, center world.Point, tick uint64) DomainEvent {
	p := spawnProfiles[typ]
	clusterID := s.newID()
	size := ClusterMinSize + s.rng.Intn(ClusterMaxSize-ClusterMinSize+1)

	members := make([]uuid.UUID, 0, size)
	for i := 0; i < size; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := s.rng.Float64() * ClusterFalloff
		pos := Position{
			X: clampF(float64(center.X)+0.5+math.Cos(angle)*dist, 0, float64(s.terrain.Width)-1e-6),
			Y: clampF(float64(center.Y)+0.5+math.Sin(angle)*dist, 0, float64(s.terrain.Height)-1e-6),
		}

		falloff := 1 - (dist/ClusterFalloff)*0.5
		quantity := (p.QuantityMin + s.rng.Float64()*(p.QuantityMax-p.QuantityMin)) * falloff
		quality := clampF((p.QualityMin+s.rng.Float64()*(p.QualityMax-p.QualityMin))*falloff, 0, 1)

		tilePt := pos.Tile()
		r := &Resource{
			ID:           s.newID(),
			Type:         typ,
			Position:     pos,
			Quantity:     quantity,
			MaxQuantity:  quantity,
			Quality:      quality,
			Renewable:    p.Renewable,
			Rarity:       p.Rarity,
			ClusterID:    clusterID,
			RequiredTech: p.Tech,
			Seasons:      p.Seasons,
			RegionID:     s.terrain.RegionID(tilePt.X, tilePt.Y),
		}
		s.insert(r)
		members = append(members, r.ID)
	}

	s.clusterOrder = append(s.clusterOrder, clusterID)
	s.clusters[clusterID] = members

	return DomainEvent{
		Type: EventClusterSpawned,
		Tick: tick,
		Payload: map[string]any{
			"cluster_id": clusterID.String(),
			"type":       string(typ),
			"size":       size,
			"x":          center.X,
			"y":          center.Y,
		},
	}
}

// migrateClusters rolls migration for clusters in critically unhealthy
// regions. A cluster that finds no eligible healthier tile within the
// bounded search is despawned, never retried forever.
func (s *Spawner) migrateClusters(tick uint64, season world.Season) []DomainEvent {
	var events []DomainEvent

	// Snapshot the order; migration mutates the cluster list.
	ids := make([]uuid.UUID, len(s.clusterOrder))
	copy(ids, s.clusterOrder)

	for _, clusterID := range ids {
		members := s.clusters[clusterID]
		if len(members) == 0 {
			continue
		}
		first := s.resources[members[0]]
		if first == nil {
			continue
		}
		regionHealth := s.env.Region(first.RegionID).Health
		if regionHealth >= CriticalHealth {
			continue
		}
		if s.rng.Float64() >= MigrationChance {
			continue
		}

		typ := first.Type
		origin := first.Position.Tile()
		dest, ok := s.findMigrationTarget(origin, typ, regionHealth)

		s.despawnCluster(clusterID)

		if !ok {
			events = append(events, DomainEvent{
				Type: EventMigrationFailed,
				Tick: tick,
				Payload: map[string]any{
					"cluster_id": clusterID.String(),
					"type":       string(typ),
				},
			})
			continue
		}

		evt := s.spawnCluster(typ, dest, tick)
		events = append(events, DomainEvent{
			Type: EventClusterMigrated,
			Tick: tick,
			Payload: map[string]any{
				"cluster_id":  clusterID.String(),
				"new_cluster": evt.Payload["cluster_id"],
				"type":        string(typ),
				"x":           dest.X,
				"y":           dest.Y,
			},
		})
	}
	return events
}

// findMigrationTarget probes outward from the origin with the seeded RNG,
// closest rings first, for an eligible tile in a healthier region.
func (s *Spawner) findMigrationTarget(origin world.Point, typ ResourceType, currentHealth float64) (world.Point, bool) {
	for attempt := 0; attempt < MaxMigrationTries; attempt++ {
		radius := 2 + attempt
		dx := s.rng.Intn(2*radius+1) - radius
		dy := s.rng.Intn(2*radius+1) - radius
		x, y := origin.X+dx, origin.Y+dy

		tile := s.terrain.TileAt(x, y)
		if tile == nil || !s.Eligible(tile, typ) {
			continue
		}
		if s.env.Region(s.terrain.RegionID(x, y)).Health <= currentHealth {
			continue
		}
		return world.Point{X: x, Y: y}, true
	}
	return world.Point{}, false
}

func (s *Spawner) despawnCluster(clusterID uuid.UUID) {
	members := s.clusters[clusterID]
	memberSet := make(map[uuid.UUID]bool, len(members))
	for _, id := range members {
		memberSet[id] = true
		delete(s.resources, id)
	}
	kept := s.order[:0]
	for _, id := range s.order {
		if !memberSet[id] {
			kept = append(kept, id)
		}
	}
	s.order = kept

	delete(s.clusters, clusterID)
	for i, id := range s.clusterOrder {
		if id == clusterID {
			s.clusterOrder = append(s.clusterOrder[:i], s.clusterOrder[i+1:]...)
			break
		}
	}
}

func (s *Spawner) insert(r *Resource) {
	s.resources[r.ID] = r
	s.order = append(s.order, r.ID)
}

func (s *Spawner) removeFromCluster(clusterID, resourceID uuid.UUID) {
	members := s.clusters[clusterID]
	for i, id := range members {
		if id == resourceID {
			s.clusters[clusterID] = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(s.clusters[clusterID]) == 0 {
		delete(s.clusters, clusterID)
		for i, id := range s.clusterOrder {
			if id == clusterID {
				s.clusterOrder = append(s.clusterOrder[:i], s.clusterOrder[i+1:]...)
				break
			}
		}
	}
}

// Lookup returns the live resource with the given id, or nil.
func (s *Spawner) Lookup(id uuid.UUID) *Resource {
	return s.resources[id]
}

// VisibleTo is the query-time tech gate: resources above the requester's
// tech level exist but are never returned. The result is a copy.
func (s *Spawner) VisibleTo(techLevel int) []Resource {
	out := make([]Resource, 0, len(s.order))
	for _, id := range s.order {
		r := s.resources[id]
		if r.RequiredTech > techLevel {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// All returns a copy of every live resource, gate-free. Persistence and
// analytics use it; agent-facing paths go through VisibleTo.
func (s *Spawner) All() []Resource {
	out := make([]Resource, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.resources[id])
	}
	return out
}

// Restore loads persisted resources into an empty spawner.
func (s *Spawner) Restore(resources []Resource) {
	for i := range resources {
		r := resources[i]
		s.insert(&r)
		s.clusters[r.ClusterID] = append(s.clusters[r.ClusterID], r.ID)
	}
	seen := map[uuid.UUID]bool{}
	for _, id := range s.order {
		cid := s.resources[id].ClusterID
		if !seen[cid] {
			seen[cid] = true
			s.clusterOrder = append(s.clusterOrder, cid)
		}
	}
}

// RegionCapacity sums max quantities in a region; the feedback tracker
// uses it as the regenerative capacity divisor.
func (s *Spawner) RegionCapacity(regionID int) float64 {
	total := 0.0
	for _, id := range s.order {
		if r := s.resources[id]; r.RegionID == regionID {
			total += r.MaxQuantity
		}
	}
	return total
}

// Stats summarizes the live set.
func (s *Spawner) Stats() Statistics {
	stats := Statistics{ByType: map[ResourceType]int{}}
	for _, id := range s.order {
		r := s.resources[id]
		stats.Total++
		stats.ByType[r.Type]++
		stats.TotalQuantity += r.Quantity
		stats.TotalValue += r.Value()
		if r.Renewable {
			stats.RenewableCount++
		}
	}
	return stats
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
