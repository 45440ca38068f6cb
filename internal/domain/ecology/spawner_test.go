package ecology

import (
	"reflect"
	"testing"

	"evoworld/internal/domain/world"
)

func TestSeedInitialDeterministic(t *testing.T) {
	a, _ := newTestSpawner(42)
	b, _ := newTestSpawner(42)

	a.SeedInitial(world.SeasonSpring)
	b.SeedInitial(world.SeasonSpring)

	if !reflect.DeepEqual(a.All(), b.All()) {
		t.Fatalf("same seed produced different resource sets")
	}
}

func TestSeedInitialMeetsDensityTarget(t *testing.T) {
	s, _ := newTestSpawner(7)
	s.SeedInitial(world.SeasonSpring)

	terrain := s.terrain
	target := int(float64(terrain.Width*terrain.Height) * terrain.Config.ResourceDensity)
	if got := s.Stats().Total; got < target {
		t.Fatalf("seeded %d resources, want at least the density target %d", got, target)
	}
}

func TestSeedInitialRespectsEligibility(t *testing.T) {
	s, _ := newTestSpawner(7)
	s.SeedInitial(world.SeasonSpring)

	for _, r := range s.All() {
		tile := s.terrain.TileAt(r.Position.Tile().X, r.Position.Tile().Y)
		if tile == nil {
			t.Fatalf("resource %s outside the grid at %+v", r.ID, r.Position)
		}
		if r.Quantity <= 0 || r.Quantity > r.MaxQuantity {
			t.Fatalf("resource %s quantity %v outside (0,%v]", r.ID, r.Quantity, r.MaxQuantity)
		}
		if r.Quality < 0 || r.Quality > 1 {
			t.Fatalf("resource %s quality %v outside [0,1]", r.ID, r.Quality)
		}
	}
}

func TestClusterSizeBounds(t *testing.T) {
	s, _ := newTestSpawner(3)
	s.SeedInitial(world.SeasonSpring)

	for clusterID, members := range s.clusters {
		if len(members) < ClusterMinSize || len(members) > ClusterMaxSize {
			t.Fatalf("cluster %s has %d members, want [%d,%d]",
				clusterID, len(members), ClusterMinSize, ClusterMaxSize)
		}
	}
}

func TestVisibleToGatesByTech(t *testing.T) {
	s, _ := newTestSpawner(1)
	low := seedResource(s, "00000000-0000-0000-0000-000000000010", 5)
	high := seedResource(s, "00000000-0000-0000-0000-000000000011", 5)
	high.RequiredTech = 3

	visible := s.VisibleTo(0)
	if len(visible) != 1 || visible[0].ID != low.ID {
		t.Fatalf("tech 0 should see only the ungated resource, got %d", len(visible))
	}

	all := s.VisibleTo(3)
	if len(all) != 2 {
		t.Fatalf("tech 3 should see both resources, got %d", len(all))
	}
}

func TestRegenerationRestoresRenewables(t *testing.T) {
	s, _ := newTestSpawner(1)
	r := seedResource(s, "00000000-0000-0000-0000-000000000020", 10)
	r.Quantity = 0
	r.Depleted = true

	s.regenerate(RegenIntervalTicks)

	if r.Quantity != RegenFraction*r.MaxQuantity {
		t.Fatalf("quantity = %v, want one regen step %v", r.Quantity, RegenFraction*r.MaxQuantity)
	}
	if r.Depleted {
		t.Fatalf("regenerated renewable still flagged depleted")
	}
}

func TestRegenerationSkippedWhenRegionUnhealthy(t *testing.T) {
	s, env := newTestSpawner(1)
	r := seedResource(s, "00000000-0000-0000-0000-000000000021", 10)
	r.Quantity = 0
	env.RecordHarvest(0, 100, 10) // health to 0, below the regen threshold

	s.regenerate(RegenIntervalTicks)

	if r.Quantity != 0 {
		t.Fatalf("resource regenerated in an exhausted region: %v", r.Quantity)
	}
}

func TestRegenerationNeverExceedsCap(t *testing.T) {
	s, _ := newTestSpawner(1)
	r := seedResource(s, "00000000-0000-0000-0000-000000000022", 10)
	r.Quantity = 9.99

	s.regenerate(RegenIntervalTicks)

	if r.Quantity != r.MaxQuantity {
		t.Fatalf("quantity = %v, want cap %v", r.Quantity, r.MaxQuantity)
	}
}

func TestSweepRemovesDepletedNonRenewables(t *testing.T) {
	s, _ := newTestSpawner(1)
	r := seedResource(s, "00000000-0000-0000-0000-000000000030", 5)
	r.Renewable = false
	r.Quantity = 0
	r.Depleted = true
	r.LastHarvestTick = 5

	events := s.sweepDepleted(6)

	if s.Lookup(r.ID) != nil {
		t.Fatalf("depleted non-renewable survived the sweep")
	}
	if len(events) != 1 || events[0].Type != EventResourceRemoved {
		t.Fatalf("expected one removal event, got %v", events)
	}
}

func TestSweepKeepsDepletedRenewables(t *testing.T) {
	s, _ := newTestSpawner(1)
	r := seedResource(s, "00000000-0000-0000-0000-000000000031", 5)
	r.Quantity = 0
	r.Depleted = true
	r.LastHarvestTick = 5

	s.sweepDepleted(6)

	if s.Lookup(r.ID) == nil {
		t.Fatalf("depleted renewable should wait for regeneration, not be removed")
	}
}

func TestSpawnProbabilityFactors(t *testing.T) {
	s, env := newTestSpawner(1)

	inSeason := s.SpawnProbability(ResourceFood, 0, world.SeasonSummer)
	offSeason := s.SpawnProbability(ResourceFood, 0, world.SeasonWinter)
	if offSeason >= inSeason {
		t.Fatalf("out-of-season probability %v not below in-season %v", offSeason, inSeason)
	}
	if want := inSeason * OutOfSeasonFactor; offSeason != want {
		t.Fatalf("out-of-season probability %v, want scaled %v", offSeason, want)
	}

	env.RecordHarvest(0, 5, 10) // health to 0.5
	drained := s.SpawnProbability(ResourceFood, 0, world.SeasonSummer)
	if drained >= inSeason {
		t.Fatalf("probability %v did not fall with region health (was %v)", drained, inSeason)
	}

	// Year-round types ignore the season entirely.
	water := s.SpawnProbability(ResourceWater, 1, world.SeasonWinter)
	if water != s.SpawnProbability(ResourceWater, 1, world.SeasonSummer) {
		t.Fatalf("year-round type varied with season: %v", water)
	}
}

func TestEligibleRejectsWrongTerrain(t *testing.T) {
	s, _ := newTestSpawner(1)
	tile := s.terrain.TileAt(0, 0)

	if !s.Eligible(tile, ResourceFood) {
		t.Fatalf("grassland tile should host food")
	}

	tile.Biome = world.BiomeOcean
	if s.Eligible(tile, ResourceFood) {
		t.Fatalf("ocean tile should not host food")
	}

	tile.Biome = world.BiomeGrassland
	tile.Elevation = 0.95
	if s.Eligible(tile, ResourceFood) {
		t.Fatalf("high-elevation tile should not host food")
	}
}

func TestEligibleRejectsUnhealthyRegion(t *testing.T) {
	s, env := newTestSpawner(1)
	tile := s.terrain.TileAt(0, 0)

	env.RecordHarvest(0, 9, 10) // health 0.1, below MinSpawnHealth
	if s.Eligible(tile, ResourceFood) {
		t.Fatalf("spawning should stop below the health floor")
	}
}

func TestMigrationFailureDespawnsCluster(t *testing.T) {
	s, env := newTestSpawner(1)
	s.spawnCluster(ResourceFood, world.Point{X: 5, Y: 5}, 0)

	// Every region is exhausted, so no destination is healthier.
	for i := 0; i < env.RegionCount(); i++ {
		env.RecordHarvest(i, 100, 10)
	}

	var events []DomainEvent
	for i := 0; i < 100 && len(s.clusterOrder) > 0; i++ {
		events = append(events, s.migrateClusters(uint64(i), world.SeasonSummer)...)
	}

	if len(s.clusterOrder) != 0 {
		t.Fatalf("cluster never despawned under critical health")
	}
	if s.Stats().Total != 0 {
		t.Fatalf("despawned cluster left %d resources behind", s.Stats().Total)
	}
	failed := false
	for _, e := range events {
		if e.Type == EventMigrationFailed {
			failed = true
		}
	}
	if !failed {
		t.Fatalf("expected a migration_failed event, got %v", events)
	}
}

func TestRestoreRebuildsClusters(t *testing.T) {
	a, _ := newTestSpawner(9)
	a.SeedInitial(world.SeasonSpring)

	b, _ := newTestSpawner(9)
	b.Restore(a.All())

	if !reflect.DeepEqual(a.All(), b.All()) {
		t.Fatalf("restore changed the resource set")
	}
	if len(a.clusters) != len(b.clusters) {
		t.Fatalf("cluster index mismatch: %d vs %d", len(a.clusters), len(b.clusters))
	}
}

func TestStatsAggregates(t *testing.T) {
	s, _ := newTestSpawner(1)
	seedResource(s, "00000000-0000-0000-0000-000000000040", 10)
	r := seedResource(s, "00000000-0000-0000-0000-000000000041", 4)
	r.Renewable = false

	stats := s.Stats()
	if stats.Total != 2 || stats.ByType[ResourceWood] != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.TotalQuantity != 14 {
		t.Fatalf("total quantity = %v, want 14", stats.TotalQuantity)
	}
	if stats.RenewableCount != 1 {
		t.Fatalf("renewable count = %d, want 1", stats.RenewableCount)
	}
}
