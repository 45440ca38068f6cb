package worldstate

import (
	"errors"
	"math/rand"
	"testing"

	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
)

func newTestState(t *testing.T, seed int64) *State {
	t.Helper()
	cfg := world.DefaultGenConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Seed = seed
	terrain := world.NewTerrain(cfg)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			tile := terrain.TileAt(x, y)
			tile.X, tile.Y = x, y
			tile.Elevation = 0.45
			tile.Moisture = 0.6
			tile.Temperature = 0.5
			tile.Biome = world.BiomeGrassland
		}
	}

	env := ecology.NewTracker(terrain.RegionCount())
	spawner := ecology.NewSpawner(terrain, env, rand.New(rand.NewSource(seed)))
	spawner.SeedInitial(world.SeasonSpring)
	return New(terrain, world.DefaultCalendar(), env, spawner, 0)
}

func TestAdvanceIncrementsTick(t *testing.T) {
	s := newTestState(t, 1)

	tick, _, _ := s.Advance(world.WeatherDelta{}, nil, nil)
	if tick != 1 {
		t.Fatalf("tick = %d, want 1", tick)
	}
	if s.Tick() != 1 {
		t.Fatalf("Tick() = %d, want 1", s.Tick())
	}
}

func TestAdvanceAppliesPollution(t *testing.T) {
	s := newTestState(t, 1)

	s.Advance(world.WeatherDelta{}, []PollutionInput{{RegionID: 0, Amount: 0.5}}, nil)

	regions := s.Environment()
	// TickRecover decays pollution by one step after the input lands.
	if regions[0].Pollution <= 0.4 {
		t.Fatalf("pollution input not applied: %v", regions[0].Pollution)
	}
}

func TestAdvanceAppliesWeather(t *testing.T) {
	s := newTestState(t, 1)
	before, err := s.Window(world.Point{X: 5, Y: 5}, 0)
	if err != nil {
		t.Fatalf("window: %v", err)
	}

	s.Advance(world.WeatherDelta{Temperature: 10}, nil, nil)

	after, err := s.Window(world.Point{X: 5, Y: 5}, 0)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if after[0].Temperature <= before[0].Temperature {
		t.Fatalf("warming delta did not raise temperature: %v -> %v",
			before[0].Temperature, after[0].Temperature)
	}
}

func TestAdvanceSeasonOverride(t *testing.T) {
	s := newTestState(t, 1)

	// Early ticks of the default calendar fall in spring.
	_, season, _ := s.Advance(world.WeatherDelta{}, nil, nil)
	if season != world.SeasonSpring {
		t.Fatalf("calendar season = %q, want %q", season, world.SeasonSpring)
	}

	winter := world.SeasonWinter
	_, season, _ = s.Advance(world.WeatherDelta{}, nil, &winter)
	if season != world.SeasonWinter {
		t.Fatalf("override ignored: season = %q, want %q", season, world.SeasonWinter)
	}

	// The override lasts one tick; the calendar takes back over.
	_, season, _ = s.Advance(world.WeatherDelta{}, nil, nil)
	if season != world.SeasonSpring {
		t.Fatalf("season after override = %q, want %q", season, world.SeasonSpring)
	}
}

func TestWindowOutOfBounds(t *testing.T) {
	s := newTestState(t, 1)

	if _, err := s.Window(world.Point{X: -1, Y: 0}, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := s.Window(world.Point{X: 5, Y: 5}, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("negative radius: expected ErrOutOfBounds, got %v", err)
	}
}

func TestResolveHarvestsThroughState(t *testing.T) {
	s := newTestState(t, 1)
	all := s.AllResources()
	if len(all) == 0 {
		t.Fatalf("seeded state has no resources")
	}
	target := all[0]

	results, _ := s.ResolveHarvests([]ecology.HarvestRequest{
		{AgentID: "a", ResourceID: target.ID, Quantity: target.Quantity + 5},
	})

	if results[0].Granted != target.Quantity {
		t.Fatalf("granted %v, want the full remaining %v", results[0].Granted, target.Quantity)
	}
	if !results[0].Partial {
		t.Fatalf("over-claim should settle partial")
	}
}

func TestResourcesVisibleToCopies(t *testing.T) {
	s := newTestState(t, 1)

	visible := s.ResourcesVisibleTo(0)
	for _, r := range visible {
		if r.RequiredTech > 0 {
			t.Fatalf("tech-gated resource %s leaked at tech 0", r.ID)
		}
	}

	ungated := len(visible)
	total := len(s.ResourcesVisibleTo(100))
	if total < ungated {
		t.Fatalf("higher tech saw fewer resources: %d < %d", total, ungated)
	}
}
