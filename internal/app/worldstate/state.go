package worldstate

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
	"evoworld/internal/domain/worldgen"
)

var ErrOutOfBounds = errors.New("window out of bounds")

// PollutionInput is an external pollution event against a region.
type PollutionInput struct {
	RegionID int     `json:"region_id"`
	Amount   float64 `json:"amount"`
}

// State is the live simulation: the frozen terrain plus everything that
// moves on top of it. One writer at a time; queries take the read lock and
// copy out, so readers never observe a half-applied tick.
type State struct {
	mu sync.RWMutex

	terrain  *world.Terrain
	calendar world.Calendar
	env      *ecology.Tracker
	spawner  *ecology.Spawner
	resolver *ecology.Resolver
	tick     uint64
}

func New(terrain *world.Terrain, calendar world.Calendar, env *ecology.Tracker, spawner *ecology.Spawner, tick uint64) *State {
	return &State{
		terrain:  terrain,
		calendar: calendar,
		env:      env,
		spawner:  spawner,
		resolver: ecology.NewResolver(spawner, env),
		tick:     tick,
	}
}

func (s *State) Tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

func (s *State) Season() world.Season {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calendar.SeasonAt(s.tick)
}

// Advance runs one tick: weather and pollution inputs first, then passive
// recovery, then the spawner phase. A non-nil season overrides the calendar
// for this tick; external simulation input wins. Returns the new tick, the
// season the tick ran under, and the events it produced.
func (s *State) Advance(weather world.WeatherDelta, pollution []PollutionInput, seasonOverride *world.Season) (uint64, world.Season, []ecology.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++
	season := s.calendar.SeasonAt(s.tick)
	if seasonOverride != nil {
		season = *seasonOverride
	}

	if weather != (world.WeatherDelta{}) {
		worldgen.ApplyWeatherDelta(s.terrain, weather)
	}
	for _, p := range pollution {
		s.env.RecordPollution(p.RegionID, p.Amount)
	}

	s.env.TickRecover()
	events := s.spawner.Tick(s.tick, season)
	return s.tick, season, events
}

// ResolveHarvests settles a batch against the current tick under the write
// lock; contention inside the batch resolves by ascending agent id.
func (s *State) ResolveHarvests(requests []ecology.HarvestRequest) ([]ecology.HarvestResult, []ecology.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Resolve(s.tick, requests)
}

// Window copies the terrain view around a center tile; the view clips at
// the grid edge. The center itself must be in bounds.
func (s *State) Window(center world.Point, radius int) ([]world.Tile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.terrain.InBounds(center.X, center.Y) || radius < 0 {
		return nil, ErrOutOfBounds
	}
	return s.terrain.Window(center, radius), nil
}

func (s *State) TerrainSize() (int, int) {
	return s.terrain.Width, s.terrain.Height
}

func (s *State) Config() world.GenConfig {
	return s.terrain.Config
}

// ResourcesVisibleTo copies the resource set gated at the given tech level.
func (s *State) ResourcesVisibleTo(techLevel int) []ecology.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spawner.VisibleTo(techLevel)
}

// AllResources is the ungated set, for persistence and analytics.
func (s *State) AllResources() []ecology.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spawner.All()
}

func (s *State) Resource(id uuid.UUID) (ecology.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r := s.spawner.Lookup(id); r != nil {
		return *r, true
	}
	return ecology.Resource{}, false
}

func (s *State) Environment() []ecology.RegionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.env.Report()
}

func (s *State) Stats() ecology.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spawner.Stats()
}
