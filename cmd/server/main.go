package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	eventlog "evoworld/internal/adapter/eventlog"
	httpadapter "evoworld/internal/adapter/http"
	metricsinmem "evoworld/internal/adapter/metrics/inmemory"
	gormrepo "evoworld/internal/adapter/repo/gorm"
	"evoworld/internal/adapter/repo/memory"
	"evoworld/internal/app/harvest"
	"evoworld/internal/app/ports"
	"evoworld/internal/app/query"
	"evoworld/internal/app/tick"
	"evoworld/internal/app/worldstate"
	"evoworld/internal/config"
	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
	"evoworld/internal/domain/worldgen"

	"github.com/cloudwego/hertz/pkg/app/server"
)

type repos struct {
	meta      ports.WorldMetaRepository
	terrain   ports.TerrainRepository
	resources ports.ResourceRepository
	regions   ports.EnvironmentRepository
	events    ports.EventRepository
	tx        ports.TxManager
}

func main() {
	cfg, err := config.Load(os.Getenv("EVOWORLD_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	r := mustBuildRepos(cfg)
	state := mustBootstrapWorld(cfg, r)

	recorder := metricsinmem.NewRecorder()
	sink := eventlog.NewWriter(cfg.EventLogDir)
	defer sink.Close()

	tickUC := tick.UseCase{
		State:     state,
		WorldRepo: r.meta,
		Resources: r.resources,
		Regions:   r.regions,
		Events:    r.events,
		Tx:        r.tx,
		Metrics:   recorder,
		Sink:      sink,
	}
	h := httpadapter.Handler{
		QueryUC: query.UseCase{State: state, Events: r.events},
		HarvestUC: harvest.UseCase{
			State:     state,
			Resources: r.resources,
			Regions:   r.regions,
			Events:    r.events,
			Tx:        r.tx,
			Metrics:   recorder,
			Sink:      sink,
		},
		KPI: recorder,
	}

	go runTickLoop(tickUC, cfg.TickInterval())

	s := server.Default(server.WithHostPorts(cfg.Listen))
	h.RegisterRoutes(s)

	log.Printf("evoworld server listening on %s (world %dx%d, seed %d, tick every %s)",
		cfg.Listen, cfg.World.Width, cfg.World.Height, cfg.World.Seed, cfg.TickInterval())
	s.Spin()
}

func runTickLoop(uc tick.UseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		resp, err := uc.Execute(ctx, tick.Request{})
		cancel()
		if err != nil {
			log.Printf("tick failed: %v", err)
			continue
		}
		if resp.EventCount > 0 {
			log.Printf("tick %d (%s): %d events", resp.Tick, resp.Season, resp.EventCount)
		}
	}
}

func mustBuildRepos(cfg config.Config) repos {
	if cfg.DBDSN == "" {
		log.Println("EVOWORLD_DB_DSN not set, using in-memory persistence")
		store := memory.NewStore()
		return repos{
			meta:      memory.NewWorldMetaRepo(store),
			terrain:   memory.NewTerrainRepo(store),
			resources: memory.NewResourceRepo(store),
			regions:   memory.NewRegionRepo(store),
			events:    memory.NewEventRepo(store),
			tx:        memory.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return repos{
		meta:      gormrepo.NewWorldMetaRepo(db),
		terrain:   gormrepo.NewTerrainRepo(db),
		resources: gormrepo.NewResourceRepo(db),
		regions:   gormrepo.NewRegionRepo(db),
		events:    gormrepo.NewEventRepo(db),
		tx:        gormrepo.NewTxManager(db),
	}
}

// mustBootstrapWorld loads a persisted world or generates a fresh one from
// the configured seed. Terrain is regenerated from seed+config when the
// chunk store is empty; the two paths produce identical grids.
func mustBootstrapWorld(cfg config.Config, r repos) *worldstate.State {
	ctx := context.Background()
	calendar := world.NewCalendar(world.CalendarConfig{
		TicksPerDay: cfg.TicksPerDay,
		DaysPerYear: cfg.DaysPerYear,
	})

	meta, err := r.meta.Get(ctx)
	if err == nil {
		return mustResumeWorld(ctx, cfg, r, calendar, meta)
	}
	if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load world meta: %v", err)
	}

	log.Printf("generating world %dx%d seed=%d", cfg.World.Width, cfg.World.Height, cfg.World.Seed)
	terrain, err := worldgen.Generate(cfg.World, func(fraction float64) {
		log.Printf("generation %3.0f%%", fraction*100)
	})
	if err != nil {
		log.Fatalf("generate terrain: %v", err)
	}

	rng := rand.New(rand.NewSource(cfg.World.Seed))
	env := ecology.NewTracker(terrain.RegionCount())
	spawner := ecology.NewSpawner(terrain, env, rng)
	season := calendar.SeasonAt(0)
	events := spawner.SeedInitial(season)
	log.Printf("seeded %d resources in %d clusters", spawner.Stats().Total, len(events))

	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.meta.Save(ctx, ports.WorldMetaRecord{
			Seed:      cfg.World.Seed,
			Config:    cfg.World,
			Tick:      0,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		if err := r.terrain.SaveTerrain(ctx, terrain); err != nil {
			return err
		}
		if err := r.resources.ReplaceAll(ctx, spawner.All()); err != nil {
			return err
		}
		if err := r.regions.SaveRegions(ctx, env.Report()); err != nil {
			return err
		}
		return r.events.Append(ctx, events)
	})
	if err != nil {
		log.Fatalf("persist generated world: %v", err)
	}

	return worldstate.New(terrain, calendar, env, spawner, 0)
}

func mustResumeWorld(ctx context.Context, cfg config.Config, r repos, calendar world.Calendar, meta ports.WorldMetaRecord) *worldstate.State {
	log.Printf("resuming world seed=%d at tick %d", meta.Seed, meta.Tick)

	terrain, err := r.terrain.LoadTerrain(ctx, meta.Config)
	if errors.Is(err, ports.ErrNotFound) {
		terrain, err = worldgen.Generate(meta.Config, nil)
	}
	if err != nil {
		log.Fatalf("load terrain: %v", err)
	}

	regions, err := r.regions.LoadRegions(ctx)
	if err != nil {
		log.Fatalf("load regions: %v", err)
	}
	var env *ecology.Tracker
	if len(regions) == terrain.RegionCount() {
		env = ecology.RestoreTracker(regions)
	} else {
		env = ecology.NewTracker(terrain.RegionCount())
	}

	resources, err := r.resources.ListAll(ctx)
	if err != nil {
		log.Fatalf("load resources: %v", err)
	}
	// Offset the RNG stream by the resume tick so a restarted world does
	// not replay the spawn rolls of its own past.
	rng := rand.New(rand.NewSource(meta.Seed + int64(meta.Tick)))
	spawner := ecology.NewSpawner(terrain, env, rng)
	spawner.Restore(resources)

	return worldstate.New(terrain, calendar, env, spawner, meta.Tick)
}
