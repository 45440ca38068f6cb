package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"evoworld/internal/app/ports"
	"evoworld/internal/domain/ecology"
	"evoworld/internal/domain/world"
)

func TestWorldMetaRoundTrip(t *testing.T) {
	store := NewStore()
	repo := NewWorldMetaRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	if _, err := repo.Get(ctx); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("empty store: expected ErrNotFound, got %v", err)
	}

	meta := ports.WorldMetaRecord{Seed: 42, Config: world.DefaultGenConfig(), Tick: 0}
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.Save(ctx, meta); err != nil {
			return err
		}
		return repo.SaveTick(ctx, 7)
	})
	if err != nil {
		t.Fatalf("tx error: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Seed != 42 || got.Tick != 7 {
		t.Fatalf("unexpected meta: %+v", got)
	}
}

func TestSaveTickWithoutMeta(t *testing.T) {
	repo := NewWorldMetaRepo(NewStore())
	if err := repo.SaveTick(context.Background(), 1); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResourceReplaceAllCopies(t *testing.T) {
	store := NewStore()
	repo := NewResourceRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	in := []ecology.Resource{{
		ID:       uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Type:     ecology.ResourceWood,
		Quantity: 5,
	}}
	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return repo.ReplaceAll(ctx, in)
	}); err != nil {
		t.Fatalf("tx error: %v", err)
	}

	// Mutating the caller's slice must not leak into the store.
	in[0].Quantity = 99

	out, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 || out[0].Quantity != 5 {
		t.Fatalf("stored set aliased the input: %+v", out)
	}
}

func TestEventListRecentIsNewestFirst(t *testing.T) {
	store := NewStore()
	repo := NewEventRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	events := []ecology.DomainEvent{
		{Type: ecology.EventClusterSpawned, Tick: 1},
		{Type: ecology.EventHarvestSettled, Tick: 2},
		{Type: ecology.EventResourceDepleted, Tick: 3},
	}
	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Append(ctx, events)
	}); err != nil {
		t.Fatalf("tx error: %v", err)
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(recent) != 2 || recent[0].Tick != 3 || recent[1].Tick != 2 {
		t.Fatalf("unexpected recent order: %+v", recent)
	}
}

func TestEventListSinceTick(t *testing.T) {
	store := NewStore()
	repo := NewEventRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return repo.Append(ctx, []ecology.DomainEvent{
			{Type: ecology.EventClusterSpawned, Tick: 1},
			{Type: ecology.EventHarvestSettled, Tick: 5},
			{Type: ecology.EventResourceDepleted, Tick: 9},
		})
	}); err != nil {
		t.Fatalf("tx error: %v", err)
	}

	since, err := repo.ListSinceTick(ctx, 5, 10)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(since) != 2 || since[0].Tick != 5 || since[1].Tick != 9 {
		t.Fatalf("unexpected since result: %+v", since)
	}
}

func TestTerrainRoundTrip(t *testing.T) {
	store := NewStore()
	repo := NewTerrainRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	cfg := world.DefaultGenConfig()
	cfg.Width, cfg.Height = 8, 8

	if _, err := repo.LoadTerrain(ctx, cfg); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("empty store: expected ErrNotFound, got %v", err)
	}

	terrain := world.NewTerrain(cfg)
	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return repo.SaveTerrain(ctx, terrain)
	}); err != nil {
		t.Fatalf("tx error: %v", err)
	}

	got, err := repo.LoadTerrain(ctx, cfg)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if got.Width != 8 || got.Height != 8 {
		t.Fatalf("unexpected terrain size: %dx%d", got.Width, got.Height)
	}
}
