package tick

import (
	"context"
	"log"
	"time"

	"evoworld/internal/app/ports"
	"evoworld/internal/app/worldstate"
)

// UseCase advances the simulation one tick and checkpoints the mutable
// state. The checkpoint (resources, regions, events, clock) commits in one
// transaction so a crash never splits a tick.
type UseCase struct {
	State     *worldstate.State
	WorldRepo ports.WorldMetaRepository
	Resources ports.ResourceRepository
	Regions   ports.EnvironmentRepository
	Events    ports.EventRepository
	Tx        ports.TxManager
	Metrics   ports.SimulationMetrics
	Sink      ports.EventSink
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	started := time.Now()

	tick, season, events := u.State.Advance(req.Weather, req.Pollution, req.Season)

	err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.Resources.ReplaceAll(ctx, u.State.AllResources()); err != nil {
			return err
		}
		if err := u.Regions.SaveRegions(ctx, u.State.Environment()); err != nil {
			return err
		}
		if len(events) > 0 {
			if err := u.Events.Append(ctx, events); err != nil {
				return err
			}
		}
		return u.WorldRepo.SaveTick(ctx, tick)
	})
	if err != nil {
		return Response{}, err
	}

	if u.Sink != nil && len(events) > 0 {
		// Export is best-effort; a full disk must not stall the clock.
		if err := u.Sink.Write(events); err != nil {
			log.Printf("tick %d: event sink write failed: %v", tick, err)
		}
	}
	if u.Metrics != nil {
		u.Metrics.RecordTick(time.Since(started))
	}

	return Response{
		Tick:       tick,
		Season:     season,
		EventCount: len(events),
	}, nil
}
