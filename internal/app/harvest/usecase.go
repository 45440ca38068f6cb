package harvest

import (
	"context"
	"errors"
	"log"

	"evoworld/internal/app/ports"
	"evoworld/internal/app/worldstate"
)

var ErrInvalidRequest = errors.New("invalid harvest request")

// UseCase settles a batch of harvest claims against the live world and
// persists the outcome. A batch is the unit of same-tick contention:
// claims inside it against the same resource settle by ascending agent id.
type UseCase struct {
	State     *worldstate.State
	Resources ports.ResourceRepository
	Regions   ports.EnvironmentRepository
	Events    ports.EventRepository
	Tx        ports.TxManager
	Metrics   ports.SimulationMetrics
	Sink      ports.EventSink
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if len(req.Requests) == 0 {
		return Response{}, ErrInvalidRequest
	}
	for _, r := range req.Requests {
		if r.AgentID == "" || r.Quantity < 0 {
			return Response{}, ErrInvalidRequest
		}
	}

	results, events := u.State.ResolveHarvests(req.Requests)

	err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.Resources.ReplaceAll(ctx, u.State.AllResources()); err != nil {
			return err
		}
		if err := u.Regions.SaveRegions(ctx, u.State.Environment()); err != nil {
			return err
		}
		if len(events) > 0 {
			return u.Events.Append(ctx, events)
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Sink != nil && len(events) > 0 {
		if err := u.Sink.Write(events); err != nil {
			log.Printf("harvest: event sink write failed: %v", err)
		}
	}
	if u.Metrics != nil {
		for _, res := range results {
			if res.NotFound {
				continue
			}
			u.Metrics.RecordHarvest(res.Granted, res.Partial)
			if res.Depleted {
				u.Metrics.RecordDepletion()
			}
		}
	}

	return Response{Tick: u.State.Tick(), Results: results}, nil
}
