package query

import (
	"context"
	"errors"

	"evoworld/internal/app/ports"
	"evoworld/internal/app/worldstate"
)

var ErrInvalidRequest = errors.New("invalid query request")

const (
	maxWindowRadius   = 64
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// UseCase serves read-only views of the live world. Every response is a
// copy taken under the read lock; callers can hold results across ticks.
type UseCase struct {
	State  *worldstate.State
	Events ports.EventRepository
}

func (u UseCase) Terrain(ctx context.Context, req TerrainRequest) (TerrainResponse, error) {
	if req.Radius < 0 || req.Radius > maxWindowRadius {
		return TerrainResponse{}, ErrInvalidRequest
	}
	tiles, err := u.State.Window(req.Center, req.Radius)
	if err != nil {
		return TerrainResponse{}, err
	}
	w, h := u.State.TerrainSize()
	return TerrainResponse{
		Width:  w,
		Height: h,
		Center: req.Center,
		Radius: req.Radius,
		Tiles:  tiles,
	}, nil
}

// Resources returns the live set gated at the requester's tech level.
// Higher-tech resources exist in the world but are withheld here.
func (u UseCase) Resources(ctx context.Context, req ResourcesRequest) (ResourcesResponse, error) {
	if req.TechLevel < 0 {
		return ResourcesResponse{}, ErrInvalidRequest
	}
	return ResourcesResponse{
		Tick:      u.State.Tick(),
		Season:    u.State.Season(),
		Resources: u.State.ResourcesVisibleTo(req.TechLevel),
	}, nil
}

func (u UseCase) Environment(ctx context.Context) (EnvironmentResponse, error) {
	return EnvironmentResponse{
		Tick:    u.State.Tick(),
		Regions: u.State.Environment(),
	}, nil
}

func (u UseCase) Stats(ctx context.Context) (StatsResponse, error) {
	return StatsResponse{
		Tick:   u.State.Tick(),
		Season: u.State.Season(),
		Stats:  u.State.Stats(),
	}, nil
}

func (u UseCase) EventLog(ctx context.Context, req EventsRequest) (EventsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	if req.SinceTick != nil {
		events, err := u.Events.ListSinceTick(ctx, *req.SinceTick, limit)
		if err != nil {
			return EventsResponse{}, err
		}
		return EventsResponse{Events: events}, nil
	}
	events, err := u.Events.ListRecent(ctx, limit)
	if err != nil {
		return EventsResponse{}, err
	}
	return EventsResponse{Events: events}, nil
}
