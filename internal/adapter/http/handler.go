package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"evoworld/internal/app/harvest"
	"evoworld/internal/app/ports"
	"evoworld/internal/app/query"
	"evoworld/internal/app/worldstate"
	"evoworld/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	QueryUC   query.UseCase
	HarvestUC harvest.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/world/terrain", h.terrain)
	api.GET("/world/resources", h.resources)
	api.GET("/world/environment", h.environment)
	api.GET("/world/stats", h.stats)
	api.GET("/events", h.events)
	api.POST("/harvest", h.harvest)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) terrain(c context.Context, ctx *app.RequestContext) {
	x, errX := strconv.Atoi(string(ctx.Query("x")))
	y, errY := strconv.Atoi(string(ctx.Query("y")))
	if errX != nil || errY != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "x and y query params are required")
		return
	}
	radius, err := strconv.Atoi(string(ctx.Query("radius")))
	if err != nil {
		radius = 8
	}

	resp, err := h.QueryUC.Terrain(c, query.TerrainRequest{
		Center: world.Point{X: x, Y: y},
		Radius: radius,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) resources(c context.Context, ctx *app.RequestContext) {
	techLevel, _ := strconv.Atoi(string(ctx.Query("tech_level")))

	resp, err := h.QueryUC.Resources(c, query.ResourcesRequest{TechLevel: techLevel})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) environment(c context.Context, ctx *app.RequestContext) {
	resp, err := h.QueryUC.Environment(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) stats(c context.Context, ctx *app.RequestContext) {
	resp, err := h.QueryUC.Stats(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	req := query.EventsRequest{}
	if raw := string(ctx.Query("since_tick")); raw != "" {
		since, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "since_tick must be a non-negative integer")
			return
		}
		req.SinceTick = &since
	}
	req.Limit, _ = strconv.Atoi(string(ctx.Query("limit")))

	resp, err := h.QueryUC.EventLog(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) harvest(c context.Context, ctx *app.RequestContext) {
	var body harvest.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.HarvestUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidRequest),
		errors.Is(err, harvest.ErrInvalidRequest),
		errors.Is(err, worldstate.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
