package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-optimizer/internal/pkg/utils"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler serves ranked driving routes.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	planUC  *usecase.PlanUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, planUC *usecase.PlanUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		planUC:  planUC,
		logger:  logger,
	}
}

// Route godoc
// @Summary Ranked route alternatives
// @Description Fetches driving alternatives between two points and ranks them by a composite score of duration, distance and inferred congestion (lower is better)
// @Tags Routing
// @Produce json
// @Param start_lat query number true "Start latitude"
// @Param start_lng query number true "Start longitude"
// @Param end_lat query number true "End latitude"
// @Param end_lng query number true "End longitude"
// @Success 200 {object} domain.RankingResult
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /route [get]
func (h *RouteHandler) Route(c *fiber.Ctx) error {
	req := dto.RouteRequest{
		StartLat: c.Query("start_lat"),
		StartLng: c.Query("start_lng"),
		EndLat:   c.Query("end_lat"),
		EndLng:   c.Query("end_lng"),
	}

	result, err := h.routeUC.Rank(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Debug("Route request served", zap.Int("total_routes", result.TotalRoutes))

	return utils.SendJSON(c, result)
}

// Plan godoc
// @Summary Ranked routes between two place names
// @Description Geocodes both place names, then returns ranked driving alternatives between them
// @Tags Routing
// @Produce json
// @Param from query string true "Start place name"
// @Param to query string true "Destination place name"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /plan [get]
func (h *RouteHandler) Plan(c *fiber.Ctx) error {
	req := dto.PlanRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	resp, err := h.planUC.Plan(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, resp)
}
