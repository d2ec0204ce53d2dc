package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase/dto"
)

const (
	MsgCoordinatesRequired = "Start and end coordinates are required"
	MsgInvalidCoordinates  = "Invalid coordinates provided"
	MsgNoRoutes            = "No routes found"
	routingErrPrefix       = "Routing service error"
)

// RouteUseCase fetches route alternatives and ranks them.
type RouteUseCase struct {
	router repository.RouterRepository
	logger *zap.Logger
}

func NewRouteUseCase(router repository.RouterRepository, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		router: router,
		logger: logger,
	}
}

// Rank validates the textual coordinates of req and ranks the routes
// between them.
func (uc *RouteUseCase) Rank(ctx context.Context, req dto.RouteRequest) (*domain.RankingResult, error) {
	if err := validator.Validate(&req); err != nil {
		if validator.HasTag(err, "required") {
			return nil, errors.InvalidInput(MsgCoordinatesRequired)
		}
		return nil, errors.InvalidInput(MsgInvalidCoordinates)
	}

	origin, err := parseCoordinate(req.StartLat, req.StartLng)
	if err != nil {
		return nil, errors.InvalidInput(MsgInvalidCoordinates)
	}
	destination, err := parseCoordinate(req.EndLat, req.EndLng)
	if err != nil {
		return nil, errors.InvalidInput(MsgInvalidCoordinates)
	}

	return uc.RankBetween(ctx, origin, destination)
}

// RankBetween ranks the routes between two already validated points.
func (uc *RouteUseCase) RankBetween(ctx context.Context, origin, destination domain.Coordinate) (*domain.RankingResult, error) {
	candidates, err := uc.router.Alternatives(ctx, origin, destination)
	if err != nil {
		uc.logger.Error("Routing failed",
			zap.Any("origin", origin),
			zap.Any("destination", destination),
			zap.Error(err))
		return nil, errors.Upstream(routingErrPrefix, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("No routes between points",
			zap.Any("origin", origin),
			zap.Any("destination", destination))
		return nil, errors.NotFound(MsgNoRoutes)
	}

	result := domain.RankRoutes(candidates)

	uc.logger.Debug("Routes ranked",
		zap.Int("total_routes", result.TotalRoutes),
		zap.Float64("best_score", result.Routes[0].OverallScore),
		zap.Float64("time_saved", result.Recommendation.TimeSaved))

	return result, nil
}

func parseCoordinate(lat, lng string) (domain.Coordinate, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Coordinate{}, err
	}
	lo, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return domain.Coordinate{}, err
	}
	return domain.Coordinate{Lat: la, Lon: lo}, nil
}
