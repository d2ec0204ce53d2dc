package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase/dto"
)

const MsgPlacesRequired = "Start and end places are required"

// PlanUseCase goes from two place names to ranked routes in one call:
// both names are geocoded in parallel, then routes between them are ranked.
type PlanUseCase struct {
	geocodeUC *GeocodeUseCase
	routeUC   *RouteUseCase
	logger    *zap.Logger
}

func NewPlanUseCase(geocodeUC *GeocodeUseCase, routeUC *RouteUseCase, logger *zap.Logger) *PlanUseCase {
	return &PlanUseCase{
		geocodeUC: geocodeUC,
		routeUC:   routeUC,
		logger:    logger,
	}
}

func (uc *PlanUseCase) Plan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.InvalidInput(MsgPlacesRequired)
	}

	resp := &dto.PlanResponse{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		from, err := uc.geocodeUC.Geocode(gctx, dto.GeocodeRequest{Place: req.From})
		if err != nil {
			return err
		}
		resp.From = *from
		return nil
	})
	g.Go(func() error {
		to, err := uc.geocodeUC.Geocode(gctx, dto.GeocodeRequest{Place: req.To})
		if err != nil {
			return err
		}
		resp.To = *to
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Warn("Plan geocoding failed",
			zap.String("from", req.From),
			zap.String("to", req.To),
			zap.Error(err))
		return nil, err
	}

	ranking, err := uc.routeUC.RankBetween(ctx, resp.From.Coordinate(), resp.To.Coordinate())
	if err != nil {
		return nil, err
	}
	resp.Ranking = ranking

	return resp, nil
}
