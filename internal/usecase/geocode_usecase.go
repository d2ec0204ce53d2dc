package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/validator"
	"github.com/route-optimizer/internal/usecase/dto"
)

const (
	MsgPlaceRequired    = "Place name is required"
	MsgLocationNotFound = "Location not found"
	geocodingErrPrefix  = "Geocoding service error"
)

// GeocodeUseCase resolves a place name to its best-guess coordinate.
type GeocodeUseCase struct {
	geocoder repository.GeocoderRepository
	logger   *zap.Logger
}

func NewGeocodeUseCase(geocoder repository.GeocoderRepository, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode returns the first match for req.Place, keeping the caller's
// spelling of the name.
func (uc *GeocodeUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*domain.Place, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.InvalidInput(MsgPlaceRequired)
	}

	places, err := uc.geocoder.Search(ctx, req.Place)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.String("place", req.Place), zap.Error(err))
		return nil, errors.Upstream(geocodingErrPrefix, err)
	}

	if len(places) == 0 {
		uc.logger.Info("Place not found", zap.String("place", req.Place))
		return nil, errors.NotFound(MsgLocationNotFound)
	}

	best := places[0]

	return &domain.Place{
		Name:      req.Place,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}
