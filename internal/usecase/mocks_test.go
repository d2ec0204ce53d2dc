package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/route-optimizer/internal/domain"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) Search(ctx context.Context, query string) ([]domain.Place, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

// MockRouterRepository is a mock of RouterRepository
type MockRouterRepository struct {
	mock.Mock
}

func (m *MockRouterRepository) Alternatives(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
) ([]domain.RouteCandidate, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RouteCandidate), args.Error(1)
}
