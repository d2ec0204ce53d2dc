package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// RouterRepository fetches driving route alternatives between two points.
type RouterRepository interface {
	// Alternatives returns every route the provider offers, in provider
	// order. An empty slice means the provider found no route.
	Alternatives(
		ctx context.Context,
		origin domain.Coordinate,
		destination domain.Coordinate,
	) ([]domain.RouteCandidate, error)
}
