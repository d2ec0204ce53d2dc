package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// GeocoderRepository resolves free-text place names.
type GeocoderRepository interface {
	// Search returns matches for query, best first. An empty slice means
	// nothing matched.
	Search(ctx context.Context, query string) ([]domain.Place, error)
}
