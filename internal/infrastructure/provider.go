// Package infrastructure builds the outbound collaborators from configuration.
package infrastructure

import (
	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/infrastructure/mapbox"
	"github.com/route-optimizer/internal/infrastructure/nominatim"
	"github.com/route-optimizer/internal/infrastructure/osrm"
	"go.uber.org/zap"
)

// NewGeocoder returns the Nominatim geocoder.
func NewGeocoder(cfg *config.Config, logger *zap.Logger) repository.GeocoderRepository {
	return nominatim.NewNominatimClient(&cfg.Nominatim, cfg.Upstream.Timeout, logger.Named("nominatim"))
}

// NewRouter returns the routing provider selected by ROUTING_PROVIDER.
func NewRouter(cfg *config.Config, logger *zap.Logger) repository.RouterRepository {
	if cfg.Routing.Provider == config.ProviderMapbox {
		return mapbox.NewMapboxClient(&cfg.Mapbox, cfg.Upstream.Timeout, logger.Named("mapbox"))
	}
	return osrm.NewOSRMClient(&cfg.OSRM, cfg.Upstream.Timeout, logger.Named("osrm"))
}
