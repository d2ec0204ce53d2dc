package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	logger     *zap.Logger
}

// NewOSRMClient creates a router backed by the OSRM route service.
func NewOSRMClient(cfg *config.OSRMConfig, timeout time.Duration, logger *zap.Logger) repository.RouterRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		profile: cfg.Profile,
		logger:  logger,
	}
}

// Alternatives requests every alternative OSRM can offer with full GeoJSON
// geometry and turn-by-turn steps.
func (c *client) Alternatives(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
) ([]domain.RouteCandidate, error) {
	params := url.Values{}
	params.Set("alternatives", "true")
	params.Set("geometries", "geojson")
	params.Set("overview", "full")
	params.Set("steps", "true")

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s;%s?%s",
		c.baseURL,
		c.profile,
		origin.LonLat(),
		destination.LonLat(),
		params.Encode(),
	)

	c.logger.Debug("Calling OSRM route API", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("OSRM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("osrm API error: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var routeResp domain.DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("OSRM route API call successful",
		zap.String("code", routeResp.Code),
		zap.Int("routes", len(routeResp.Routes)))

	return routeResp.Candidates(), nil
}
