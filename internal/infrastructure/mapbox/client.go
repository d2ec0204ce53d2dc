package mapbox

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
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент для Mapbox Directions API
func NewMapboxClient(cfg *config.MapboxConfig, timeout time.Duration, logger *zap.Logger) repository.RouterRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.Profile,
		logger:      logger,
	}
}

// Alternatives возвращает альтернативные маршруты между двумя точками
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

	path := fmt.Sprintf("%s/directions/v5/%s/%s;%s",
		c.baseURL,
		c.profile,
		origin.LonLat(),
		destination.LonLat(),
	)

	// Токен не попадает в логи
	c.logger.Debug("Calling Mapbox Directions API",
		zap.String("url", path+"?"+params.Encode()))

	params.Set("access_token", c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redact(err, c.accessToken)
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var directions domain.DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Mapbox Directions API call successful",
		zap.String("code", directions.Code),
		zap.Int("routes", len(directions.Routes)))

	return directions.Candidates(), nil
}

// redact strips the access token from transport errors, which embed the URL.
func redact(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), token, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
