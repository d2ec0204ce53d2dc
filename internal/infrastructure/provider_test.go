package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRouter_SelectsProvider(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Write([]byte(`{"code":"Ok","routes":[]}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{Timeout: 5 * time.Second},
		OSRM:     config.OSRMConfig{BaseURL: server.URL, Profile: "driving"},
		Mapbox:   config.MapboxConfig{BaseURL: server.URL, Profile: "mapbox/driving", AccessToken: "pk"},
	}
	from := domain.Coordinate{Lat: 1, Lon: 2}
	to := domain.Coordinate{Lat: 3, Lon: 4}

	cfg.Routing.Provider = config.ProviderOSRM
	_, err := NewRouter(cfg, zap.NewNop()).Alternatives(context.Background(), from, to)
	require.NoError(t, err)

	cfg.Routing.Provider = config.ProviderMapbox
	_, err = NewRouter(cfg, zap.NewNop()).Alternatives(context.Background(), from, to)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, paths, 2)
	assert.True(t, strings.HasPrefix(paths[0], "/route/v1/driving/"))
	assert.True(t, strings.HasPrefix(paths[1], "/directions/v5/mapbox/driving/"))
}

func TestNewGeocoder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		w.Write([]byte(`[{"lat":"1.5","lon":"2.5"}]`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Upstream:  config.UpstreamConfig{Timeout: 5 * time.Second},
		Nominatim: config.NominatimConfig{BaseURL: server.URL, UserAgent: "test"},
	}

	places, err := NewGeocoder(cfg, zap.NewNop()).Search(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, 1.5, places[0].Latitude)
}
