package http

import (
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/delivery/http/handler"
	"github.com/route-optimizer/internal/infrastructure"
	"github.com/route-optimizer/internal/usecase"
)

const osrmTwoRoutes = `{
	"code": "Ok",
	"routes": [
		{"distance": 4000, "duration": 480, "geometry": {"type":"LineString","coordinates":[[88.36,22.57],[88.40,22.60]]}},
		{"distance": 10000, "duration": 600, "geometry": {"type":"LineString","coordinates":[[88.36,22.57],[88.44,22.65]]}}
	]
}`

type upstream struct {
	geocodeStatus int
	geocodeBody   string
	routeStatus   int
	routeBody     string
}

func newTestServer(t *testing.T, up upstream) *Server {
	t.Helper()

	fake := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		switch {
		case r.URL.Path == "/search":
			w.WriteHeader(up.geocodeStatus)
			w.Write([]byte(up.geocodeBody))
		case strings.HasPrefix(r.URL.Path, "/route/v1/driving/"):
			w.WriteHeader(up.routeStatus)
			w.Write([]byte(up.routeBody))
		default:
			w.WriteHeader(stdhttp.StatusNotFound)
		}
	}))
	t.Cleanup(fake.Close)

	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0},
		CORS:      config.CORSConfig{AllowOrigins: "*"},
		Upstream:  config.UpstreamConfig{Timeout: 2 * time.Second},
		Nominatim: config.NominatimConfig{BaseURL: fake.URL, UserAgent: "test"},
		Routing:   config.RoutingConfig{Provider: config.ProviderOSRM},
		OSRM:      config.OSRMConfig{BaseURL: fake.URL, Profile: "driving"},
	}

	logger := zap.NewNop()
	geocodeUC := usecase.NewGeocodeUseCase(infrastructure.NewGeocoder(cfg, logger), logger)
	routeUC := usecase.NewRouteUseCase(infrastructure.NewRouter(cfg, logger), logger)
	planUC := usecase.NewPlanUseCase(geocodeUC, routeUC, logger)

	return NewServer(
		cfg,
		logger,
		handler.NewGeocodeHandler(geocodeUC, logger),
		handler.NewRouteHandler(routeUC, planUC, logger),
	)
}

func doGet(t *testing.T, s *Server, target string) (*stdhttp.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(stdhttp.MethodGet, target, nil)
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, body
}

func TestServer_Liveness(t *testing.T) {
	s := newTestServer(t, upstream{})

	resp, body := doGet(t, s, "/")
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Equal(t, LivenessMessage, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, upstream{})

	resp, body := doGet(t, s, "/api/v1/health")
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"healthy"`)
}

func TestServer_Geocode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t, upstream{
			geocodeStatus: stdhttp.StatusOK,
			geocodeBody:   `[{"lat":"22.5726459","lon":"88.3638953","display_name":"Kolkata"}]`,
		})

		resp, body := doGet(t, s, "/geocode?place=Kolkata")
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"place":"Kolkata","latitude":22.5726459,"longitude":88.3638953}`, string(body))
	})

	t.Run("missing place", func(t *testing.T) {
		s := newTestServer(t, upstream{})

		resp, body := doGet(t, s, "/geocode")
		assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Place name is required"}`, string(body))
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t, upstream{geocodeStatus: stdhttp.StatusOK, geocodeBody: `[]`})

		resp, body := doGet(t, s, "/geocode?place=Atlantis")
		assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Location not found"}`, string(body))
	})

	t.Run("upstream failure", func(t *testing.T) {
		s := newTestServer(t, upstream{geocodeStatus: stdhttp.StatusServiceUnavailable, geocodeBody: `busy`})

		resp, body := doGet(t, s, "/geocode?place=Kolkata")
		assert.Equal(t, stdhttp.StatusInternalServerError, resp.StatusCode)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.True(t, strings.HasPrefix(payload["error"], "Geocoding service error: "))
	})
}

func TestServer_Route(t *testing.T) {
	const query = "/route?start_lat=22.57&start_lng=88.36&end_lat=22.65&end_lng=88.44"

	t.Run("ranked routes", func(t *testing.T) {
		s := newTestServer(t, upstream{routeStatus: stdhttp.StatusOK, routeBody: osrmTwoRoutes})

		resp, body := doGet(t, s, query)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

		var payload struct {
			TotalRoutes int `json:"total_routes"`
			Routes      []struct {
				Rank         int             `json:"rank"`
				DurationMin  float64         `json:"duration_min"`
				TrafficScore int             `json:"traffic_score"`
				OverallScore float64         `json:"overall_score"`
				Geometry     json.RawMessage `json:"geometry"`
			} `json:"routes"`
			Recommendation struct {
				BestRouteIndex int     `json:"best_route_index"`
				Reason         string  `json:"reason"`
				TimeSaved      float64 `json:"time_saved"`
			} `json:"recommendation"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))

		assert.Equal(t, 2, payload.TotalRoutes)
		require.Len(t, payload.Routes, 2)
		assert.Equal(t, 1, payload.Routes[0].Rank)
		assert.Equal(t, 35.0, payload.Routes[0].OverallScore)
		assert.Equal(t, 2, payload.Routes[1].Rank)
		assert.Equal(t, 48.0, payload.Routes[1].OverallScore)
		assert.JSONEq(t, `{"type":"LineString","coordinates":[[88.36,22.57],[88.44,22.65]]}`, string(payload.Routes[0].Geometry))
		assert.Equal(t, 0, payload.Recommendation.BestRouteIndex)
		assert.Equal(t, "Fastest route with optimal traffic conditions", payload.Recommendation.Reason)
		assert.Equal(t, -2.0, payload.Recommendation.TimeSaved)
	})

	t.Run("missing coordinate", func(t *testing.T) {
		s := newTestServer(t, upstream{})

		resp, body := doGet(t, s, "/route?start_lat=22.57&start_lng=88.36&end_lat=22.65")
		assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Start and end coordinates are required"}`, string(body))
	})

	t.Run("no routes", func(t *testing.T) {
		s := newTestServer(t, upstream{routeStatus: stdhttp.StatusOK, routeBody: `{"code":"Ok","routes":[]}`})

		resp, body := doGet(t, s, query)
		assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"No routes found"}`, string(body))
	})

	t.Run("upstream failure", func(t *testing.T) {
		s := newTestServer(t, upstream{routeStatus: stdhttp.StatusBadRequest, routeBody: `{"code":"NoRoute"}`})

		resp, body := doGet(t, s, query)
		assert.Equal(t, stdhttp.StatusInternalServerError, resp.StatusCode)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.True(t, strings.HasPrefix(payload["error"], "Routing service error: "))
	})
}

func TestServer_Plan(t *testing.T) {
	s := newTestServer(t, upstream{
		geocodeStatus: stdhttp.StatusOK,
		geocodeBody:   `[{"lat":"22.57","lon":"88.36"}]`,
		routeStatus:   stdhttp.StatusOK,
		routeBody:     osrmTwoRoutes,
	})

	resp, body := doGet(t, s, "/plan?from=Park+Street&to=Salt+Lake")
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var payload struct {
		From    map[string]interface{} `json:"from"`
		To      map[string]interface{} `json:"to"`
		Ranking struct {
			TotalRoutes int `json:"total_routes"`
		} `json:"ranking"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Park Street", payload.From["place"])
	assert.Equal(t, "Salt Lake", payload.To["place"])
	assert.Equal(t, 2, payload.Ranking.TotalRoutes)

	resp, body = doGet(t, s, "/plan?from=Park+Street")
	assert.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Start and end places are required"}`, string(body))
}

func TestServer_CORSAllowsAnyOrigin(t *testing.T) {
	s := newTestServer(t, upstream{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://example.com")

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownPath(t *testing.T) {
	s := newTestServer(t, upstream{})

	resp, body := doGet(t, s, "/nope")
	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}
