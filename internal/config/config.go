package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOSRM   = "osrm"
	ProviderMapbox = "mapbox"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Upstream  UpstreamConfig
	Nominatim NominatimConfig
	Routing   RoutingConfig
	OSRM      OSRMConfig
	Mapbox    MapboxConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowOrigins string
}

// UpstreamConfig applies to every outbound call to a collaborator service.
type UpstreamConfig struct {
	Timeout time.Duration
}

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
}

type RoutingConfig struct {
	Provider string
}

type OSRMConfig struct {
	BaseURL string
	Profile string
}

type MapboxConfig struct {
	BaseURL     string
	AccessToken string
	Profile     string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 5000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("UPSTREAM_TIMEOUT", 10)
	v.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "multi-route-optimizer-project")
	v.SetDefault("ROUTING_PROVIDER", ProviderOSRM)
	v.SetDefault("OSRM_BASE_URL", "http://router.project-osrm.org")
	v.SetDefault("OSRM_PROFILE", "driving")
	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("MAPBOX_PROFILE", "mapbox/driving")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Upstream: UpstreamConfig{
			Timeout: time.Duration(v.GetInt("UPSTREAM_TIMEOUT")) * time.Second,
		},
		Nominatim: NominatimConfig{
			BaseURL:   strings.TrimRight(v.GetString("NOMINATIM_BASE_URL"), "/"),
			UserAgent: v.GetString("NOMINATIM_USER_AGENT"),
		},
		Routing: RoutingConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("ROUTING_PROVIDER"))),
		},
		OSRM: OSRMConfig{
			BaseURL: strings.TrimRight(v.GetString("OSRM_BASE_URL"), "/"),
			Profile: v.GetString("OSRM_PROFILE"),
		},
		Mapbox: MapboxConfig{
			BaseURL:     strings.TrimRight(v.GetString("MAPBOX_BASE_URL"), "/"),
			AccessToken: v.GetString("MAPBOX_ACCESS_TOKEN"),
			Profile:     v.GetString("MAPBOX_PROFILE"),
		},
	}

	if cfg.Upstream.Timeout <= 0 {
		cfg.Upstream.Timeout = 10 * time.Second
	}

	switch cfg.Routing.Provider {
	case ProviderOSRM:
	case ProviderMapbox:
		if cfg.Mapbox.AccessToken == "" {
			return nil, fmt.Errorf("MAPBOX_ACCESS_TOKEN is required when ROUTING_PROVIDER=%s", ProviderMapbox)
		}
	default:
		return nil, fmt.Errorf("unknown ROUTING_PROVIDER %q", cfg.Routing.Provider)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
