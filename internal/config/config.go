package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	APIBaseURL      string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	FetchTimeout  time.Duration
	InitialHour   int
	TopZonesLimit int

	// StaleGuard discards hour-scoped responses that resolve after the
	// hour has moved on. HourScopedCache keys the zone metrics cache by
	// (hour, zone). Both default on; disabling them reproduces the legacy
	// dashboard behavior.
	StaleGuard      bool
	HourScopedCache bool

	// Optional zone boundary document. Empty path disables the map panel.
	ZonesGeoJSONPath string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchTimeoutStr := sharedcfg.EnvOrDefault("FETCH_TIMEOUT", "10s")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil || fetchTimeout <= 0 {
		return nil, errors.New("invalid FETCH_TIMEOUT")
	}

	initialHour, err := parseInitialHour()
	if err != nil {
		return nil, err
	}

	topZonesLimit := parseTopZonesLimit()

	cfg := &Config{
		APIBaseURL:      os.Getenv("RISK_API_BASE_URL"),
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8081"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		FetchTimeout:  fetchTimeout,
		InitialHour:   initialHour,
		TopZonesLimit: topZonesLimit,

		StaleGuard:      parseBoolDefault("STALE_GUARD", true),
		HourScopedCache: parseBoolDefault("HOUR_SCOPED_CACHE", true),

		ZonesGeoJSONPath: sharedcfg.EnvOrDefault("ZONES_GEOJSON_PATH", "zones.geojson"),
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("RISK_API_BASE_URL is required")
	}

	return cfg, nil
}

func parseInitialHour() (int, error) {
	s := sharedcfg.EnvOrDefault("INITIAL_HOUR", "17")
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > 23 {
		return 0, errors.New("INITIAL_HOUR must be an integer in [0,23]")
	}
	return h, nil
}

func parseTopZonesLimit() int {
	if s := os.Getenv("TOP_ZONES_LIMIT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 5
}

func parseBoolDefault(key string, def bool) bool {
	switch os.Getenv(key) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}
