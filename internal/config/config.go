package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}

// Data source kinds accepted by DATA_SOURCE.
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Config is the process configuration shared by cmd/server and cmd/dbtool.
type Config struct {
	Port          string
	DataSource    string
	DataPath      string
	DBPath        string
	DatabaseURL   string
	RedisAddr     string
	ChartCacheTTL time.Duration
	ChartWidth    int
	ChartHeight   int
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		DataSource:  strings.ToLower(Get("DATA_SOURCE", SourceCSV)),
		DataPath:    Get("DATA_PATH", "data/spacex_launch_dash.csv"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
	}

	var err error
	if cfg.ChartCacheTTL, err = GetDuration("CHART_CACHE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.ChartWidth, err = GetInt("CHART_WIDTH", 1024); err != nil {
		return Config{}, err
	}
	if cfg.ChartHeight, err = GetInt("CHART_HEIGHT", 512); err != nil {
		return Config{}, err
	}

	switch cfg.DataSource {
	case SourceCSV, SourceSQLite:
	case SourcePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("config: DATABASE_URL is required when DATA_SOURCE=%s", SourcePostgres)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown DATA_SOURCE %q", cfg.DataSource)
	}

	if cfg.ChartWidth <= 0 || cfg.ChartHeight <= 0 {
		return Config{}, fmt.Errorf("config: chart size must be positive, got %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}

	return cfg, nil
}
