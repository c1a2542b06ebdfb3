package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// LocalBackendURL is the backend address used for local development.
	LocalBackendURL = "http://localhost:8000/api"
	// ServiceBackendURL is the in-cluster service name of the analytics backend.
	ServiceBackendURL = "http://ipl-analytics-backend/api"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream analytics backend
	BackendURL     string
	BackendTimeout time.Duration

	// Optional stores. Empty disables the feature.
	RedisURL    string
	PostgresURL string
	CacheTTL    time.Duration

	// Cache warmer
	WarmWorkers  int
	WarmInterval time.Duration

	DefaultSeason int
}

// Load loads configuration from environment variables.
// The backend URL is resolved once here; nothing else inspects the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),

		RedisURL:    getEnv("REDIS_URL", ""),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),

		WarmWorkers:  getEnvInt("WARM_WORKERS", 2),
		WarmInterval: getEnvDuration("WARM_INTERVAL", 10*time.Minute),

		DefaultSeason: getEnvInt("DEFAULT_SEASON", 2024),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	backendURL, err := ResolveBackendURL(os.Getenv("BACKEND_URL"), cfg.Env)
	if err != nil {
		return nil, err
	}
	cfg.BackendURL = backendURL

	if cfg.BackendTimeout <= 0 {
		return nil, fmt.Errorf("BACKEND_TIMEOUT must be positive, got %s", cfg.BackendTimeout)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ResolveBackendURL picks the backend base URL: an explicit value wins, otherwise
// development targets localhost and every other environment targets the service name.
// The returned URL never ends with a slash.
func ResolveBackendURL(explicit, env string) (string, error) {
	raw := strings.TrimSpace(explicit)
	if raw == "" {
		if env == "development" {
			raw = LocalBackendURL
		} else {
			raw = ServiceBackendURL
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid BACKEND_URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid BACKEND_URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid BACKEND_URL %q: missing host", raw)
	}

	return strings.TrimRight(raw, "/"), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
