package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisURL    string

	CORSAllowedOrigins []string
	CurrencyCode       string

	// Default PAX slab sets for the two matrix surfaces. The engine takes
	// slabs as input; these only seed the defaults when a caller sends none.
	EditorPaxSlabs []int
	ExportPaxSlabs []int

	DirectoryCacheTTL time.Duration
	QuoteListLimit    int

	NarrativeAPIKey string
	NarrativeModel  string

	ExportRateWindow time.Duration
	ExportRateMax    int
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		DatabaseURL:        k.String("DATABASE_URL"),
		RedisURL:           k.String("REDIS_URL"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		CurrencyCode:       valueOrDefault(k.String("PRICING_CURRENCY"), "USD"),
		EditorPaxSlabs:     parseSlabs(k.String("PRICING_EDITOR_PAX_SLABS"), []int{1, 2, 4, 6, 8, 10, 15, 20}),
		ExportPaxSlabs:     parseSlabs(k.String("PRICING_EXPORT_PAX_SLABS"), []int{2, 4, 6, 8, 10}),
		DirectoryCacheTTL:  parseDuration(k.String("DIRECTORY_CACHE_TTL"), "5m"),
		QuoteListLimit:     parseInt(k.String("QUOTE_LIST_LIMIT"), 20),
		NarrativeAPIKey:    k.String("NARRATIVE_API_KEY"),
		NarrativeModel:     valueOrDefault(k.String("NARRATIVE_MODEL"), "gemini-1.5-flash"),
		ExportRateWindow:   parseDuration(k.String("EXPORT_RATE_WINDOW"), "1m"),
		ExportRateMax:      parseInt(k.String("EXPORT_RATE_MAX"), 10),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseSlabs parses a comma-separated PAX slab list, dropping anything below 1.
func parseSlabs(value string, fallback []int) []int {
	parts := splitAndTrim(value)
	if len(parts) == 0 {
		return fallback
	}
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
