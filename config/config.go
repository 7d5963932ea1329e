package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration for the web app. The three base URLs
// are required and validated up front: a malformed backend address should
// fail at boot, not at the first fetch.
type Config struct {
	BackendURL       string
	AuthURL          string
	FrontendURL      string
	PublicBackendURL string

	RedisAddr string
	Port      string

	GateTokenSecret []byte
	GateTokenTTL    time.Duration

	CategoryCacheTTL time.Duration
}

const (
	defaultPort         = "8080"
	defaultGateTokenTTL = 60 * time.Second
	defaultCategoryTTL  = time.Hour
)

// Load reads configuration from environment variables, applying defaults
// where sensible and rejecting missing or malformed URLs.
func Load() (*Config, error) {
	backendURL, err := requireURL("BACKEND_URL")
	if err != nil {
		return nil, err
	}
	authURL, err := requireURL("AUTH_URL")
	if err != nil {
		return nil, err
	}
	frontendURL, err := requireURL("FRONTEND_URL")
	if err != nil {
		return nil, err
	}
	publicBackendURL, err := requireURL("PUBLIC_BACKEND_URL")
	if err != nil {
		return nil, err
	}

	gateTTL := defaultGateTokenTTL
	if v := os.Getenv("GATE_TOKEN_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid GATE_TOKEN_TTL_SECONDS: %q", v)
		}
		gateTTL = time.Duration(secs) * time.Second
	}

	return &Config{
		BackendURL:       backendURL,
		AuthURL:          authURL,
		FrontendURL:      frontendURL,
		PublicBackendURL: publicBackendURL,
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		Port:             getEnv("PORT", defaultPort),
		GateTokenSecret:  []byte(getEnv("GATE_TOKEN_SECRET", "food_ordering_gate_secret_2024")),
		GateTokenTTL:     gateTTL,
		CategoryCacheTTL: defaultCategoryTTL,
	}, nil
}

func requireURL(key string) (string, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return raw, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
