// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/dashboard and cmd/octofit.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIPortSuffix is the port the OctoFit API listens on inside a
// codespace. It is appended to the codespace name to form the public host.
const DefaultAPIPortSuffix = 8000

// DefaultWaitTimeout caps how long a ?wait=true request blocks on a fetch.
const DefaultWaitTimeout = 30 * time.Second

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Remote OctoFit API
	CodespaceName string
	APIPortSuffix int
	APIBaseURL    string // resolved; see Load

	// Outbound fetching
	FetchRequestsPerMinute int           // 0 disables pacing
	FetchTimeout           time.Duration // 0 means no transport timeout

	// Dashboard server
	DashboardHost   string
	DashboardPort   int
	Environment     string // development, staging, production
	Debug           bool
	ActivateOnStart bool
	WaitTimeout     time.Duration // upper bound for ?wait=true

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
//
// The API base URL is taken from API_BASE_URL when set. Otherwise it is
// derived from CODESPACE_NAME (or REACT_APP_CODESPACE_NAME, the name the
// React frontend used) as https://<name>-<suffix>.app.github.dev.
func Load() (*Config, error) {
	cfg := &Config{
		CodespaceName: envOr("CODESPACE_NAME", envOr("REACT_APP_CODESPACE_NAME", "")),
		APIPortSuffix: envInt("API_PORT_SUFFIX", DefaultAPIPortSuffix),

		FetchRequestsPerMinute: envInt("FETCH_REQUESTS_PER_MINUTE", 0),
		FetchTimeout:           envDuration("FETCH_TIMEOUT", 0),

		DashboardHost:   envOr("DASHBOARD_HOST", "0.0.0.0"),
		DashboardPort:   envInt("DASHBOARD_PORT", envInt("PORT", 8080)),
		Environment:     envOr("ENVIRONMENT", "development"),
		Debug:           envBool("DEBUG", false),
		ActivateOnStart: envBool("ACTIVATE_ON_START", true),
		WaitTimeout:     envDuration("WAIT_TIMEOUT", DefaultWaitTimeout),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}

	base, err := ResolveBaseURL(envOr("API_BASE_URL", ""), cfg.CodespaceName, cfg.APIPortSuffix)
	if err != nil {
		return nil, err
	}
	cfg.APIBaseURL = base
	return cfg, nil
}

// ResolveBaseURL picks the remote API origin. An explicit URL wins; otherwise
// the codespace host is built from the name and port suffix.
func ResolveBaseURL(explicit, codespace string, portSuffix int) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return strings.TrimRight(explicit, "/"), nil
	}
	codespace = strings.TrimSpace(codespace)
	if codespace == "" {
		return "", fmt.Errorf("API_BASE_URL or CODESPACE_NAME must be set")
	}
	if portSuffix <= 0 {
		return "", fmt.Errorf("invalid API_PORT_SUFFIX %d", portSuffix)
	}
	return fmt.Sprintf("https://%s-%d.app.github.dev", codespace, portSuffix), nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go duration syntax ("30s") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
