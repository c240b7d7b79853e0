package config

import (
	"testing"
	"time"
)

func TestLoadDerivesCodespaceHost(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("CODESPACE_NAME", "fuzzy-train")
	t.Setenv("API_PORT_SUFFIX", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := "https://fuzzy-train-8000.app.github.dev"; cfg.APIBaseURL != want {
		t.Fatalf("expected base %q, got %q", want, cfg.APIBaseURL)
	}
}

func TestLoadFallsBackToReactAppName(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("CODESPACE_NAME", "")
	t.Setenv("REACT_APP_CODESPACE_NAME", "legacy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "https://legacy-8000.app.github.dev" {
		t.Fatalf("unexpected base %q", cfg.APIBaseURL)
	}
}

func TestLoadExplicitBaseURLWins(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8000/")
	t.Setenv("CODESPACE_NAME", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
}

func TestLoadRequiresHost(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("CODESPACE_NAME", "")
	t.Setenv("REACT_APP_CODESPACE_NAME", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when no host is configured")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test")
	t.Setenv("FETCH_TIMEOUT", "")
	t.Setenv("DASHBOARD_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("WAIT_TIMEOUT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.test , ,https://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FetchTimeout != 0 {
		t.Fatalf("expected no fetch timeout by default, got %v", cfg.FetchTimeout)
	}
	if cfg.WaitTimeout != DefaultWaitTimeout {
		t.Fatalf("expected default wait timeout, got %v", cfg.WaitTimeout)
	}
	if cfg.DashboardPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.DashboardPort)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigins)
	}
}

func TestEnvDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"15s": 15 * time.Second,
		"20":  20 * time.Second,
		"bad": time.Minute,
	}
	for raw, want := range cases {
		t.Setenv("OCTOFIT_TEST_DURATION", raw)
		if got := envDuration("OCTOFIT_TEST_DURATION", time.Minute); got != want {
			t.Errorf("envDuration(%q) = %v, want %v", raw, got, want)
		}
	}
}
