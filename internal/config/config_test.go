package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("CLAIMS_API_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected an error without CLAIMS_API_BASE_URL")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLAIMS_API_BASE_URL", "https://example.com/api")
	t.Setenv("CLAIMS_API_TIMEOUT_MS", "")
	t.Setenv("CLAIMS_DATA_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://example.com/api" {
		t.Errorf("unexpected base URL %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != DefaultAPITimeout {
		t.Errorf("expected default timeout, got %v", cfg.APITimeout)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected default data dir, got %q", cfg.DataDir)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLAIMS_API_BASE_URL", "https://example.com/api")
	t.Setenv("CLAIMS_API_TIMEOUT_MS", "1500")
	t.Setenv("CLAIMS_DATA_DIR", "/var/lib/claims")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APITimeout != 1500*time.Millisecond {
		t.Errorf("expected 1.5s timeout, got %v", cfg.APITimeout)
	}
	if cfg.DataDir != "/var/lib/claims" {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
}

func TestLoad_RejectsBadTimeout(t *testing.T) {
	t.Setenv("CLAIMS_API_BASE_URL", "https://example.com/api")

	for _, raw := range []string{"abc", "-5", "0"} {
		t.Setenv("CLAIMS_API_TIMEOUT_MS", raw)
		if _, err := Load(); err == nil {
			t.Errorf("expected an error for CLAIMS_API_TIMEOUT_MS=%q", raw)
		}
	}
}
