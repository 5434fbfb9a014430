package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if !cfg.App.IsDev() {
		t.Fatal("expected IsDev() for default env")
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected API base URL: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.API.Timeout)
	}
	if !cfg.MockAPI.UseSQLite {
		t.Fatal("expected mock API to default to sqlite")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvAPIBaseURL, "https://api.grocerly.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected production env, got %q", cfg.App.Env)
	}
	if cfg.API.BaseURL != "https://api.grocerly.example" {
		t.Fatalf("unexpected API base URL: %q", cfg.API.BaseURL)
	}
}

func TestJWTTokenTTL(t *testing.T) {
	cfg := JWTConfig{ExpirationMinutes: 90}
	if got := cfg.TokenTTL(); got != 90*time.Minute {
		t.Fatalf("expected 90m, got %v", got)
	}
	if got := (JWTConfig{}).TokenTTL(); got != 0 {
		t.Fatalf("expected zero TTL, got %v", got)
	}
}
