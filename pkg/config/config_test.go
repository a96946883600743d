package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Backend.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("unexpected backend base URL: %q", cfg.Backend.BaseURL)
	}

	if got := cfg.Backend.Timeout; got != 10*time.Second {
		t.Fatalf("expected default backend timeout 10s, got %v", got)
	}

	if cfg.State.Kind() != StateBackendFile {
		t.Fatalf("expected default file state backend, got %q", cfg.State.Kind())
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RedisBackendRequiresURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStateBackend, StateBackendRedis)

	if _, err := Load(); err == nil {
		t.Fatal("expected redis state backend without a URL to fail")
	}

	t.Setenv(EnvStateRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.State.Kind() != StateBackendRedis {
		t.Fatalf("expected redis state backend, got %q", cfg.State.Kind())
	}
}

func TestLoad_UnknownStateBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStateBackend, "scroll")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown state backend to fail")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvBackendURL, "http://localhost:8080/api")
}
