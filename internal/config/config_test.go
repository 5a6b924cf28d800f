package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CITATOR_API_KEY", "MAX_OPEN_PLAYS", "PLAY_TTL", "RATE_LIMIT_RPS", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.Port != "8091" {
		t.Errorf("expected port %q, got %q", "8091", cfg.Port)
	}
	if cfg.MaxOpenPlays != 64 {
		t.Errorf("expected 64 open plays, got %d", cfg.MaxOpenPlays)
	}
	if cfg.PlayTTL != 2*time.Hour {
		t.Errorf("expected ttl 2h, got %s", cfg.PlayTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_OPEN_PLAYS", "3")
	t.Setenv("PLAY_TTL", "15m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CITATOR_API_KEY", "secret")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port %q, got %q", "9000", cfg.Port)
	}
	if cfg.MaxOpenPlays != 3 {
		t.Errorf("expected 3 open plays, got %d", cfg.MaxOpenPlays)
	}
	if cfg.PlayTTL != 15*time.Minute {
		t.Errorf("expected ttl 15m, got %s", cfg.PlayTTL)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("expected rps 2.5, got %f", cfg.RateLimitRPS)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("expected api key to be read")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_OPEN_PLAYS", "-4")
	t.Setenv("PLAY_TTL", "soon")
	cfg := Load()
	if cfg.MaxOpenPlays != 64 {
		t.Errorf("expected fallback 64, got %d", cfg.MaxOpenPlays)
	}
	if cfg.PlayTTL != 2*time.Hour {
		t.Errorf("expected fallback 2h, got %s", cfg.PlayTTL)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8091", RateLimitRPS: 1, LogFormat: "json"}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := []Config{
		{Port: "http", RateLimitRPS: 1, LogFormat: "json"},
		{Port: "8091", RateLimitRPS: 0, LogFormat: "json"},
		{Port: "8091", RateLimitRPS: 1, LogFormat: "xml"},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
