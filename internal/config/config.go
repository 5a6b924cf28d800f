package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Auth; empty disables the bearer check.
	APIKey string

	// Open plays
	MaxOpenPlays   int
	PlayTTL        time.Duration
	MaxUploadBytes int64

	// Cite endpoint rate limit
	RateLimitRPS   float64
	RateLimitBurst int

	// Locate stats window
	StatsWindow time.Duration

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("CITATOR_API_KEY"),

		MaxOpenPlays:   envInt("MAX_OPEN_PLAYS", 64),
		PlayTTL:        envDuration("PLAY_TTL", 2*time.Hour),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 40),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),
		LogFile:   os.Getenv("LOG_FILE"),
	}

	if cfg.MaxOpenPlays <= 0 {
		cfg.MaxOpenPlays = 64
	}
	if cfg.PlayTTL <= 0 {
		cfg.PlayTTL = 2 * time.Hour
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 40
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(strings.TrimPrefix(c.Port, ":")); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

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

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
