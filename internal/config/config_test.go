package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.PredictDelay != 0 {
		t.Fatalf("expected no artificial delay by default, got %v", cfg.PredictDelay)
	}
	if cfg.SMTPPort != 587 {
		t.Fatalf("expected default smtp port 587, got %d", cfg.SMTPPort)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PREDICT_DELAY", "1s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("FEEDBACK_TO", "team@example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "9090" || cfg.PredictDelay != time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.FeedbackTo != "team@example.com" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("PREDICT_DELAY", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
