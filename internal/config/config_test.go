package config

import (
	"strings"
	"testing"
	"time"

	"support-desk-backend/internal/store"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "GEMINI_API_KEY", "AI_TIMEOUT", "SEED_DEMO_DATA", "ANALYTICS_CSAT", "DIGEST_CRON", "TRANSCRIPTS_TABLE"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.Gemini.Timeout != DefaultAITimeout {
		t.Fatalf("unexpected timeout %s", cfg.Gemini.Timeout)
	}
	if !cfg.SeedDemoData {
		t.Fatal("expected demo seed enabled by default")
	}
	if cfg.CSAT != store.DefaultCSAT || cfg.ResponseTime != store.DefaultResponseTime {
		t.Fatalf("unexpected placeholders %v %q", cfg.CSAT, cfg.ResponseTime)
	}
	if cfg.ArchiveEnabled() {
		t.Fatal("archive should be disabled without a table")
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://desk.example.com, ,https://admin.example.com")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("TRANSCRIPTS_TABLE", "Transcripts")
	t.Setenv("DIGEST_CRON", "0 9 * * *")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.ListenAddr != ":8081" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.Gemini.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Gemini.Timeout)
	}
	if cfg.SeedDemoData {
		t.Fatal("expected demo seed disabled")
	}
	if !cfg.ArchiveEnabled() {
		t.Fatal("expected archive enabled")
	}
}

func TestFromEnvCollectsErrors(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "soon")
	t.Setenv("REQUEST_WORKERS", "many")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected parse error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "AI_TIMEOUT") || !strings.Contains(msg, "REQUEST_WORKERS") {
		t.Fatalf("expected both keys in error, got %q", msg)
	}
}

func TestFromEnvValidation(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "0s")
	t.Setenv("ANALYTICS_CSAT", "7")
	t.Setenv("DIGEST_CRON", "every day")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"timeout", "csat", "digest cron"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}
