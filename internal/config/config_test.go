package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Search.BinaryPath != "yt-dlp" {
		t.Errorf("expected default binary yt-dlp, got %q", cfg.Search.BinaryPath)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("expected default max results 10, got %d", cfg.Search.MaxResults)
	}
	if cfg.Download.ScratchDir == "" {
		t.Error("expected non-empty scratch dir")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("YTDLP_PATH", "/usr/local/bin/yt-dlp")
	t.Setenv("SEARCH_MAX_RESULTS", "5")
	t.Setenv("SCRATCH_DIR", "/var/scratch")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Search.BinaryPath != "/usr/local/bin/yt-dlp" {
		t.Errorf("unexpected binary path %q", cfg.Search.BinaryPath)
	}
	if cfg.Download.BinaryPath != "/usr/local/bin/yt-dlp" {
		t.Errorf("unexpected download binary path %q", cfg.Download.BinaryPath)
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("expected max results 5, got %d", cfg.Search.MaxResults)
	}
	if cfg.Download.ScratchDir != "/var/scratch" {
		t.Errorf("unexpected scratch dir %q", cfg.Download.ScratchDir)
	}
}

func TestLoadRejectsNonPositiveMaxResults(t *testing.T) {
	t.Setenv("SEARCH_MAX_RESULTS", "-1")

	if _, err := Load(); err == nil {
		t.Error("expected error for negative SEARCH_MAX_RESULTS")
	}
}

func TestCORSProfiles(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		t.Setenv("CORS_PROFILE", "development")
		cfg := loadCORSConfig()
		if cfg.Profile != "development" || !cfg.Enabled {
			t.Errorf("unexpected development profile: %+v", cfg)
		}
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("CORS_PROFILE", "production")
		cfg := loadCORSConfig()
		if cfg.Profile != "production" {
			t.Errorf("unexpected production profile: %+v", cfg)
		}
	})

	t.Run("custom fallback", func(t *testing.T) {
		t.Setenv("CORS_PROFILE", "whatever")
		cfg := loadCORSConfig()
		if cfg.Profile != "custom" {
			t.Errorf("unexpected custom profile: %+v", cfg)
		}
	})
}
