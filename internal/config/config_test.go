package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdirTemp runs the test from an empty directory so no config file or
// .env from the repository is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TelegramAPIToken != "token" {
		t.Errorf("token = %q", cfg.TelegramAPIToken)
	}
	if cfg.Env != "local" {
		t.Errorf("env = %q, want local", cfg.Env)
	}
	if cfg.ImagesDir != "assets/images" {
		t.Errorf("images dir = %q", cfg.ImagesDir)
	}
	if cfg.Quiz.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl = %s", cfg.Quiz.SessionTTL)
	}
	if cfg.Janitor.Schedule != "@every 10m" {
		t.Errorf("schedule = %q", cfg.Janitor.Schedule)
	}
}

func TestLoadMissingToken(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "")

	if _, err := Load(); !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Fatalf("expected ErrMissingEnvironmentVariables, got %v", err)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("APP_ENV", "production")

	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := []byte("env: dev\nshare_url: https://t.me/sorting_hat_bot\nquiz:\n  session_ttl: 2h\n")
	if err := os.WriteFile(filepath.Join(dir, "config", "config.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("env = %q, APP_ENV should win over the file", cfg.Env)
	}
	if cfg.ShareURL != "https://t.me/sorting_hat_bot" {
		t.Errorf("share url = %q", cfg.ShareURL)
	}
	if cfg.Quiz.SessionTTL != 2*time.Hour {
		t.Errorf("session ttl = %s", cfg.Quiz.SessionTTL)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("TELEGRAM_API_TOKEN", "")
	// godotenv does not override variables that are already set, so unset it.
	os.Unsetenv("TELEGRAM_API_TOKEN")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TELEGRAM_API_TOKEN=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TelegramAPIToken != "from-dotenv" {
		t.Errorf("token = %q", cfg.TelegramAPIToken)
	}
}
