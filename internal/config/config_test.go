package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.Password != "12345" {
		t.Errorf("expected default password %q, got %q", "12345", cfg.Auth.Password)
	}
	if len(cfg.Auth.JewelerMarkers) != 2 {
		t.Errorf("expected 2 jeweler markers, got %d", len(cfg.Auth.JewelerMarkers))
	}
	if cfg.Log.Format != "console" {
		t.Errorf("expected default log format %q, got %q", "console", cfg.Log.Format)
	}
	if cfg.Fixtures.Database != "" {
		t.Errorf("expected embedded fixtures by default, got database %q", cfg.Fixtures.Database)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.goldsuite.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Server.RequestTimeout = 15 * time.Second
	original.Auth.JewelerMarkers = []string{"jeweler"}
	original.Fixtures.Database = "fixtures.db"
	original.Feed.Interval = 500 * time.Millisecond
	original.Log.Format = "json"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Server.RequestTimeout != original.Server.RequestTimeout {
		t.Errorf("request_timeout: got %s, want %s", loaded.Server.RequestTimeout, original.Server.RequestTimeout)
	}
	if loaded.Fixtures.Database != original.Fixtures.Database {
		t.Errorf("database: got %q, want %q", loaded.Fixtures.Database, original.Fixtures.Database)
	}
	if loaded.Feed.Interval != original.Feed.Interval {
		t.Errorf("interval: got %s, want %s", loaded.Feed.Interval, original.Feed.Interval)
	}
	if loaded.Log.Format != original.Log.Format {
		t.Errorf("log format: got %q, want %q", loaded.Log.Format, original.Log.Format)
	}
	if len(loaded.Auth.JewelerMarkers) != 1 || loaded.Auth.JewelerMarkers[0] != "jeweler" {
		t.Errorf("jeweler_markers: got %v", loaded.Auth.JewelerMarkers)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("GOLDSUITE_SERVER__PORT", "7000")
	t.Setenv("GOLDSUITE_AUTH__TOKEN_SECRET", "s3cret")
	t.Setenv("GOLDSUITE_FEED__INTERVAL", "5s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 7000 {
		t.Errorf("env override failed: got port %d, want 7000", loaded.Server.Port)
	}
	if loaded.Auth.TokenSecret != "s3cret" {
		t.Errorf("env override failed: got token_secret %q", loaded.Auth.TokenSecret)
	}
	if loaded.Feed.Interval != 5*time.Second {
		t.Errorf("env override failed: got interval %s", loaded.Feed.Interval)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".goldsuite.yml")

	const key = "GOLDSUITE_LOG__LEVEL"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf(".env override failed: got level %q, want debug", loaded.Log.Level)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GOLDSUITE_SERVER__PORT", "server.port"},
		{"GOLDSUITE_SERVER__ALLOW_ALL_ORIGINS", "server.allow_all_origins"},
		{"GOLDSUITE_LOG__LEVEL", "log.level"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"huge port", func(c *Config) { c.Server.Port = 70000 }},
		{"zero timeout", func(c *Config) { c.Server.RequestTimeout = 0 }},
		{"empty password", func(c *Config) { c.Auth.Password = "" }},
		{"zero token ttl", func(c *Config) { c.Auth.TokenTTL = 0 }},
		{"zero feed interval", func(c *Config) { c.Feed.Interval = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestAuthenticator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Auth.Password = "gold"

	auth := cfg.Authenticator()
	if _, err := auth.Authenticate("ahmad", "gold"); err != nil {
		t.Errorf("expected configured password to be accepted: %v", err)
	}
	if _, err := auth.Authenticate("ahmad", "12345"); err == nil {
		t.Error("expected default password to be rejected")
	}
}
