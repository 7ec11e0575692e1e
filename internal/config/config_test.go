package config

import (
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SPENDBUDDY_API_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("Currency = %q, want rupee", cfg.General.Currency)
	}
	if cfg.General.DefaultRange != "6m" {
		t.Errorf("DefaultRange = %q, want 6m", cfg.General.DefaultRange)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SPENDBUDDY_API_URL", "")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://spendbuddy.example.com"
	cfg.General.DefaultRange = "all"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.BaseURL != "https://spendbuddy.example.com" {
		t.Errorf("BaseURL = %q, want saved value", loaded.API.BaseURL)
	}
	if loaded.General.DefaultRange != "all" {
		t.Errorf("DefaultRange = %q, want all", loaded.General.DefaultRange)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://from-file:8080"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("SPENDBUDDY_API_URL", "http://from-env:9090")
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.API.BaseURL != "http://from-env:9090" {
		t.Fatalf("BaseURL = %q, want env override", loaded.API.BaseURL)
	}
}
