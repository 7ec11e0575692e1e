// Package config loads and saves the spendbuddy configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all spendbuddy configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency     string `toml:"currency"`
	DefaultRange string `toml:"default_range"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
		},
		General: GeneralConfig{
			Currency:     "₹",
			DefaultRange: "6m",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory. Session state, the offline
// snapshot, and the debug log live here too.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendbuddy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendbuddy")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// SnapshotPath returns the path of the offline sqlite snapshot.
func SnapshotPath() string {
	return filepath.Join(Dir(), "snapshot.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A local .env and the SPENDBUDDY_API_URL env var override the file.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// .env in the working directory, if any
	_ = godotenv.Load()
	if url := os.Getenv("SPENDBUDDY_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
