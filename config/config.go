// Package config handles application configuration for seed-phrases-for-stellar.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// DataDir is the root directory for on-disk state (the keystore).
	DataDir string

	// Language selects the BIP-0039 wordlist used during classification.
	Language string

	// Log holds logging settings.
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	JSON  bool
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		Language: "english",
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultDataDir returns the platform-appropriate data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stellar-seed-keys"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "StellarSeedKeys")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "StellarSeedKeys")
		}
		return filepath.Join(home, "AppData", "Roaming", "StellarSeedKeys")
	default:
		return filepath.Join(home, ".stellar-seed-keys")
	}
}

// KeystoreDir returns the keystore directory under the data directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// Validate checks the configuration for obvious mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if cfg.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error")
	}
	return nil
}
