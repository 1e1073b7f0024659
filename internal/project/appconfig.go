// Package project persists Tuxedo preferences on disk.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/tuxedo/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.tuxedo/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tuxedo")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultFontDir is where bundled fonts are looked up when the config does
// not name a directory.
func DefaultFontDir() string {
	return filepath.Join(DefaultConfigDir(), "fonts")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save config: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// FontDir returns the configured font directory, or DefaultFontDir.
func FontDir(config model.AppConfig) string {
	if config.FontDir != "" {
		return config.FontDir
	}
	return DefaultFontDir()
}
