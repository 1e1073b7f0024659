package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/tuxedo/internal/model"
)

// BackupVersion is written into every preferences backup.
const BackupVersion = "1.0.0"

// BackupData is the on-disk shape of an exported preferences file.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
}

// ExportPreferences writes config to exportPath so it can be carried to
// another machine.
func ExportPreferences(exportPath string, config model.AppConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to export preferences: %w", err)
	}
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

// ImportPreferences reads a file written by ExportPreferences. Fields the
// file omits keep their defaults. The caller applies the returned config.
func ImportPreferences(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read preferences file: %w", err)
	}
	backup := BackupData{Config: model.DefaultAppConfig()}
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, errors.New("invalid preferences file: missing version field")
	}
	if err := backup.Config.Validate(); err != nil {
		return BackupData{}, fmt.Errorf("invalid preferences file: %w", err)
	}
	return backup, nil
}
