package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/DialogKit/internal/model"
)

// BackupVersion is written into every exported backup.
const BackupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version     string             `json:"version"`
	CreatedAt   string             `json:"created_at"`
	Config      model.AppConfig    `json:"config"`
	Conversions []model.Conversion `json:"conversions"`
}

// ExportAllData exports the config and conversion log to a single JSON file
// at the specified path.
func ExportAllData(exportPath string, config model.AppConfig, conversions []model.Conversion) error {
	if conversions == nil {
		conversions = []model.Conversion{}
	}
	backup := BackupData{
		Version:     BackupVersion,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Config:      config,
		Conversions: conversions,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	backup := BackupData{Config: model.DefaultAppConfig()}
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	backup.Config.Normalize()
	if err := backup.Config.Validate(); err != nil {
		return BackupData{}, fmt.Errorf("invalid backup config: %w", err)
	}
	if backup.Conversions == nil {
		backup.Conversions = []model.Conversion{}
	}
	return backup, nil
}
