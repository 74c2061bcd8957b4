package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/DialogKit/internal/model"
)

// DefaultHistoryPath returns the default path of the saved conversion log.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.json")
}

// historyFile is the on-disk shape of the conversion log.
type historyFile struct {
	Conversions []model.Conversion `json:"conversions"`
}

// SaveHistory writes the conversion entries to path as JSON.
func SaveHistory(path string, entries []model.Conversion) error {
	if entries == nil {
		entries = []model.Conversion{}
	}
	if err := writeJSON(path, historyFile{Conversions: entries}); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// LoadHistory reads conversion entries from path. A missing file yields an
// empty list.
func LoadHistory(path string) ([]model.Conversion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Conversion{}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	if f.Conversions == nil {
		f.Conversions = []model.Conversion{}
	}
	return f.Conversions, nil
}
