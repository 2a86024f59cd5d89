package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/tagcloud/internal/cloud"
	"github.com/piwi3910/tagcloud/internal/model"
)

// LayoutVersion is written to every layout file.
const LayoutVersion = "1.0.0"

// LayoutFile is the on-disk form of a finished cloud together with the
// settings that produced it.
type LayoutFile struct {
	Version   string         `json:"version"`
	CreatedAt string         `json:"created_at"`
	Settings  model.Settings `json:"settings"`
	Cloud     cloud.Cloud    `json:"cloud"`
}

// SaveLayout writes the cloud and its settings to a JSON file at path.
func SaveLayout(path string, c cloud.Cloud, settings model.Settings) error {
	file := LayoutFile{
		Version:   LayoutVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Settings:  settings,
		Cloud:     c,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// LoadLayout reads a layout file written by SaveLayout.
func LoadLayout(path string) (LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	var file LayoutFile
	if err := json.Unmarshal(data, &file); err != nil {
		return LayoutFile{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if file.Version == "" {
		return LayoutFile{}, fmt.Errorf("invalid layout file: missing version field")
	}
	return file, nil
}
