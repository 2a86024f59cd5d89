package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/piwi3910/tagcloud/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.tagcloud/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tagcloud")
}

// DefaultConfigPath returns the default path for the settings file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}

// SaveSettings persists settings to the given path as TOML.
// It creates any missing parent directories automatically.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// LoadSettings reads settings from the given path, overlaid on the defaults.
// If the file does not exist, it returns DefaultSettings with no error.
// A file that sets the canvas but not the center gets the center recomputed.
// Unknown keys and invalid values are errors.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()
	meta, err := toml.DecodeFile(path, &settings)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return model.Settings{}, fmt.Errorf("%s: unknown settings %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("canvas") && !meta.IsDefined("center") {
		settings = settings.WithCanvas(settings.Canvas)
	}
	if err := settings.Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}
