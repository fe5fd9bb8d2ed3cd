package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/minish/internal/core/domain/settings"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".minish.yaml"

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the settings.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultPath returns $HOME/.minish.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// LoadSettings reads the configured YAML file on top of settings.Default().
// A missing or empty file yields the defaults. Unknown keys and invalid limits
// are errors.
func (p *YAMLProvider) LoadSettings() (settings.Settings, error) {
	cfg := settings.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: %w", p.filePath, err)
	}
	return cfg, nil
}
