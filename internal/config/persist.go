package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"picsort/internal/domain"
)

const (
	configDirName  = "picsort"
	configFileName = "config.json"
)

var ErrNotFound = errors.New("config not found")

func DefaultConfig() Config {
	return Config{
		DestinationFolders: map[string]domain.Destination{},
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the config at path. A missing file yields ErrNotFound so callers
// can tell "never configured" apart from a broken file.
func Load(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, ErrNotFound
		}
		return config, fmt.Errorf("read config: %w", err)
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}
	return mergeConfig(config, stored), nil
}

func Save(path string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if config.DestinationFolders == nil {
		config.DestinationFolders = map[string]domain.Destination{}
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.SourceFolder != nil {
		merged.SourceFolder = *stored.SourceFolder
	}
	if stored.DestinationFolders != nil {
		merged.DestinationFolders = stored.DestinationFolders
	}
	return merged
}
