package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "PICSORT"

// Settings configures the program itself; Config is the user's sorting setup.
type Settings struct {
	ConfigPath    string        `envconfig:"CONFIG"`
	LogFile       string        `envconfig:"LOG_FILE"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDev        bool          `envconfig:"LOG_DEV" default:"false"`
	Theme         string        `envconfig:"THEME" default:"dark"`
	ToastDuration time.Duration `envconfig:"TOAST_DURATION" default:"2s"`
	Source        string        `ignored:"true"`
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel:      "info",
		Theme:         "dark",
		ToastDuration: 2 * time.Second,
	}
}

// LoadSettings reads PICSORT_* environment variables and fills in the
// default config and log locations when they are not set.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := envconfig.Process(envPrefix, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	if settings.ConfigPath == "" {
		path, err := ConfigPath()
		if err != nil {
			return settings, err
		}
		settings.ConfigPath = path
	}
	if settings.LogFile == "" {
		settings.LogFile = defaultLogFile()
	}
	return settings, nil
}

func defaultLogFile() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), configDirName+".log")
	}
	return filepath.Join(base, configDirName, configDirName+".log")
}
