package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/todo-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

// DefaultTodoFile is the backing file path used when neither the TODO_FILE
// environment variable nor a .todorc file provides one.
const DefaultTodoFile = "/tmp/todo/todo.csv"

// Default done-column glyphs.
const (
	DefaultDoneMarker    = "〇"
	DefaultPendingMarker = "×"
)

// configName is the base name of the configuration file.
const configName = ".todorc"

// ConfigurationManager defines the interface for loading the effective
// configuration and writing a starter config file.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	WriteDefaultConfig(dir string) (string, error)
}

// viperConfigManager implements ConfigurationManager using Viper to read
// the YAML .todorc file. Precedence: TODO_FILE env > .todorc > defaults.
type viperConfigManager struct {
	// searchPaths are the directories probed for .todorc, in order.
	searchPaths []string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .todorc in the current working directory and then the user's home
// directory.
func NewConfigurationManager() ConfigurationManager {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return &viperConfigManager{searchPaths: paths}
}

// newConfigurationManagerAt creates a manager probing only the given
// directories. Used by tests.
func newConfigurationManagerAt(paths ...string) ConfigurationManager {
	return &viperConfigManager{searchPaths: paths}
}

func defaultConfig() *models.Config {
	return &models.Config{
		TodoFile: DefaultTodoFile,
		Markers: models.MarkerConfig{
			Done:    DefaultDoneMarker,
			Pending: DefaultPendingMarker,
		},
	}
}

// LoadConfig reads .todorc from the search paths. A missing file yields the
// defaults. The TODO_FILE environment variable overrides the file path from
// any source.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, p := range cm.searchPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("file", cfg.TodoFile)
	v.SetDefault("markers.done", cfg.Markers.Done)
	v.SetDefault("markers.pending", cfg.Markers.Pending)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading %s: %w", configName, err)
		}
	}

	cfg.TodoFile = v.GetString("file")
	cfg.Markers.Done = v.GetString("markers.done")
	cfg.Markers.Pending = v.GetString("markers.pending")

	if envFile := os.Getenv("TODO_FILE"); envFile != "" {
		cfg.TodoFile = envFile
	}

	return cfg, nil
}

// WriteDefaultConfig writes a .todorc populated with the defaults into dir
// and returns its path. Refuses to overwrite an existing file.
func (cm *viperConfigManager) WriteDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, configName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshaling default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
