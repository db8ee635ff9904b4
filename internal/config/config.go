// Package config loads the planner's configuration: where the data file
// lives. Values come from an optional YAML file, overridable through the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const defaultDataFile = "data.csv"

// Config holds the configuration for the application.
type Config struct {
	// DataFile is the path of the flat CSV file the planner loads at
	// startup and rewrites at shutdown.
	DataFile string `mapstructure:"data_file"`
}

// DefaultPath returns the default config file location,
// ~/.config/mealplanner/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "mealplanner", "config.yaml")
}

// Load reads configuration from the YAML file at path. A missing file is
// fine; defaults and the MEALPLANNER_DATA_FILE environment variable still
// apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("data_file", defaultDataFile)
	v.SetEnvPrefix("mealplanner")
	v.BindEnv("data_file")

	if err := v.ReadInConfig(); err != nil {
		_, pathErr := err.(*os.PathError)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !pathErr && !notFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
