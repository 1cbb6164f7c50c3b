package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugsmith-labs/plugsmith/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyOutputDir is the config key for the default documentation output directory.
	KeyOutputDir = "output_dir"

	// KeyModels is the config key for the agent model allow-list.
	KeyModels = "models"
)

// DefaultModels is the built-in allow-list for agent model labels.
var DefaultModels = []string{"haiku", "sonnet", "opus", "inherit"}

// Dir returns the path to the PlugSmith config directory (~/.plugsmith/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.plugsmith/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// OutputDir returns the configured documentation output directory, or
// fallback if unset. A CLI flag should always win over this value.
func OutputDir(fallback string) string {
	if v := viper.GetString(KeyOutputDir); v != "" {
		return v
	}
	return fallback
}

// Models returns the agent model allow-list, falling back to DefaultModels
// when the config file does not override it.
func Models() []string {
	if v := viper.GetStringSlice(KeyModels); len(v) > 0 {
		return v
	}
	return DefaultModels
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
