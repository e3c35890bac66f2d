package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"clitemplate/pkg/logging"
)

const (
	userConfigDir  = ".config/cli-template"
	configFileName = "config.yaml"

	// ConfigPathEnv overrides the default configuration directory.
	ConfigPathEnv = "CLI_TEMPLATE_CONFIG_PATH"
)

// GetDefaultConfigPathOrPanic returns the configuration directory: the value
// of CLI_TEMPLATE_CONFIG_PATH when set, ~/.config/cli-template otherwise.
func GetDefaultConfigPathOrPanic() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads config.yaml from configPath. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", configFilePath, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}

	if err := Validate(config); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", configFilePath, err)
	}

	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
