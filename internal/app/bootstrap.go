package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"clitemplate/internal/cli"
	"clitemplate/internal/config"
	"clitemplate/pkg/logging"
)

// Application wires configuration, logging and services for one command
// invocation.
//
// Example usage:
//
//	cfg := app.NewConfig(false, false, false, configPath, version)
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return err
//	}
//	defer application.Close()
//	return application.RunInteractive(ctx)
type Application struct {
	config   *Config
	services *Services
}

// NewApplication performs the bootstrap sequence:
//
//  1. Configures logging based on the debug flag
//  2. Loads config.yaml from cfg.ConfigPath unless cfg.Settings is set
//  3. Applies the color setting
//  4. Initializes the services
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	var logOutput io.Writer = os.Stderr
	if cfg.ErrOut != nil {
		logOutput = cfg.ErrOut
	}
	logging.Init(appLogLevel, logOutput)

	if cfg.Settings == nil {
		settings, err := config.LoadConfig(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		cfg.Settings = &settings
	}

	colors := cfg.Settings.Output.Color && !cfg.NoColor
	cli.SetColorEnabled(colors)
	logging.Debug("Bootstrap", "Colors enabled: %t", colors)

	return &Application{
		config:   cfg,
		services: InitializeServices(cfg),
	}, nil
}

// Settings returns the loaded configuration file settings.
func (a *Application) Settings() config.Config {
	return *a.config.Settings
}

// Sink returns the user-facing output sink.
func (a *Application) Sink() cli.Sink {
	return a.services.Sink
}

// Version returns the resolved build version.
func (a *Application) Version() (string, error) {
	if a.config.Version == "" {
		return "", errors.New("version is not available")
	}
	return a.config.Version, nil
}

// Close releases resources held by the services.
func (a *Application) Close() error {
	return a.services.Close()
}
