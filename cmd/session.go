package cmd

import (
	"context"
	"fmt"
	"io"

	"pragyan-remote/internal/app"
	"pragyan-remote/internal/pkg/config"
	"pragyan-remote/internal/pkg/logging"
	"pragyan-remote/internal/types"
)

// loadConfig loads and validates the configuration named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return cfg, nil
}

// startSession loads configuration, initializes logging and builds a session.
// A non-nil quiet writer replaces stdout as the log destination unless a log file is configured.
func startSession(ctx context.Context, quiet io.Writer) (*app.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logging.InitLogger(cfg.Logging)
	if quiet != nil && cfg.Logging.File == "" {
		logging.SetOutput(quiet)
	}
	logging.GetLogger().WithField("config_file", configFlag).Debug("Configuration loaded")

	session, err := app.NewSession(ctx, app.Options{Config: cfg})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// applyManualFlag switches the session to a --manual address. Only dotted-quad IPv4 is accepted.
func applyManualFlag(session *app.Session, address string) error {
	if address == "" {
		return nil
	}
	parsed, err := types.ParseNetworkAddress(address)
	if err != nil {
		return fmt.Errorf("invalid --manual address: %w", err)
	}
	session.Resolver().SetMode(true, parsed.String())
	return nil
}
