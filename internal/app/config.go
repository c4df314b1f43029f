package app

import (
	"context"

	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/logger"
)

// ExecuteConfigInitCommand writes the default configuration file.
func ExecuteConfigInitCommand(ctx context.Context, path string, force bool) error {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if err := config.WriteDefaultConfig(path, force); err != nil {
		return err
	}

	logger.Infof(ctx, "Configuration written to %s", path)

	return nil
}

// ExecuteConfigSetCommand sets one key of the configuration file and checks that the result is still valid.
func ExecuteConfigSetCommand(ctx context.Context, path, key, value string) error {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}

	if err = config.ValidateConfig(cfg); err != nil {
		logger.Warnf(ctx, "Configuration saved but is not valid: %v", err)

		return err
	}

	logger.Infof(ctx, "Set %s in %s", key, path)

	return nil
}
