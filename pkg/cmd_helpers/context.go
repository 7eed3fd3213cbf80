package cmd_helpers

import (
	"context"

	"github.com/ubports/installer-reporter/pkg/config"
	"github.com/ubports/installer-reporter/pkg/uir_err"
)

type configKey struct{}

// WithConfig stores the loaded configuration for the commands below root.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the configuration loaded by the root command.
func ConfigFrom(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, uir_err.NewValidationError("configuration not loaded", nil,
			"run the command through the uir root command")
	}
	return cfg, nil
}
