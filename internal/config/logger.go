package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a production zap logger at the configured level.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		zapCfg.Level = level
	}

	return zapCfg.Build()
}
