package cmd

import (
	"fmt"

	"github.com/berrythewa/clipman-termux/internal/common"
	"github.com/berrythewa/clipman-termux/internal/config"
	"go.uber.org/zap"
)

// SetupLogger builds the zap logger, letting --verbose and --quiet
// override the configured level.
func SetupLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := cfg.Log
	switch {
	case verbose:
		logCfg.Level = "debug"
	case quiet:
		logCfg.Level = "error"
	}

	logger, err := common.NewLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return logger, nil
}
