package cmd

import (
	"github.com/berrythewa/clipman-termux/internal/clipboard"
	"github.com/berrythewa/clipman-termux/internal/config"
	"go.uber.org/zap"
)

// Shared variables across all commands
var (
	cfg       *config.Config
	zapLogger *zap.Logger

	cfgFile string
	backend string
	verbose bool
	quiet   bool

	// newClipboard is replaced in tests
	newClipboard = clipboard.New
)

// SetConfig sets the configuration for commands
func SetConfig(config *config.Config) {
	cfg = config
}

func GetConfig() *config.Config {
	return cfg
}

// SetZapLogger sets the logger for commands
func SetZapLogger(log *zap.Logger) {
	zapLogger = log
}

func GetZapLogger() *zap.Logger {
	if zapLogger == nil {
		return zap.NewNop()
	}
	return zapLogger
}
