package common

import (
	"github.com/berrythewa/clipman-termux/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new logger instance. Output goes to stderr unless a
// log file is configured; stdout is reserved for clipboard content.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	encoding := cfg.Format
	if encoding != "json" {
		encoding = "console"
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zcfg.Build()
}
