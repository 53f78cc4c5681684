package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/berrythewa/clipman-termux/internal/platform/termux"
)

// Clipboard backends
const (
	BackendTermux = "termux"
	BackendSystem = "system"
	BackendAuto   = "auto"
)

// Config holds all application configuration
type Config struct {
	DeviceID string `json:"device_id" yaml:"device_id"`

	// Backend selects the clipboard implementation: termux, system or auto
	Backend string `json:"backend" yaml:"backend"`

	Termux TermuxConfig `json:"termux" yaml:"termux"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// TermuxConfig overrides the Termux:API utilities. Empty values use the
// stock command names looked up on $PATH.
type TermuxConfig struct {
	GetCommand string `json:"get_command" yaml:"get_command"`
	SetCommand string `json:"set_command" yaml:"set_command"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		DeviceID: generateDeviceID(),
		Backend:  BackendTermux,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func newDeviceID() string {
	return uuid.NewString()
}

// Load reads the configuration at configPath, or at the default location
// when configPath is empty. A missing file yields the defaults.
// Environment variables override file values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if cfg.DeviceID == "" {
		cfg.DeviceID = generateDeviceID()
	}

	overrideFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTermux, BackendSystem, BackendAuto:
	default:
		return fmt.Errorf("invalid backend %q: must be one of termux, system, auto", c.Backend)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: must be json or console", c.Log.Format)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return nil
}

// TermuxCommands returns the spawner for the configured utilities.
func (c *Config) TermuxCommands() termux.Commands {
	cmds := termux.DefaultCommands()
	if c.Termux.GetCommand != "" {
		cmds.Get = c.Termux.GetCommand
	}
	if c.Termux.SetCommand != "" {
		cmds.Set = c.Termux.SetCommand
	}
	return cmds
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) {
	if val := os.Getenv("CLIPMAN_DEVICE_ID"); val != "" {
		config.DeviceID = val
	}
	if val := os.Getenv("CLIPMAN_BACKEND"); val != "" {
		config.Backend = val
	}
	if val := os.Getenv("CLIPMAN_TERMUX_GET"); val != "" {
		config.Termux.GetCommand = val
	}
	if val := os.Getenv("CLIPMAN_TERMUX_SET"); val != "" {
		config.Termux.SetCommand = val
	}
	if val := os.Getenv("CLIPMAN_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
}
