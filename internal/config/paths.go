package config

import (
	"os"
	"path/filepath"
)

// Swapped out in tests.
var (
	getConfigPath    = defaultConfigPath
	generateDeviceID = newDeviceID
)

// defaultConfigPath returns $CLIPMAN_CONFIG_DIR/config.yaml, falling back
// to the user config directory. On Termux that is
// $HOME/.config/clipman/config.yaml unless XDG_CONFIG_HOME is set.
func defaultConfigPath() (string, error) {
	if dir := os.Getenv("CLIPMAN_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.yaml"), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "clipman", "config.yaml"), nil
}

// DefaultPath returns the location Load uses when given an empty path.
func DefaultPath() (string, error) {
	return getConfigPath()
}

// IsTermux reports whether the process runs inside the Termux app.
func IsTermux() bool {
	if os.Getenv("TERMUX_VERSION") != "" {
		return true
	}
	prefix := os.Getenv("PREFIX")
	return prefix != "" && filepath.Base(filepath.Dir(filepath.Dir(prefix))) == "com.termux"
}
