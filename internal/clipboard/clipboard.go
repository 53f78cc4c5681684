package clipboard

import (
	"errors"

	"go.uber.org/zap"

	"github.com/berrythewa/clipman-termux/internal/config"
	"github.com/berrythewa/clipman-termux/internal/types"
)

// Clipboard is implemented by every clipboard backend.
type Clipboard interface {
	// Read returns the clipboard content as the requested type
	Read(types.ContentType) (*types.ClipboardContent, error)

	// Write replaces the clipboard content
	Write(*types.ClipboardContent) error

	// Clear empties the clipboard
	Clear() error

	// Name identifies the backend
	Name() string
}

// New returns the backend selected by cfg.Backend. In auto mode Termux is
// preferred and the system clipboard is used only when the Termux:API
// utilities are missing.
func New(cfg *config.Config, logger *zap.Logger) (Clipboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case config.BackendSystem:
		return NewAtottoClipboard(cfg.DeviceID, logger)

	case config.BackendAuto:
		cb, err := NewTermuxClipboard(cfg.TermuxCommands(), cfg.DeviceID, logger)
		if err == nil {
			return cb, nil
		}
		if !errors.Is(err, types.ErrBackendUnavailable) {
			return nil, err
		}
		logger.Info("Termux clipboard unavailable, falling back to system clipboard", zap.Error(err))
		return NewAtottoClipboard(cfg.DeviceID, logger)

	default:
		return NewTermuxClipboard(cfg.TermuxCommands(), cfg.DeviceID, logger)
	}
}
