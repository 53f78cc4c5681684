package clipboard

import (
	"time"

	atottoClip "github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/berrythewa/clipman-termux/internal/config"
	"github.com/berrythewa/clipman-termux/internal/types"
)

// AtottoClipboard is the system clipboard outside Termux, using the
// atotto/clipboard library. It only supports text content.
type AtottoClipboard struct {
	deviceID string
	logger   *zap.Logger
}

// NewAtottoClipboard fails with types.ErrBackendUnavailable when atotto
// found no clipboard utility at init time.
func NewAtottoClipboard(deviceID string, logger *zap.Logger) (*AtottoClipboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if atottoClip.Unsupported {
		return nil, types.Unavailablef(nil, "no system clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return &AtottoClipboard{deviceID: deviceID, logger: logger}, nil
}

func (c *AtottoClipboard) Name() string {
	return config.BackendSystem
}

func (c *AtottoClipboard) Read(contentType types.ContentType) (*types.ClipboardContent, error) {
	if !contentType.IsText() {
		return nil, types.ErrUnsupported
	}

	text, err := atottoClip.ReadAll()
	if err != nil {
		return nil, types.Unknownf(err, "failed to read clipboard: %v", err)
	}
	c.logger.Debug("Clipboard read", zap.Int("size", len(text)))

	return &types.ClipboardContent{
		Type:     types.TypeText,
		Data:     []byte(text),
		Created:  time.Now(),
		DeviceID: c.deviceID,
	}, nil
}

func (c *AtottoClipboard) Write(content *types.ClipboardContent) error {
	if content == nil {
		return types.Unknownf(nil, "no clipboard content to write")
	}
	if !content.Type.IsText() {
		return types.ErrUnsupported
	}
	if err := atottoClip.WriteAll(string(content.Data)); err != nil {
		return types.Unknownf(err, "failed to write clipboard: %v", err)
	}
	c.logger.Debug("Clipboard written", zap.Int("size", len(content.Data)))
	return nil
}

func (c *AtottoClipboard) Clear() error {
	return c.Write(&types.ClipboardContent{Type: types.TypeText})
}
