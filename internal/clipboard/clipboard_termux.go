package clipboard

import (
	"bytes"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/berrythewa/clipman-termux/internal/config"
	"github.com/berrythewa/clipman-termux/internal/platform/termux"
	"github.com/berrythewa/clipman-termux/internal/types"
)

// TermuxClipboard adapts a termux session to the Clipboard interface.
// File lists are carried as newline separated paths.
type TermuxClipboard struct {
	session  *termux.Clipboard
	deviceID string
	logger   *zap.Logger
}

// NewTermuxClipboard probes the Termux:API utilities through spawner.
func NewTermuxClipboard(spawner termux.Spawner, deviceID string, logger *zap.Logger) (*TermuxClipboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	session, err := termux.New(spawner)
	if err != nil {
		return nil, err
	}
	logger.Debug("Termux clipboard backend ready")

	return &TermuxClipboard{
		session:  session,
		deviceID: deviceID,
		logger:   logger,
	}, nil
}

func (c *TermuxClipboard) Name() string {
	return config.BackendTermux
}

func (c *TermuxClipboard) Read(contentType types.ContentType) (*types.ClipboardContent, error) {
	get := c.session.Get()

	var (
		data []byte
		err  error
	)
	switch {
	case contentType.IsText():
		var text string
		text, err = get.Text()
		data = []byte(text)
		contentType = types.TypeText
	case contentType == types.TypeHTML:
		var html string
		html, err = get.HTML()
		data = []byte(html)
	case contentType == types.TypeImage:
		data, err = get.Image()
	case contentType == types.TypeFile:
		var files []string
		files, err = get.FileList()
		data = []byte(strings.Join(files, "\n"))
	default:
		err = types.ErrUnsupported
	}
	if err != nil {
		c.logger.Debug("Clipboard read failed",
			zap.String("type", string(contentType)),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Clipboard read",
		zap.String("type", string(contentType)),
		zap.Int("size", len(data)))

	return &types.ClipboardContent{
		Type:     contentType,
		Data:     data,
		Created:  time.Now(),
		DeviceID: c.deviceID,
	}, nil
}

func (c *TermuxClipboard) Write(content *types.ClipboardContent) error {
	if content == nil {
		return types.Unknownf(nil, "no clipboard content to write")
	}
	set := c.session.Set()

	var err error
	switch {
	case content.Type.IsText():
		err = set.Text(string(content.Data))
	case content.Type == types.TypeHTML:
		err = set.HTML(string(content.Data), "")
	case content.Type == types.TypeImage:
		err = set.Image(content.Data)
	case content.Type == types.TypeFile:
		err = set.FileList(splitPaths(content.Data))
	default:
		err = types.ErrUnsupported
	}
	if err != nil {
		c.logger.Debug("Clipboard write failed",
			zap.String("type", string(content.Type)),
			zap.Error(err))
		return err
	}

	c.logger.Debug("Clipboard written",
		zap.String("type", string(content.Type)),
		zap.Int("size", len(content.Data)))
	return nil
}

func (c *TermuxClipboard) Clear() error {
	if err := c.session.Clear().Clear(); err != nil {
		c.logger.Debug("Clipboard clear failed", zap.Error(err))
		return err
	}
	c.logger.Debug("Clipboard cleared")
	return nil
}

func splitPaths(data []byte) []string {
	var paths []string
	for _, line := range bytes.Split(data, []byte("\n")) {
		if p := strings.TrimSpace(string(line)); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
