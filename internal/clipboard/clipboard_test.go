package clipboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	atottoClip "github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/berrythewa/clipman-termux/internal/config"
	"github.com/berrythewa/clipman-termux/internal/platform/termux"
	"github.com/berrythewa/clipman-termux/internal/types"
)

// fakeTermux writes executable stand-ins for the Termux:API utilities
// that keep the clipboard in a file.
func fakeTermux(t *testing.T) termux.Commands {
	t.Helper()
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	require.NoError(t, os.WriteFile(store, nil, 0o600))

	get := filepath.Join(dir, "termux-clipboard-get")
	set := filepath.Join(dir, "termux-clipboard-set")
	require.NoError(t, os.WriteFile(get, []byte("#!/bin/sh\nexec cat '"+store+"'\n"), 0o755))
	require.NoError(t, os.WriteFile(set, []byte("#!/bin/sh\ndata=$(cat; echo .)\nprintf '%s' \"${data%.}\" > '"+store+"'\n"), 0o755))

	return termux.Commands{Get: get, Set: set}
}

func testLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestTermuxClipboardReadWrite(t *testing.T) {
	logger, logs := testLogger()
	cb, err := NewTermuxClipboard(fakeTermux(t), "phone-1", logger)
	require.NoError(t, err)
	assert.Equal(t, "termux", cb.Name())

	err = cb.Write(&types.ClipboardContent{Type: types.TypeText, Data: []byte("copied on android")})
	require.NoError(t, err)

	content, err := cb.Read(types.TypeText)
	require.NoError(t, err)
	assert.Equal(t, types.TypeText, content.Type)
	assert.Equal(t, "copied on android", content.Text())
	assert.Equal(t, "phone-1", content.DeviceID)
	assert.False(t, content.Created.IsZero())

	written := logs.FilterMessage("Clipboard written").All()
	require.Len(t, written, 1)
	assert.Equal(t, int64(len("copied on android")), written[0].ContextMap()["size"])
}

func TestTermuxClipboardTextLikeTypes(t *testing.T) {
	cb, err := NewTermuxClipboard(fakeTermux(t), "", nil)
	require.NoError(t, err)

	require.NoError(t, cb.Write(&types.ClipboardContent{Type: types.TypeURL, Data: []byte("https://termux.dev")}))

	content, err := cb.Read(types.TypeURL)
	require.NoError(t, err)
	assert.Equal(t, types.TypeText, content.Type)
	assert.Equal(t, "https://termux.dev", content.Text())
}

func TestTermuxClipboardClear(t *testing.T) {
	cb, err := NewTermuxClipboard(fakeTermux(t), "", nil)
	require.NoError(t, err)

	require.NoError(t, cb.Write(&types.ClipboardContent{Type: types.TypeText, Data: []byte("secret")}))
	require.NoError(t, cb.Clear())

	content, err := cb.Read(types.TypeText)
	require.NoError(t, err)
	assert.Empty(t, content.Data)
}

func TestTermuxClipboardUnsupported(t *testing.T) {
	logger, logs := testLogger()
	cb, err := NewTermuxClipboard(fakeTermux(t), "", logger)
	require.NoError(t, err)

	for _, ct := range []types.ContentType{types.TypeHTML, types.TypeImage, types.TypeFile, "rtf"} {
		t.Run(string(ct), func(t *testing.T) {
			_, err := cb.Read(ct)
			assert.ErrorIs(t, err, types.ErrUnsupported)

			err = cb.Write(&types.ClipboardContent{Type: ct, Data: []byte("x")})
			assert.ErrorIs(t, err, types.ErrUnsupported)
		})
	}

	assert.Equal(t, 8, logs.FilterMessageSnippet("failed").Len())
}

func TestNewTermuxBackendUnavailable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Termux.GetCommand = filepath.Join(t.TempDir(), "missing-get")

	cb, err := New(cfg, nil)
	assert.Nil(t, cb)
	assert.True(t, errors.Is(err, types.ErrBackendUnavailable), "got %v", err)
}

func TestNewSelectsTermux(t *testing.T) {
	cmds := fakeTermux(t)
	cfg := config.DefaultConfig()
	cfg.Termux.GetCommand = cmds.Get
	cfg.Termux.SetCommand = cmds.Set

	for _, backend := range []string{config.BackendTermux, config.BackendAuto} {
		cfg.Backend = backend
		cb, err := New(cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, "termux", cb.Name())
	}
}

func TestNewAutoFallsBackToSystem(t *testing.T) {
	logger, logs := testLogger()
	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendAuto
	cfg.Termux.GetCommand = filepath.Join(t.TempDir(), "missing-get")

	cb, err := New(cfg, logger)
	if atottoClip.Unsupported {
		assert.ErrorIs(t, err, types.ErrBackendUnavailable)
	} else {
		require.NoError(t, err)
		assert.Equal(t, "system", cb.Name())
	}
	assert.Equal(t, 1, logs.FilterMessage("Termux clipboard unavailable, falling back to system clipboard").Len())
}

func TestAtottoClipboardRejectsNonText(t *testing.T) {
	cb := &AtottoClipboard{logger: zap.NewNop()}

	_, err := cb.Read(types.TypeImage)
	assert.ErrorIs(t, err, types.ErrUnsupported)

	err = cb.Write(&types.ClipboardContent{Type: types.TypeHTML, Data: []byte("<p>hi</p>")})
	assert.ErrorIs(t, err, types.ErrUnsupported)
}

func TestSplitPaths(t *testing.T) {
	got := splitPaths([]byte("/sdcard/a.txt\n\n  /sdcard/b.png \n"))
	assert.Equal(t, []string{"/sdcard/a.txt", "/sdcard/b.png"}, got)
	assert.Nil(t, splitPaths(nil))
}

func TestDetectTextType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.ContentType
	}{
		{"empty", "", types.TypeText},
		{"plain", "hello world", types.TypeText},
		{"https url", "https://wiki.termux.com/wiki/Termux:API\n", types.TypeURL},
		{"http url", "http://example.com", types.TypeURL},
		{"url in sentence", "see https://example.com", types.TypeText},
		{"file path", "/data/data/com.termux/files/home", types.TypeText},
		{"other scheme", "ftp://example.com", types.TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTextType([]byte(tt.in)))
		})
	}
}

func TestWriteNilContent(t *testing.T) {
	termuxCB, err := NewTermuxClipboard(fakeTermux(t), "", nil)
	require.NoError(t, err)

	for _, cb := range []Clipboard{termuxCB, &AtottoClipboard{logger: zap.NewNop()}} {
		t.Run(cb.Name(), func(t *testing.T) {
			err := cb.Write(nil)
			require.Error(t, err)
			kind, ok := types.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, types.KindUnknown, kind)
			assert.Contains(t, err.Error(), "no clipboard content")
		})
	}
}
