package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/berrythewa/clipman-termux/internal/clipboard"
	"github.com/berrythewa/clipman-termux/internal/config"
	"github.com/berrythewa/clipman-termux/internal/types"
)

// memClipboard is a text-only clipboard held in memory.
type memClipboard struct {
	data   []byte
	writes int
}

func (m *memClipboard) Name() string { return "memory" }

func (m *memClipboard) Read(ct types.ContentType) (*types.ClipboardContent, error) {
	if !ct.IsText() {
		return nil, types.ErrUnsupported
	}
	return &types.ClipboardContent{Type: types.TypeText, Data: m.data, DeviceID: "mem"}, nil
}

func (m *memClipboard) Write(c *types.ClipboardContent) error {
	if !c.Type.IsText() {
		return types.ErrUnsupported
	}
	m.writes++
	m.data = append([]byte(nil), c.Data...)
	return nil
}

func (m *memClipboard) Clear() error {
	m.data = nil
	return nil
}

// isolate points configuration at a temp dir and clears CLIPMAN_ overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CLIPMAN_CONFIG_DIR", dir)
	for _, key := range []string{"CLIPMAN_DEVICE_ID", "CLIPMAN_BACKEND", "CLIPMAN_TERMUX_GET", "CLIPMAN_TERMUX_SET", "CLIPMAN_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return dir
}

func useClipboard(t *testing.T, factory func(*config.Config, *zap.Logger) (clipboard.Clipboard, error)) {
	t.Helper()
	orig := newClipboard
	newClipboard = factory
	t.Cleanup(func() { newClipboard = orig })
}

func useMemClipboard(t *testing.T) *memClipboard {
	t.Helper()
	mem := &memClipboard{}
	useClipboard(t, func(*config.Config, *zap.Logger) (clipboard.Clipboard, error) {
		return mem, nil
	})
	return mem
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--quiet"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestClipSetFromArgs(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)

	_, err := executeCommand(t, "", "clip", "set", "hello", "to", "mock", "clipboard")
	require.NoError(t, err)
	assert.Equal(t, "hello to mock clipboard", string(mem.data))
}

func TestClipSetFromStdin(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)

	_, err := executeCommand(t, "piped text\n", "clip", "set")
	require.NoError(t, err)
	assert.Equal(t, "piped text\n", string(mem.data))
}

func TestClipGet(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)
	mem.data = []byte("hello from mock clipboard\n")

	out, err := executeCommand(t, "", "clip", "get")
	require.NoError(t, err)
	assert.Equal(t, "hello from mock clipboard\n", out)

	out, err = executeCommand(t, "", "clip", "get", "--trim")
	require.NoError(t, err)
	assert.Equal(t, "hello from mock clipboard", out)
}

func TestClipGetJSON(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)
	mem.data = []byte("json me")

	out, err := executeCommand(t, "", "clip", "get", "--json")
	require.NoError(t, err)

	var got clipOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "json me", got.Text)
	assert.Equal(t, 7, got.Size)
	assert.Equal(t, "memory", got.Backend)
	assert.Equal(t, types.TypeText, got.Type)
}

func TestClipClear(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)
	mem.data = []byte("some text")

	_, err := executeCommand(t, "", "clip", "clear")
	require.NoError(t, err)
	assert.Empty(t, mem.data)

	out, err := executeCommand(t, "", "clip", "get")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClipUnsupportedType(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)

	_, err := executeCommand(t, "", "clip", "get", "--type", "html")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupported)
	assert.Equal(t, exitUsage, exitCode(err))

	_, err = executeCommand(t, "", "clip", "set", "--type", "image", "data")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupported)
	assert.Equal(t, 0, mem.writes)

	_, err = executeCommand(t, "", "clip", "get", "--type", "rtf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content type")
	assert.Equal(t, exitFailure, exitCode(err))
}

func TestCheck(t *testing.T) {
	isolate(t)
	useMemClipboard(t)

	out, err := executeCommand(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, `"memory" is available`)
}

func TestCheckUnavailable(t *testing.T) {
	isolate(t)
	useClipboard(t, func(*config.Config, *zap.Logger) (clipboard.Clipboard, error) {
		return nil, types.Unavailablef(nil, "'termux-clipboard-get' command not found. Please install Termux:API.")
	})

	_, err := executeCommand(t, "", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Termux:API")
	assert.Equal(t, exitUnavailable, exitCode(err))
}

// useTermuxScripts installs file-backed stand-ins for the Termux:API
// utilities in dir and returns the store path.
func useTermuxScripts(t *testing.T, dir string) string {
	t.Helper()
	store := filepath.Join(dir, "store")
	get := filepath.Join(dir, "termux-clipboard-get")
	set := filepath.Join(dir, "termux-clipboard-set")
	require.NoError(t, os.WriteFile(store, nil, 0o600))
	require.NoError(t, os.WriteFile(get, []byte("#!/bin/sh\nexec cat '"+store+"'\n"), 0o755))
	require.NoError(t, os.WriteFile(set, []byte("#!/bin/sh\ndata=$(cat; echo .)\nprintf '%s' \"${data%.}\" > '"+store+"'\n"), 0o755))
	t.Setenv("CLIPMAN_TERMUX_GET", get)
	t.Setenv("CLIPMAN_TERMUX_SET", set)
	return store
}

func TestClipThroughTermuxUtilities(t *testing.T) {
	store := useTermuxScripts(t, isolate(t))

	_, err := executeCommand(t, "", "clip", "set", "round", "trip")
	require.NoError(t, err)

	data, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, "round trip", string(data))

	out, err := executeCommand(t, "", "clip", "get")
	require.NoError(t, err)
	assert.Equal(t, "round trip", out)

	_, err = executeCommand(t, "", "clip", "clear")
	require.NoError(t, err)

	out, err = executeCommand(t, "", "clip", "get")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckLeavesClipboardUntouched(t *testing.T) {
	store := useTermuxScripts(t, isolate(t))
	require.NoError(t, os.WriteFile(store, []byte("keep me"), 0o600))

	for i := 0; i < 10; i++ {
		_, err := executeCommand(t, "", "check")
		require.NoError(t, err)

		data, err := os.ReadFile(store)
		require.NoError(t, err)
		require.Equal(t, "keep me", string(data), "after check #%d", i+1)
	}

	out, err := executeCommand(t, "", "clip", "get")
	require.NoError(t, err)
	assert.Equal(t, "keep me", out)
}

func TestClipMissingTermuxUtilities(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CLIPMAN_TERMUX_GET", filepath.Join(dir, "termux-clipboard-get"))

	_, err := executeCommand(t, "", "clip", "get")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnavailable)
	assert.Equal(t, exitUnavailable, exitCode(err))
}

func TestClipInfo(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)
	mem.data = []byte("line one\nline two\n")

	out, err := executeCommand(t, "", "clip", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Size: 18 B")
	assert.Contains(t, out, "Lines: 2")
	assert.Contains(t, out, "Backend: memory")
	assert.Contains(t, out, "  line one\n  line two\n")
	assert.NotContains(t, out, "\033[")

	out, err = executeCommand(t, "", "clip", "info", "--compact")
	require.NoError(t, err)
	assert.Equal(t, "text line one line two\n", out)
}

func TestClipInfoDetectsURL(t *testing.T) {
	isolate(t)
	mem := useMemClipboard(t)
	mem.data = []byte("https://termux.dev\n")

	out, err := executeCommand(t, "", "clip", "info", "--compact")
	require.NoError(t, err)
	assert.Equal(t, "url https://termux.dev\n", out)
}
