package termux

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/berrythewa/clipman-termux/internal/types"
)

// Get reads from the clipboard. Each Get value serves one call.
type Get struct {
	op
	clipboard *Clipboard
}

// Text returns the clipboard text exactly as termux-clipboard-get printed
// it, trailing newline included.
func (g *Get) Text() (string, error) {
	if err := g.consume(); err != nil {
		return "", err
	}

	g.clipboard.mu.RLock()
	defer g.clipboard.mu.RUnlock()

	var stdout, stderr bytes.Buffer
	cmd := g.clipboard.spawner.TextGet()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", types.Unknownf(err, "failed to execute '%s': %v", GetUtility, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimRight(strings.ToValidUTF8(stderr.String(), string(utf8.RuneError)), "\r\n")
			return "", types.Unknownf(err, "'%s' exited with non-zero status: %s", GetUtility, msg)
		}
		return "", types.Unknownf(err, "failed to wait for '%s': %v", GetUtility, err)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", types.ErrConversionFailure
	}
	return stdout.String(), nil
}

// HTML is not available on Termux.
func (g *Get) HTML() (string, error) {
	if err := g.consume(); err != nil {
		return "", err
	}
	return "", types.ErrUnsupported
}

// Image is not available on Termux. Images travel as encoded bytes (PNG).
func (g *Get) Image() ([]byte, error) {
	if err := g.consume(); err != nil {
		return nil, err
	}
	return nil, types.ErrUnsupported
}

// FileList is not available on Termux.
func (g *Get) FileList() ([]string, error) {
	if err := g.consume(); err != nil {
		return nil, err
	}
	return nil, types.ErrUnsupported
}
