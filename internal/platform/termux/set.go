package termux

import (
	"errors"
	"io"
	"os/exec"

	"github.com/berrythewa/clipman-termux/internal/types"
)

// Set writes to the clipboard. Each Set value serves one call.
type Set struct {
	op
	clipboard *Clipboard
}

// Text replaces the clipboard with text. Nothing is appended.
func (s *Set) Text(text string) error {
	if err := s.consume(); err != nil {
		return err
	}

	s.clipboard.mu.Lock()
	defer s.clipboard.mu.Unlock()

	cmd := s.clipboard.spawner.TextSet()

	// StdinPipe only fails when the spawner attached its own stdin; the
	// utility then runs with that input and the text is not sent.
	stdin, err := cmd.StdinPipe()
	if err != nil {
		stdin = nil
	}

	if err := cmd.Start(); err != nil {
		return types.Unknownf(err, "failed to execute '%s': %v", SetUtility, err)
	}

	var writeErr error
	if stdin != nil {
		if _, err := io.WriteString(stdin, text); err != nil {
			writeErr = types.Unknownf(err, "failed to write to stdin of '%s': %v", SetUtility, err)
		}
		stdin.Close()
	}

	if err := cmd.Wait(); err != nil {
		if writeErr != nil {
			return writeErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return types.Unknownf(err, "'%s' exited with non-zero status", SetUtility)
		}
		return types.Unknownf(err, "failed to wait for '%s': %v", SetUtility, err)
	}

	return writeErr
}

// HTML is not available on Termux; html and alt are discarded.
func (s *Set) HTML(html, alt string) error {
	if err := s.consume(); err != nil {
		return err
	}
	return types.ErrUnsupported
}

// Image is not available on Termux.
func (s *Set) Image(png []byte) error {
	if err := s.consume(); err != nil {
		return err
	}
	return types.ErrUnsupported
}

// FileList is not available on Termux.
func (s *Set) FileList(paths []string) error {
	if err := s.consume(); err != nil {
		return err
	}
	return types.ErrUnsupported
}

// Clear empties the clipboard. Each Clear value serves one call.
type Clear struct {
	op
	clipboard *Clipboard
}

// Clear writes the empty string through Set.Text.
func (c *Clear) Clear() error {
	if err := c.consume(); err != nil {
		return err
	}
	return c.clipboard.Set().Text("")
}
