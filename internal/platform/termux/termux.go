// Package termux implements clipboard access on Termux for Android by
// driving the termux-clipboard-get and termux-clipboard-set utilities
// shipped with the Termux:API app.
//
// Only plain text is supported. HTML, image and file-list requests fail
// with types.ErrUnsupported without starting a process.
package termux

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"sync"

	"github.com/berrythewa/clipman-termux/internal/types"
)

// Names of the Termux:API utilities, used in error messages.
const (
	GetUtility = "termux-clipboard-get"
	SetUtility = "termux-clipboard-set"
)

// Spawner builds the commands for the two clipboard utilities. Each call
// must return a fresh, unstarted *exec.Cmd.
type Spawner interface {
	TextGet() *exec.Cmd
	TextSet() *exec.Cmd
}

// Commands is the Spawner used outside of tests. Empty fields fall back
// to the utility names, which are resolved on $PATH.
type Commands struct {
	Get string
	Set string
}

// DefaultCommands returns the stock Termux:API utilities.
func DefaultCommands() Commands {
	return Commands{Get: GetUtility, Set: SetUtility}
}

func (c Commands) TextGet() *exec.Cmd {
	if c.Get == "" {
		return exec.Command(GetUtility)
	}
	return exec.Command(c.Get)
}

func (c Commands) TextSet() *exec.Cmd {
	if c.Set == "" {
		return exec.Command(SetUtility)
	}
	return exec.Command(c.Set)
}

// Clipboard is a validated Termux clipboard session. Both utilities were
// startable when it was created; that is not re-checked per operation.
//
// Reads share the session; writes and clears hold it exclusively.
type Clipboard struct {
	spawner Spawner
	mu      sync.RWMutex
}

// New probes both utilities and returns a session. A nil spawner means
// DefaultCommands.
func New(spawner Spawner) (*Clipboard, error) {
	if spawner == nil {
		spawner = DefaultCommands()
	}

	if err := probe(spawner.TextGet(), GetUtility); err != nil {
		return nil, err
	}
	if err := probe(spawner.TextSet(), SetUtility); err != nil {
		return nil, err
	}

	return &Clipboard{spawner: spawner}, nil
}

// probe starts cmd to prove it can be executed, then kills it. Stdin is
// an open pipe so a utility that reads it blocks instead of seeing EOF and
// touching the clipboard before the kill lands.
func probe(cmd *exec.Cmd, name string) error {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		stdin = nil
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return types.Unavailablef(err, "'%s' command not found. Please install Termux:API.", name)
		}
		return types.Unknownf(err, "error while testing for '%s': %v", name, err)
	}

	// The kill is what stops the utility; stdin stays open until it is
	// dead and reaped.
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return types.Unknownf(err, "failed to kill test process for '%s': %v", name, err)
	}
	_ = cmd.Wait()
	if stdin != nil {
		stdin.Close()
	}

	return nil
}

// Get starts a read operation.
func (c *Clipboard) Get() *Get {
	return &Get{clipboard: c}
}

// Set starts a write operation.
func (c *Clipboard) Set() *Set {
	return &Set{clipboard: c}
}

// Clear starts a clear operation.
func (c *Clipboard) Clear() *Clear {
	return &Clear{clipboard: c}
}

// op guards the single terminal call allowed on an operation value.
type op struct {
	used bool
}

func (o *op) consume() error {
	if o.used {
		return types.Unknownf(nil, "clipboard operation already used")
	}
	o.used = true
	return nil
}
