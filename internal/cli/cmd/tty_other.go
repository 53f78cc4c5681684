//go:build !linux
// +build !linux

package cmd

import "io"

func isTerminal(w io.Writer) bool {
	return false
}
