package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the clipboard backend is usable",
		Long: `Probe the configured clipboard backend. On Termux this starts
termux-clipboard-get and termux-clipboard-set once each, without
touching the clipboard, and reports whether Termux:API is installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := newClipboard(cfg, GetZapLogger())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Clipboard backend %q is available\n", cb.Name())
			return nil
		},
	}
}
