package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/clipman-termux/internal/config"
	"github.com/berrythewa/clipman-termux/internal/types"
)

// Exit codes from sysexits.h
const (
	exitFailure     = 1
	exitUsage       = 64
	exitUnavailable = 69
)

// NewRootCmd creates the clipman command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clipman",
		Short: "Clipboard access for Termux on Android",
		Long: `Clipman reads and writes the Android clipboard from a Termux shell
through the termux-clipboard-get and termux-clipboard-set utilities of
the Termux:API app. Outside Termux it can fall back to the system
clipboard (xclip, xsel, wl-clipboard, pbcopy).

Only plain text is supported on Termux.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if zapLogger != nil {
				_ = zapLogger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/clipman/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "clipboard backend: termux, system or auto")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")

	rootCmd.AddCommand(GetCommands()...)
	return rootCmd
}

func setup() error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if backend != "" {
		loaded.Backend = backend
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	SetConfig(loaded)

	logger, err := SetupLogger(loaded)
	if err != nil {
		return err
	}
	SetZapLogger(logger)

	logger.Debug("Configuration loaded",
		zap.String("backend", loaded.Backend),
		zap.String("device_id", loaded.DeviceID),
		zap.Bool("termux", config.IsTermux()))
	return nil
}

// Execute runs the root command and exits with a status derived from the
// clipboard error kind.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	kind, ok := types.KindOf(err)
	if !ok {
		return exitFailure
	}
	switch kind {
	case types.KindBackendUnavailable:
		return exitUnavailable
	case types.KindBackendUnsupported:
		return exitUsage
	default:
		return exitFailure
	}
}
