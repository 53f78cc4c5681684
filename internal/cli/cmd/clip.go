package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/clipman-termux/internal/clipboard"
	"github.com/berrythewa/clipman-termux/internal/types"
	"github.com/berrythewa/clipman-termux/pkg/format"
)

// newClipCmd creates the clip command
func newClipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Clipboard operations",
		Long: `Perform clipboard operations:
  • Get current clipboard content
  • Set clipboard content
  • Clear the clipboard
  • Summarize the clipboard content`,
	}

	cmd.AddCommand(newClipGetCmd())
	cmd.AddCommand(newClipSetCmd())
	cmd.AddCommand(newClipClearCmd())
	cmd.AddCommand(newClipInfoCmd())

	return cmd
}

// clipOutput is the --json form of clip get.
type clipOutput struct {
	Type     types.ContentType `json:"type"`
	Text     string            `json:"text"`
	Size     int               `json:"size"`
	Created  time.Time         `json:"created"`
	DeviceID string            `json:"device_id,omitempty"`
	Backend  string            `json:"backend"`
}

func newClipGetCmd() *cobra.Command {
	var (
		contentType string
		trim        bool
		useJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print current clipboard content",
		Long: `Print the clipboard text exactly as the backend returns it.
termux-clipboard-get may end its output with a newline; use --trim to
strip surrounding whitespace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, ok := types.ParseContentType(contentType)
			if !ok {
				return fmt.Errorf("unknown content type %q", contentType)
			}

			cb, err := newClipboard(cfg, GetZapLogger())
			if err != nil {
				return err
			}

			content, err := cb.Read(ct)
			if err != nil {
				return fmt.Errorf("failed to get clipboard content: %w", err)
			}

			text := content.Text()
			if trim {
				text = strings.TrimSpace(text)
			}

			out := cmd.OutOrStdout()
			if useJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(clipOutput{
					Type:     content.Type,
					Text:     text,
					Size:     len(text),
					Created:  content.Created,
					DeviceID: content.DeviceID,
					Backend:  cb.Name(),
				})
			}

			if _, err := io.WriteString(out, text); err != nil {
				return err
			}
			if text != "" && !strings.HasSuffix(text, "\n") && isTerminal(out) {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", string(types.TypeText), "content type (text, html, image, file)")
	cmd.Flags().BoolVar(&trim, "trim", false, "strip leading and trailing whitespace")
	cmd.Flags().BoolVar(&useJSON, "json", false, "output in JSON format")
	return cmd
}

func newClipSetCmd() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "set [content]",
		Short: "Set clipboard content",
		Long: `Set the clipboard to the given arguments joined by spaces, or to
standard input when no arguments are given. The text is stored as is;
no newline is added.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, ok := types.ParseContentType(contentType)
			if !ok {
				return fmt.Errorf("unknown content type %q", contentType)
			}

			var data []byte
			if len(args) > 0 {
				data = []byte(strings.Join(args, " "))
			} else {
				var err error
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
			}

			cb, err := newClipboard(cfg, GetZapLogger())
			if err != nil {
				return err
			}

			content := &types.ClipboardContent{
				Type:     ct,
				Data:     data,
				Created:  time.Now(),
				DeviceID: cfg.DeviceID,
			}
			if err := cb.Write(content); err != nil {
				return fmt.Errorf("failed to set clipboard content: %w", err)
			}

			GetZapLogger().Info("Clipboard content set",
				zap.String("backend", cb.Name()),
				zap.String("type", string(ct)),
				zap.Int("size", len(data)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentType, "type", "t", string(types.TypeText), "content type (text, html, image, file)")
	return cmd
}

func newClipClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := newClipboard(cfg, GetZapLogger())
			if err != nil {
				return err
			}
			if err := cb.Clear(); err != nil {
				return fmt.Errorf("failed to clear clipboard: %w", err)
			}
			GetZapLogger().Info("Clipboard cleared", zap.String("backend", cb.Name()))
			return nil
		},
	}
}

func newClipInfoCmd() *cobra.Command {
	var (
		compact bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize current clipboard content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, err := newClipboard(cfg, GetZapLogger())
			if err != nil {
				return err
			}

			content, err := cb.Read(types.TypeText)
			if err != nil {
				return fmt.Errorf("failed to get clipboard content: %w", err)
			}

			content.Type = clipboard.DetectTextType(content.Data)

			out := cmd.OutOrStdout()
			opts := format.DefaultOptions()
			if noColor || !isTerminal(out) {
				opts = format.PlainOptions()
			}
			opts.Compact = compact

			fmt.Fprintln(out, format.FormatContent(content, cb.Name(), opts))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "single line summary")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors and icons")
	return cmd
}
