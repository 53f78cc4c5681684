// Package format renders clipboard content for terminal display.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/berrythewa/clipman-termux/internal/types"
)

// Options controls formatting behavior
type Options struct {
	UseColors bool
	UseIcons  bool
	MaxWidth  int // max preview width in runes, 0 = no limit
	MaxLines  int // max preview lines, 0 = no limit
	Compact   bool
}

// DefaultOptions returns options suited to an interactive terminal.
func DefaultOptions() Options {
	return Options{
		UseColors: true,
		UseIcons:  true,
		MaxWidth:  80,
		MaxLines:  10,
	}
}

// PlainOptions returns DefaultOptions without colors or icons.
func PlainOptions() Options {
	opts := DefaultOptions()
	opts.UseColors = false
	opts.UseIcons = false
	return opts
}

// ContentIcons maps content types to icons
var ContentIcons = map[types.ContentType]string{
	types.TypeText:   "📝",
	types.TypeString: "📝",
	types.TypeURL:    "🔗",
	types.TypeHTML:   "🌐",
	types.TypeImage:  "🖼️",
	types.TypeFile:   "📁",
}

// ContentColors maps content types to colors
var ContentColors = map[types.ContentType]string{
	types.TypeText:   Cyan,
	types.TypeString: Cyan,
	types.TypeURL:    Blue,
	types.TypeHTML:   Green,
	types.TypeImage:  Magenta,
	types.TypeFile:   Yellow,
}

// Formatter renders clipboard content.
type Formatter struct {
	options Options
	now     func() time.Time
}

// New creates a formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{options: opts, now: time.Now}
}

// FormatContent renders a header line, a metadata line and an indented
// preview. backend may be empty.
func (f *Formatter) FormatContent(content *types.ClipboardContent, backend string) string {
	if content == nil {
		return ColorizeIf("No content", Gray, f.options.UseColors)
	}

	header := f.formatHeader(content)
	if f.options.Compact {
		return header + " " + DimIf(Preview(content, 50), f.options.UseColors)
	}

	parts := []string{header, DimIf(f.formatMetadata(content, backend), f.options.UseColors)}
	if body := f.formatBody(content); body != "" {
		parts = append(parts, IndentText(body, "  "))
	}
	return strings.Join(parts, "\n")
}

func (f *Formatter) formatHeader(content *types.ClipboardContent) string {
	typ := content.Type
	if typ == "" {
		typ = types.TypeText
	}
	label := ColorizeIf(string(typ), ContentColors[typ], f.options.UseColors)
	if icon, ok := ContentIcons[typ]; ok && f.options.UseIcons {
		return icon + " " + label
	}
	return label
}

func (f *Formatter) formatMetadata(content *types.ClipboardContent, backend string) string {
	parts := []string{
		"Size: " + FormatSize(int64(len(content.Data))),
		"Created: " + FormatRelativeTime(content.Created, f.now()),
	}
	if content.Type.IsText() {
		parts = append(parts, fmt.Sprintf("Lines: %d", countLines(content.Data)))
	}
	if backend != "" {
		parts = append(parts, "Backend: "+backend)
	}
	if content.DeviceID != "" {
		parts = append(parts, "Device: "+content.DeviceID)
	}
	return strings.Join(parts, " • ")
}

func (f *Formatter) formatBody(content *types.ClipboardContent) string {
	if len(content.Data) == 0 {
		return DimIf("(empty)", f.options.UseColors)
	}
	if !utf8.Valid(content.Data) {
		return DimIf(fmt.Sprintf("[binary data, %s]", FormatSize(int64(len(content.Data)))), f.options.UseColors)
	}

	lines := strings.Split(strings.TrimRight(string(content.Data), "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = TruncateText(line, f.options.MaxWidth)
	}
	return TruncateLines(strings.Join(lines, "\n"), f.options.MaxLines)
}

// Preview returns a single line preview of content of at most maxLen runes.
func Preview(content *types.ClipboardContent, maxLen int) string {
	if content == nil || len(content.Data) == 0 {
		return "(empty)"
	}
	if !utf8.Valid(content.Data) {
		return "[binary data]"
	}
	text := strings.Join(strings.Fields(string(content.Data)), " ")
	return TruncateText(text, maxLen)
}

// FormatContent renders content with the given options.
func FormatContent(content *types.ClipboardContent, backend string, opts Options) string {
	return New(opts).FormatContent(content, backend)
}

func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
