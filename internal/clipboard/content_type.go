package clipboard

import (
	"bytes"
	"net/url"
	"unicode/utf8"

	"github.com/berrythewa/clipman-termux/internal/types"
)

// DetectTextType classifies text read from a text-only clipboard. A single
// http(s) URL is TypeURL, anything else is TypeText.
func DetectTextType(data []byte) types.ContentType {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || !utf8.Valid(trimmed) {
		return types.TypeText
	}
	if bytes.ContainsAny(trimmed, " \t\r\n") {
		return types.TypeText
	}

	u, err := url.ParseRequestURI(string(trimmed))
	if err != nil || u.Host == "" {
		return types.TypeText
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return types.TypeURL
	}
	return types.TypeText
}
