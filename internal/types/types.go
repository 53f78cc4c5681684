package types

import (
	"bytes"
	"time"
)

// ContentType represents the type of clipboard content
type ContentType string

const (
	TypeText   ContentType = "text"
	TypeString ContentType = "string"
	TypeURL    ContentType = "url"
	TypeHTML   ContentType = "html"
	TypeImage  ContentType = "image"
	TypeFile   ContentType = "file"
)

// IsText reports whether content of this type is stored as plain text.
func (t ContentType) IsText() bool {
	switch t {
	case TypeText, TypeString, TypeURL, "":
		return true
	}
	return false
}

// ParseContentType maps a user supplied name onto a ContentType.
func ParseContentType(s string) (ContentType, bool) {
	switch ContentType(s) {
	case TypeText, TypeString, TypeURL, TypeHTML, TypeImage, TypeFile:
		return ContentType(s), true
	case "":
		return TypeText, true
	}
	return "", false
}

// ClipboardContent represents a clipboard item
type ClipboardContent struct {
	Type     ContentType `json:"type" yaml:"type"`
	Data     []byte      `json:"data" yaml:"data"`
	Created  time.Time   `json:"created" yaml:"created"`
	DeviceID string      `json:"device_id,omitempty" yaml:"device_id,omitempty"`
}

// Text returns the content data as a string.
func (c *ClipboardContent) Text() string {
	if c == nil {
		return ""
	}
	return string(c.Data)
}

// Equal compares two ClipboardContent instances for equality
func (c1 *ClipboardContent) Equal(c2 *ClipboardContent) bool {
	if c1 == nil || c2 == nil {
		return c1 == c2
	}
	return c1.Type == c2.Type && bytes.Equal(c1.Data, c2.Data)
}
