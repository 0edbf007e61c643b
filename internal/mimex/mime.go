// Package mimex infers MIME types for attachment uploads.
package mimex

import (
	"mime"
	"path/filepath"
	"strings"
)

// DefaultType is the fallback for files whose extension is unknown.
const DefaultType = "application/octet-stream"

// TypeByFilename returns the MIME type for the file's extension, or
// DefaultType when the extension is missing or unregistered.
func TypeByFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return DefaultType
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return DefaultType
	}
	return t
}
