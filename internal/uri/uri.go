// Package uri renders file URIs for workspace entries.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI returns the file:// URI for a path below root. relPath may use
// either separator and may start with a slash.
func FileURI(root, relPath string) string {
	cleanPath := strings.TrimPrefix(filepath.ToSlash(relPath), "/")
	absolutePath := strings.TrimSuffix(filepath.ToSlash(root), "/") + "/" + cleanPath

	// Escape each segment so the separators survive.
	parts := strings.Split(absolutePath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encodedPath := strings.Join(parts, "/")

	// Windows drive paths have no leading slash.
	if !strings.HasPrefix(encodedPath, "/") {
		encodedPath = "/" + encodedPath
	}

	return "file://" + encodedPath
}
