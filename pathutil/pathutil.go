// Package pathutil holds small path string helpers.
package pathutil

import (
	"os"
	"strings"
)

// EnsureTrailingSeparator appends the platform path separator to s unless it
// already ends with one.
func EnsureTrailingSeparator(s string) string {
	if !strings.HasSuffix(s, string(os.PathSeparator)) {
		s += string(os.PathSeparator)
	}
	return s
}
