// Package pathfilter hides ignored paths from workspace listings.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/deepkit/internal/types"
)

// DefaultIgnoredPatterns are always applied.
var DefaultIgnoredPatterns = []string{
	".git/**",
	"**/.git/**",
	"node_modules/**",
	"**/node_modules/**",
	".DS_Store",
	"**/.DS_Store",
	"Thumbs.db",
	"**/Thumbs.db",
}

// PathFilter decides which workspace-relative paths are visible.
type PathFilter struct {
	ignored []*regexp.Regexp
}

// New creates a PathFilter from the defaults plus config's patterns.
// Patterns that fail to compile are skipped.
func New(config *types.PathFilterConfig) *PathFilter {
	patterns := append([]string(nil), DefaultIgnoredPatterns...)
	if config != nil {
		patterns = append(patterns, config.IgnoredPatterns...)
	}

	pf := &PathFilter{}
	for _, p := range patterns {
		if re, err := globToRegexp(p); err == nil {
			pf.ignored = append(pf.ignored, re)
		}
	}
	return pf
}

// globToRegexp converts a glob pattern to an anchored regex.
// ** matches across separators, * and ? stay within one segment.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	normalized := strings.ReplaceAll(pattern, "\\", "/")

	expr := regexp.QuoteMeta(normalized)
	expr = strings.ReplaceAll(expr, `\*\*/`, "(.*/)?")
	expr = strings.ReplaceAll(expr, `\*\*`, ".*")
	expr = strings.ReplaceAll(expr, `\*`, "[^/]*")
	expr = strings.ReplaceAll(expr, `\?`, "[^/]")

	return regexp.Compile("^" + expr + "$")
}

// IsAllowed reports whether path matches none of the ignored patterns.
func (pf *PathFilter) IsAllowed(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.TrimPrefix(normalized, "./")

	for _, re := range pf.ignored {
		if re.MatchString(normalized) {
			return false
		}
	}
	return true
}

// FilterPaths returns the allowed paths, keeping their order.
func (pf *PathFilter) FilterPaths(paths []string) []string {
	var allowed []string
	for _, path := range paths {
		if pf.IsAllowed(path) {
			allowed = append(allowed, path)
		}
	}
	return allowed
}
