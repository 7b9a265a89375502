package pathfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/deepkit/internal/types"
)

func TestPathFilter_AllowsOrdinaryFiles(t *testing.T) {
	filter := New(nil)

	tests := []string{
		"notes/test.md",
		"config.yaml",
		"folder/subfolder/data.json",
		"gitignore.txt",
		"my.git/file",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if !filter.IsAllowed(path) {
				t.Errorf("IsAllowed(%q) = false, want true", path)
			}
		})
	}
}

func TestPathFilter_BlocksDefaults(t *testing.T) {
	filter := New(nil)

	tests := []string{
		".git/config",
		".git/objects/abc123",
		"vendor/lib/.git/HEAD",
		"node_modules/package/index.js",
		"web/node_modules/x/y.json",
		".DS_Store",
		"photos/.DS_Store",
		"Thumbs.db",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if filter.IsAllowed(path) {
				t.Errorf("IsAllowed(%q) = true, want false", path)
			}
		})
	}
}

func TestPathFilter_WindowsSeparators(t *testing.T) {
	filter := New(nil)

	if filter.IsAllowed(`.git\config`) {
		t.Error(`IsAllowed(".git\\config") = true, want false`)
	}
	if filter.IsAllowed("./node_modules/a.js") {
		t.Error(`IsAllowed("./node_modules/a.js") = true, want false`)
	}
}

func TestPathFilter_CustomIgnoredPatterns(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{"drafts/**", "*.bak", "tmp?.yaml", "**/secret.json"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"drafts/a.yaml", false},
		{"drafts/deep/b.yaml", false},
		{"notes/drafts.yaml", true},
		{"old.bak", false},
		{"dir/old.bak", true},
		{"tmp1.yaml", false},
		{"tmp12.yaml", true},
		{"secret.json", false},
		{"a/b/secret.json", false},
		{"a/b/public.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_RegexSpecialCharacters(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{"file[1].md", "notes (old)/**", "a+b.yaml"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"file[1].md", false},
		{"file1.md", true},
		{"notes (old)/x.md", false},
		{"notes old/x.md", true},
		{"a+b.yaml", false},
		{"aab.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_FilterPaths(t *testing.T) {
	filter := New(nil)

	got := filter.FilterPaths([]string{
		"b.md",
		".git/HEAD",
		"a/c.md",
		"node_modules/x.md",
	})

	if diff := cmp.Diff([]string{"b.md", "a/c.md"}, got); diff != "" {
		t.Errorf("FilterPaths() mismatch (-want +got):\n%s", diff)
	}
}
