package uri

import "testing"

func TestFileURI(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		relPath string
		want    string
	}{
		{
			name:    "simple path",
			root:    "/Users/test/workspace",
			relPath: "config/app.yaml",
			want:    "file:///Users/test/workspace/config/app.yaml",
		},
		{
			name:    "leading slash in relative path",
			root:    "/Users/test/workspace",
			relPath: "/config/app.yaml",
			want:    "file:///Users/test/workspace/config/app.yaml",
		},
		{
			name:    "trailing slash on root",
			root:    "/srv/data/",
			relPath: "a.json",
			want:    "file:///srv/data/a.json",
		},
		{
			name:    "path with spaces",
			root:    "/Users/test/my workspace",
			relPath: "my notes/test file.md",
			want:    "file:///Users/test/my%20workspace/my%20notes/test%20file.md",
		},
		{
			name:    "path with special chars",
			root:    "/Users/test/workspace",
			relPath: "notes/test (copy).md",
			want:    "file:///Users/test/workspace/notes/test%20%28copy%29.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileURI(tt.root, tt.relPath)
			if got != tt.want {
				t.Errorf("FileURI() = %q, want %q", got, tt.want)
			}
		})
	}
}
