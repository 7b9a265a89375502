package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/deepkit/internal/filesystem"
	"github.com/taigrr/deepkit/value"
)

func setupTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	fileSystem = filesystem.New(root, nil, nil)
	t.Cleanup(func() { fileSystem = nil })
	return fileSystem.GetRootPath()
}

// writeTestFile writes content to path, creating parent directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func parseResult(t *testing.T, s string) any {
	t.Helper()
	v, err := value.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}
	return value.ToAny(v)
}

func TestHandleClone(t *testing.T) {
	_, out, err := handleClone(context.Background(), nil, CloneInput{
		Document: `{"b": 1, "a": [true, null]}`,
		Format:   "json",
	})
	if err != nil {
		t.Fatalf("handleClone() error = %v", err)
	}
	if out.Kind != "mapping" {
		t.Errorf("Kind = %q, want mapping", out.Kind)
	}
	if compact := strings.Join(strings.Fields(out.Result), ""); compact != `{"b":1,"a":[true,null]}` {
		t.Errorf("Result = %s", compact)
	}

	res, _, err := handleClone(context.Background(), nil, CloneInput{Document: "a: [", Format: "yaml"})
	if err == nil || res == nil || !res.IsError {
		t.Errorf("handleClone(invalid) = %+v, %v; want error result", res, err)
	}
}

func TestHandleExtend(t *testing.T) {
	root := setupTestRoot(t)

	_, out, err := handleExtend(context.Background(), nil, ExtendInput{
		Target:     "x: {y: 1}\nlist: [1, 2]",
		Source:     "x: {z: 2}\nlist: [3]",
		OutputPath: "merged.yaml",
	})
	if err != nil {
		t.Fatalf("handleExtend() error = %v", err)
	}

	want := map[string]any{"x": map[string]any{"y": 1.0, "z": 2.0}, "list": []any{3.0}}
	if diff := cmp.Diff(want, parseResult(t, out.Result)); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
	if out.Written != "merged.yaml" {
		t.Errorf("Written = %q, want merged.yaml", out.Written)
	}

	data, err := os.ReadFile(filepath.Join(root, "merged.yaml"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(want, parseResult(t, string(data))); diff != "" {
		t.Errorf("written file mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleExtend_EmptyTarget(t *testing.T) {
	setupTestRoot(t)

	_, out, err := handleExtend(context.Background(), nil, ExtendInput{Source: "a: 1", Format: "json"})
	if err != nil {
		t.Fatalf("handleExtend() error = %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": 1.0}, parseResult(t, out.Result)); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleExtend_BadFormat(t *testing.T) {
	setupTestRoot(t)

	res, _, err := handleExtend(context.Background(), nil, ExtendInput{Source: "a: 1", Format: "xml"})
	if err == nil || res == nil || !res.IsError {
		t.Errorf("handleExtend() = %+v, %v; want error result", res, err)
	}
}

func TestHandleMapDirectory(t *testing.T) {
	root := setupTestRoot(t)

	writeTestFile(t, filepath.Join(root, "a.txt"), "a")
	writeTestFile(t, filepath.Join(root, "b.log"), "b")
	writeTestFile(t, filepath.Join(root, "sub", "c.txt"), "c")

	_, out, err := handleMapDirectory(context.Background(), nil, MapInput{Type: ".txt"})
	if err != nil {
		t.Fatalf("handleMapDirectory() error = %v", err)
	}

	if out.Total != 2 {
		t.Fatalf("Total = %d, want 2", out.Total)
	}
	if out.Files[0].Key != "a.txt" || out.Files[1].Key != "sub/c.txt" {
		t.Errorf("Files = %+v", out.Files)
	}
	if out.Root != root {
		t.Errorf("Root = %q, want %q", out.Root, root)
	}

	res, _, err := handleMapDirectory(context.Background(), nil, MapInput{Path: "missing", Type: "txt"})
	if err == nil || !res.IsError {
		t.Errorf("handleMapDirectory(missing) error = %v, want error result", err)
	}
}

func TestHandleReadDocument(t *testing.T) {
	root := setupTestRoot(t)

	writeTestFile(t, filepath.Join(root, "note.md"), "---\ntitle: T\ntags: [a]\n---\nbody")

	_, out, err := handleReadDocument(context.Background(), nil, ReadInput{Path: "note.md"})
	if err != nil {
		t.Fatalf("handleReadDocument() error = %v", err)
	}
	if !out.Markdown {
		t.Error("Markdown = false, want true")
	}
	if diff := cmp.Diff(map[string]any{"title": "T", "tags": []any{"a"}}, parseResult(t, out.Result)); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleMergeFrontmatter(t *testing.T) {
	root := setupTestRoot(t)

	writeTestFile(t, filepath.Join(root, "note.md"), "---\ntitle: T\nmeta:\n  a: 1\n---\nbody")

	_, out, err := handleMergeFrontmatter(context.Background(), nil, MergeFrontmatterInput{
		Path:  "note.md",
		Patch: `{"meta": {"b": 2}}`,
	})
	if err != nil {
		t.Fatalf("handleMergeFrontmatter() error = %v", err)
	}
	if !out.Success {
		t.Error("Success = false, want true")
	}

	want := map[string]any{"title": "T", "meta": map[string]any{"a": 1.0, "b": 2.0}}
	if diff := cmp.Diff(want, parseResult(t, out.Frontmatter)); diff != "" {
		t.Errorf("Frontmatter mismatch (-want +got):\n%s", diff)
	}

	res, _, err := handleMergeFrontmatter(context.Background(), nil, MergeFrontmatterInput{
		Path:  "note.md",
		Patch: "[1, 2]",
	})
	if err == nil || !res.IsError || !strings.Contains(err.Error(), "must be a mapping") {
		t.Errorf("handleMergeFrontmatter(list) error = %v, want mapping error", err)
	}
}
