// Package filesystem provides file system operations for a deepkit workspace.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/deepkit/dirmap"
	"github.com/taigrr/deepkit/internal/frontmatter"
	"github.com/taigrr/deepkit/internal/pathfilter"
	"github.com/taigrr/deepkit/internal/types"
	"github.com/taigrr/deepkit/internal/uri"
	"github.com/taigrr/deepkit/value"
)

// Service provides file system operations confined to a workspace root.
type Service struct {
	rootPath           string
	pathFilter         *pathfilter.PathFilter
	frontmatterHandler *frontmatter.Handler
}

// New creates a new Service rooted at rootPath.
func New(rootPath string, pf *pathfilter.PathFilter, fh *frontmatter.Handler) *Service {
	absPath, _ := filepath.Abs(rootPath)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	if fh == nil {
		fh = frontmatter.New()
	}
	return &Service{
		rootPath:           absPath,
		pathFilter:         pf,
		frontmatterHandler: fh,
	}
}

// ResolvePath resolves a relative path within the workspace and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	normalizedPath := strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.rootPath, normalizedPath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within the workspace
	relPath, err := filepath.Rel(s.rootPath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// MapDirectory indexes the files of one extension below a workspace
// directory. Entries hidden by the path filter are left out, as are entries
// reached through a symlink that resolves outside the workspace root.
func (s *Service) MapDirectory(params types.DirectoryMapParams) (types.DirectoryMapListing, error) {
	path := params.Path
	if path == "." {
		path = ""
	}

	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.DirectoryMapListing{}, err
	}

	if !s.pathFilter.IsAllowed(filepath.ToSlash(path)) {
		return types.DirectoryMapListing{}, fmt.Errorf("access denied: %s", path)
	}

	result, err := dirmap.Map(dirmap.Options{Path: fullPath, Type: params.Type})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.DirectoryMapListing{}, fmt.Errorf("directory not found: %s: %w", path, err)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.DirectoryMapListing{}, fmt.Errorf("permission denied: %s: %w", path, err)
		}
		return types.DirectoryMapListing{}, fmt.Errorf("failed to map directory: %s - %w", path, err)
	}

	realRoot, err := filepath.EvalSymlinks(s.rootPath)
	if err != nil {
		return types.DirectoryMapListing{}, fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	listing := types.DirectoryMapListing{
		Root:  result.Root,
		Files: []types.MappedFile{},
	}
	for _, key := range result.Keys {
		entry := result.Entries[key]
		workspacePath := filepath.ToSlash(filepath.Join(path, key))
		if !s.pathFilter.IsAllowed(workspacePath) {
			continue
		}
		if !withinRoot(realRoot, entry.Path) {
			continue
		}
		listing.Files = append(listing.Files, types.MappedFile{
			Key:  filepath.ToSlash(key),
			Path: entry.Path,
			Base: entry.Base,
			URI:  uri.FileURI(s.rootPath, workspacePath),
		})
	}

	return listing, nil
}

// ReadDocument decodes a YAML or JSON file. For Markdown notes the
// frontmatter mapping is returned.
func (s *Service) ReadDocument(path string) (types.Document, error) {
	content, err := s.readFile(path)
	if err != nil {
		return types.Document{}, err
	}

	if isMarkdown(path) {
		note := s.frontmatterHandler.Parse(string(content))
		return types.Document{Path: path, Value: note.Frontmatter, Markdown: true}, nil
	}

	v, err := value.Parse(content)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return types.Document{Path: path, Value: v}, nil
}

// WriteDocument encodes v into path, choosing JSON for .json files and YAML
// otherwise. Parent directories are created as needed.
func (s *Service) WriteDocument(path string, v value.Value) error {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return err
	}

	if !s.pathFilter.IsAllowed(filepath.ToSlash(path)) {
		return fmt.Errorf("access denied: %s", path)
	}

	if isMarkdown(path) {
		return fmt.Errorf("cannot write a document over a note: %s. Use merge_frontmatter instead", path)
	}

	format := value.FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = value.FormatJSON
	}

	data, err := value.Marshal(v, format)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %s - %w", path, err)
	}

	return nil
}

// MergeFrontmatter deep-merges params.Patch into a note's frontmatter and
// writes the note back. The body is left as is.
func (s *Service) MergeFrontmatter(params types.MergeFrontmatterParams) (*value.Map, error) {
	path := params.Path
	if !isMarkdown(path) {
		return nil, fmt.Errorf("not a markdown note: %s", path)
	}

	content, err := s.readFile(path)
	if err != nil {
		return nil, err
	}

	updated, err := s.frontmatterHandler.UpdateFrontmatter(string(content), params.Patch)
	if err != nil {
		return nil, err
	}

	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(fullPath, []byte(updated), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %s - %w", path, err)
	}

	return s.frontmatterHandler.ExtractFrontmatter(updated), nil
}

// IsDirectory checks if a path is a directory.
func (s *Service) IsDirectory(path string) (bool, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return false, nil
	}

	return info.IsDir(), nil
}

// GetRootPath returns the absolute workspace root.
func (s *Service) GetRootPath() string {
	return s.rootPath
}

func (s *Service) readFile(path string) ([]byte, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	if !s.pathFilter.IsAllowed(filepath.ToSlash(path)) {
		return nil, fmt.Errorf("access denied: %s", path)
	}

	isDir, _ := s.IsDirectory(path)
	if isDir {
		return nil, fmt.Errorf("cannot read directory as file: %s. Use map_directory instead", path)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", path)
		}
		return nil, fmt.Errorf("failed to read file: %s - %w", path, err)
	}
	return content, nil
}

// withinRoot reports whether path, with symlinks resolved, lies below root.
// root must already be resolved.
func withinRoot(root, path string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
