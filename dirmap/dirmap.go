// Package dirmap indexes the files of one extension below a directory.
package dirmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type (
	// Options selects the tree to walk and the extension to keep.
	Options struct {
		// Path is the root directory. It is used verbatim as Result.Root.
		Path string
		// Type is the extension to match, with or without the leading dot.
		Type string
	}

	// Entry describes one matched file.
	Entry struct {
		// Path is the root joined with the file's relative path.
		Path string `json:"path" yaml:"path"`
		// Base is the file name without its extension.
		Base string `json:"base" yaml:"base"`
	}

	// Result maps root-relative file paths to entries.
	Result struct {
		Root    string           `json:"root" yaml:"root"`
		Entries map[string]Entry `json:"entries" yaml:"entries"`
		// Keys lists the entry keys in traversal order.
		Keys []string `json:"-" yaml:"-"`
	}
)

// AccessError reports a directory that could not be listed or a path that
// could not be stat'ed.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Map walks opts.Path breadth first and returns every non-directory whose
// extension matches opts.Type. Directories are expanded in the order they
// were found and never appear as entries. Symlinks are followed. Any listing
// or stat failure aborts the walk.
func Map(opts Options) (*Result, error) {
	res := &Result{
		Root:    opts.Path,
		Entries: make(map[string]Entry),
	}

	queue := []string{""}
	for len(queue) > 0 {
		rel := queue[0]
		queue = queue[1:]

		dir := filepath.Join(opts.Path, rel)
		children, err := os.ReadDir(dir)
		if err != nil {
			return nil, &AccessError{Op: "readdir", Path: dir, Err: err}
		}

		for _, child := range children {
			name := child.Name()
			full := filepath.Join(dir, name)

			// Stat rather than the dirent type so links resolve to their target.
			info, err := os.Stat(full)
			if err != nil {
				return nil, &AccessError{Op: "stat", Path: full, Err: err}
			}

			key := filepath.Join(rel, name)
			if info.IsDir() {
				queue = append(queue, key)
				continue
			}

			ext := Ext(name)
			if !MatchType(ext, opts.Type) {
				continue
			}
			res.Keys = append(res.Keys, key)
			res.Entries[key] = Entry{
				Path: full,
				Base: strings.TrimSuffix(name, ext),
			}
		}
	}

	return res, nil
}

// Ext returns the extension of a file name: the suffix starting at the last
// dot. A single leading dot never starts an extension, so ".bashrc" has none
// while "..txt" has ".txt" and "notes." has ".". The name ".." has none.
func Ext(name string) string {
	if name == ".." {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i:]
}

// MatchType reports whether ext equals want, accepting want with or without
// its leading dot. The comparison is case sensitive.
func MatchType(ext, want string) bool {
	return ext == want || ext == "."+want
}

// Len returns the number of entries.
func (r *Result) Len() int { return len(r.Entries) }

// Get returns the entry stored under a root-relative path.
func (r *Result) Get(rel string) (Entry, bool) {
	e, ok := r.Entries[rel]
	return e, ok
}
