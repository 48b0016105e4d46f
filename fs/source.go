package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/ampfilter"
)

// Ensure Source implements ampfilter.PageSource at compile time.
var _ ampfilter.PageSource = (*Source)(nil)

// Source reads rendered pages from a directory tree.
type Source struct {
	root string
}

// NewSource creates a new Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{root: dir}
}

// List returns the slash separated paths of all .html files below the root.
// Returns ENOTFOUND if the root directory does not exist.
func (s *Source) List(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ampfilter.Errorf(ampfilter.ENOTFOUND, "source directory %q not found", s.root)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ampfilter.Errorf(ampfilter.EINVALID, "source %q is not a directory", s.root)
	}

	var paths []string
	err = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isHTML(p) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// Read returns the page at the slash separated path.
// Returns ENOTFOUND if the file does not exist and EINVALID if the path
// leaves the root directory.
func (s *Source) Read(ctx context.Context, path string) (*ampfilter.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	relPath, err := localPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, relPath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ampfilter.Errorf(ampfilter.ENOTFOUND, "page %q not found", path)
	} else if err != nil {
		return nil, err
	}

	return &ampfilter.Page{Path: path, Content: string(data)}, nil
}

func isHTML(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".html", ".htm":
		return true
	}
	return false
}
