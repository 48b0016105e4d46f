// Package fs provides file-based page sources and variant storage.
package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/fwojciec/ampfilter"
)

// VariantPath returns the slash separated output path of a page variant.
// Example: docs/index.html filtered to stories → stories/docs/index.html
func VariantPath(pagePath string, format ampfilter.Format) string {
	return path.Join(string(format), pagePath)
}

// localPath converts a slash separated page path into an OS path and rejects
// paths that would leave the directory they are joined to.
func localPath(p string) (string, error) {
	local := filepath.FromSlash(p)
	if !filepath.IsLocal(local) {
		return "", ampfilter.Errorf(ampfilter.EINVALID, "path traversal in %q", p)
	}
	return local, nil
}

// Ensure FileStore implements ampfilter.VariantStore at compile time.
var _ ampfilter.VariantStore = (*FileStore)(nil)

// FileStore implements ampfilter.VariantStore with atomic update semantics.
// Variants are saved to a temporary directory, then moved atomically on Commit.
// Save is safe for concurrent use.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a generated variant below its format directory.
func (s *FileStore) Save(ctx context.Context, variant *ampfilter.Variant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := variant.Validate(); err != nil {
		return err
	}
	if variant.Status != ampfilter.VariantGenerated {
		return ampfilter.Errorf(ampfilter.EINVALID, "cannot save %s variant of %q", variant.Status, variant.Path)
	}

	relPath, err := localPath(VariantPath(variant.Path, variant.Format))
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(variant.Content), 0644)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
