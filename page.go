package ampfilter

import "context"

// Page represents a rendered documentation page read from a source.
type Page struct {
	Path    string // Slash separated, relative to the source root
	Content string // HTML
}

// PageSource lists and reads rendered pages.
type PageSource interface {
	// List returns the paths of all pages, sorted.
	List(ctx context.Context) ([]string, error)

	// Read returns the page at path.
	// Returns ENOTFOUND if the page does not exist.
	Read(ctx context.Context, path string) (*Page, error)
}

// VariantStore persists filtered pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type VariantStore interface {
	Save(ctx context.Context, variant *Variant) error
	Commit() error
	Abort() error
}
