package mock

import (
	"context"

	"github.com/fwojciec/ampfilter"
)

// Compile-time interface verification.
var (
	_ ampfilter.PageSource   = (*PageSource)(nil)
	_ ampfilter.VariantStore = (*VariantStore)(nil)
)

// PageSource is a mock implementation of ampfilter.PageSource.
type PageSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, path string) (*ampfilter.Page, error)
}

func (s *PageSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *PageSource) Read(ctx context.Context, path string) (*ampfilter.Page, error) {
	return s.ReadFn(ctx, path)
}

// VariantStore is a mock implementation of ampfilter.VariantStore.
type VariantStore struct {
	SaveFn   func(ctx context.Context, variant *ampfilter.Variant) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *VariantStore) Save(ctx context.Context, variant *ampfilter.Variant) error {
	return s.SaveFn(ctx, variant)
}

func (s *VariantStore) Commit() error {
	return s.CommitFn()
}

func (s *VariantStore) Abort() error {
	return s.AbortFn()
}
