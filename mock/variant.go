package mock

import (
	"context"

	"github.com/fwojciec/ampfilter"
)

var _ ampfilter.VariantService = (*VariantService)(nil)

// VariantService is a mock implementation of ampfilter.VariantService.
type VariantService struct {
	CreateVariantsFn       func(ctx context.Context, variants []*ampfilter.Variant) error
	FindVariantsFn         func(ctx context.Context, filter ampfilter.VariantFilter) ([]*ampfilter.Variant, error)
	DeleteVariantsByPathFn func(ctx context.Context, path string) error
}

func (s *VariantService) CreateVariants(ctx context.Context, variants []*ampfilter.Variant) error {
	return s.CreateVariantsFn(ctx, variants)
}

func (s *VariantService) FindVariants(ctx context.Context, filter ampfilter.VariantFilter) ([]*ampfilter.Variant, error) {
	return s.FindVariantsFn(ctx, filter)
}

func (s *VariantService) DeleteVariantsByPath(ctx context.Context, path string) error {
	return s.DeleteVariantsByPathFn(ctx, path)
}
