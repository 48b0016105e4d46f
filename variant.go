package ampfilter

import (
	"context"
	"time"
)

// VariantStatus records the outcome of filtering a page to one format.
type VariantStatus string

// VariantStatus constants.
const (
	VariantGenerated   VariantStatus = "generated"
	VariantUnavailable VariantStatus = "unavailable"
)

// Variant represents one format variant of a rendered page.
type Variant struct {
	ID          string        `json:"id"`
	Path        string        `json:"path"`
	Format      Format        `json:"format"`
	Status      VariantStatus `json:"status"`
	SourceHash  string        `json:"sourceHash"`
	ContentHash string        `json:"contentHash"`
	Content     string        `json:"-"` // Not persisted in the manifest
	GeneratedAt time.Time     `json:"generatedAt"`
}

// Validate returns an error if the variant contains invalid fields.
func (v *Variant) Validate() error {
	if v.Path == "" {
		return Errorf(EINVALID, "variant path required")
	}
	if !v.Format.Valid() {
		return Errorf(EINVALID, "variant format %q invalid", v.Format)
	}
	switch v.Status {
	case VariantGenerated, VariantUnavailable:
	default:
		return Errorf(EINVALID, "variant status %q invalid", v.Status)
	}
	return nil
}

// VariantService represents a service for recording build results.
type VariantService interface {
	// CreateVariants records variants, replacing earlier records for the
	// same path and format.
	CreateVariants(ctx context.Context, variants []*Variant) error

	// FindVariants retrieves variants matching the filter, ordered by path
	// and canonical format order.
	FindVariants(ctx context.Context, filter VariantFilter) ([]*Variant, error)

	// DeleteVariantsByPath removes every record for a page.
	// Returns ENOTFOUND if no record exists.
	DeleteVariantsByPath(ctx context.Context, path string) error
}

// VariantFilter represents a filter for FindVariants.
type VariantFilter struct {
	Path   *string        `json:"path"`
	Format *Format        `json:"format"`
	Status *VariantStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
