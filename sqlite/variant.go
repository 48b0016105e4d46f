package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/ampfilter"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ampfilter.VariantService = (*VariantService)(nil)

// VariantService implements ampfilter.VariantService using SQLite.
type VariantService struct {
	db *DB
}

// NewVariantService creates a new VariantService.
func NewVariantService(db *DB) *VariantService {
	return &VariantService{db: db}
}

func formatRank(f ampfilter.Format) int {
	for i, known := range ampfilter.Formats {
		if f == known {
			return i
		}
	}
	return len(ampfilter.Formats)
}

// CreateVariants records variants in a single transaction. A variant replaces
// the earlier record for its path and format. IDs are always regenerated;
// GeneratedAt is set to now when zero.
func (s *VariantService) CreateVariants(ctx context.Context, variants []*ampfilter.Variant) error {
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Truncate(time.Second)
	for _, v := range variants {
		v.ID = uuid.New().String()
		if v.GeneratedAt.IsZero() {
			v.GeneratedAt = now
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO variants (id, path, format, format_rank, status, source_hash, content_hash, generated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (path, format) DO UPDATE SET
				id = excluded.id,
				status = excluded.status,
				source_hash = excluded.source_hash,
				content_hash = excluded.content_hash,
				generated_at = excluded.generated_at
		`, v.ID, v.Path, string(v.Format), formatRank(v.Format), string(v.Status),
			v.SourceHash, v.ContentHash, v.GeneratedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to record variant %s of %q: %w", v.Format, v.Path, err)
		}
	}

	return tx.Commit()
}

// FindVariants retrieves variants matching the filter.
func (s *VariantService) FindVariants(ctx context.Context, filter ampfilter.VariantFilter) ([]*ampfilter.Variant, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, path, format, status, source_hash, content_hash, generated_at FROM variants WHERE 1=1")

	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY path ASC, format_rank ASC")

	// SQLite requires LIMIT before OFFSET; -1 means no limit.
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []*ampfilter.Variant
	for rows.Next() {
		var v ampfilter.Variant
		var format, status, generatedAt string

		if err := rows.Scan(&v.ID, &v.Path, &format, &status, &v.SourceHash, &v.ContentHash, &generatedAt); err != nil {
			return nil, err
		}

		v.Format = ampfilter.Format(format)
		v.Status = ampfilter.VariantStatus(status)
		v.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse generated_at: %w", err)
		}

		variants = append(variants, &v)
	}

	return variants, rows.Err()
}

// DeleteVariantsByPath removes every record for a page.
func (s *VariantService) DeleteVariantsByPath(ctx context.Context, path string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM variants WHERE path = ?", path)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ampfilter.Errorf(ampfilter.ENOTFOUND, "no variants recorded for %q", path)
	}
	return nil
}
