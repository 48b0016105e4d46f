package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ampfilter"
)

// Ensure LoggingVariantService implements ampfilter.VariantService.
var _ ampfilter.VariantService = (*LoggingVariantService)(nil)

// LoggingVariantService wraps a VariantService with debug logging.
type LoggingVariantService struct {
	next   ampfilter.VariantService
	logger *slog.Logger
}

// NewLoggingVariantService creates a new LoggingVariantService.
func NewLoggingVariantService(next ampfilter.VariantService, logger *slog.Logger) *LoggingVariantService {
	return &LoggingVariantService{next: next, logger: logger}
}

// CreateVariants delegates to the wrapped service and logs the operation.
func (s *LoggingVariantService) CreateVariants(ctx context.Context, variants []*ampfilter.Variant) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create variants",
			"count", len(variants),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateVariants(ctx, variants)
}

// FindVariants delegates to the wrapped service and logs the operation.
func (s *LoggingVariantService) FindVariants(ctx context.Context, filter ampfilter.VariantFilter) (variants []*ampfilter.Variant, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find variants",
			"count", len(variants),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindVariants(ctx, filter)
}

// DeleteVariantsByPath delegates to the wrapped service and logs the operation.
func (s *LoggingVariantService) DeleteVariantsByPath(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete variants",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteVariantsByPath(ctx, path)
}
