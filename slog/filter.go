// Package slog provides logging decorators for ampfilter services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ampfilter"
)

// Ensure LoggingFilter implements ampfilter.PageFilter.
var _ ampfilter.PageFilter = (*LoggingFilter)(nil)

// LoggingFilter wraps a PageFilter with debug logging.
type LoggingFilter struct {
	next   ampfilter.PageFilter
	logger *slog.Logger
}

// NewLoggingFilter creates a new LoggingFilter.
func NewLoggingFilter(next ampfilter.PageFilter, logger *slog.Logger) *LoggingFilter {
	return &LoggingFilter{next: next, logger: logger}
}

// Filter logs the format and output size and delegates to the wrapped filter.
// Unavailable formats are expected during builds and log at debug level.
func (f *LoggingFilter) Filter(html string, format ampfilter.Format, force bool) (out string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if ampfilter.ErrorCode(err) == ampfilter.EUNAVAILABLE {
			level = slog.LevelDebug
		}
		f.logger.Log(context.Background(), level, "filter",
			"format", string(format),
			"force", force,
			"bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Filter(html, format, force)
}
