// Package slog provides logging decorators for relochat interfaces built on
// log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrmovin/relochat"
)

// Ensure LoggingLoader implements relochat.DatasetLoader.
var _ relochat.DatasetLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DatasetLoader with load logging.
type LoggingLoader struct {
	next   relochat.DatasetLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next relochat.DatasetLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context) (ds *relochat.Dataset, err error) {
	defer func(begin time.Time) {
		metros := 0
		if ds != nil {
			metros = len(ds.Metros)
		}
		l.logger.Info("dataset load",
			"metros", metros,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx)
}
