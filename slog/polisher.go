package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrmovin/relochat"
)

// Ensure LoggingPolisher implements relochat.Polisher.
var _ relochat.Polisher = (*LoggingPolisher)(nil)

// LoggingPolisher wraps a Polisher with debug logging. Polish failures are
// recovered by the caller, so this is the only place they surface.
type LoggingPolisher struct {
	next   relochat.Polisher
	logger *slog.Logger
}

// NewLoggingPolisher creates a new LoggingPolisher.
func NewLoggingPolisher(next relochat.Polisher, logger *slog.Logger) *LoggingPolisher {
	return &LoggingPolisher{next: next, logger: logger}
}

// Polish delegates to the wrapped polisher and logs the operation.
func (p *LoggingPolisher) Polish(ctx context.Context, message, draft string) (out string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("polish",
			"draft_len", len(draft),
			"out_len", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Polish(ctx, message, draft)
}
