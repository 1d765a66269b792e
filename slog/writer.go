package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/teamfood"
)

// Ensure LoggingWriter implements teamfood.MenuWriter.
var _ teamfood.MenuWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a MenuWriter with logging.
type LoggingWriter struct {
	next   teamfood.MenuWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next teamfood.MenuWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteMenu logs the write and delegates to the wrapped writer.
func (w *LoggingWriter) WriteMenu(ctx context.Context, menu *teamfood.Menu) (err error) {
	defer func(begin time.Time) {
		weeks := 0
		if menu != nil {
			weeks = len(menu.Weeks)
		}
		w.logger.Info("write menu",
			"weeks", weeks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteMenu(ctx, menu)
}
