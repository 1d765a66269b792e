package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/teamfood"
)

// Ensure LoggingExtractor implements teamfood.MenuExtractor.
var _ teamfood.MenuExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MenuExtractor with logging.
type LoggingExtractor struct {
	next   teamfood.MenuExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next teamfood.MenuExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the number of weeks and items found.
func (e *LoggingExtractor) Extract(html string) (menu *teamfood.Menu, err error) {
	defer func(begin time.Time) {
		weeks, items := 0, 0
		if menu != nil {
			weeks, items = len(menu.Weeks), menu.ItemCount()
		}
		attrs := []any{
			"weeks", weeks,
			"items", items,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", teamfood.ErrorCode(err), "err", err)
			e.logger.Error("extract", attrs...)
			return
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
