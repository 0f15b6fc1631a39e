// Package notifier holds the notification sinks.
package notifier

import (
	"context"
	"log/slog"

	"geoshop/internal/core/ports"
)

// LogSink writes notifications to the log instead of sending mail. It is
// the default sink until an SMTP relay is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "LogSink")}
}

func (s *LogSink) Notify(ctx context.Context, n ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	attrs := []any{
		"kind", n.Kind.String(),
		"role", n.Role.String(),
		"to", n.To,
		"order_id", n.OrderID.String(),
	}
	if n.ItemID != nil {
		attrs = append(attrs, "item_id", n.ItemID.String())
	}
	if n.Token != nil {
		attrs = append(attrs, "token", n.Token.String())
	}
	if n.Detail != "" {
		attrs = append(attrs, "detail", n.Detail)
	}
	s.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}
