package logger

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var logMessages = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inscription_indexer",
	Name:      "log_messages_total",
	Help:      "Emitted log records by level.",
}, []string{"level"})

// middlewareCountLevel counts every emitted record by level.
func middlewareCountLevel() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			logMessages.WithLabelValues(levelName(rec.Level)).Inc()
			return next(ctx, rec)
		}
	}
}
