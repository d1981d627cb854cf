package engine

import "log/slog"

// LoggingObserver logs every lifecycle event through structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates an observer backed by the default logger
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{logger: slog.Default()}
}

// OnEvent implements Observer
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("batch_lifecycle",
		slog.String("event", string(event.Type)),
		slog.String("batch_id", event.BatchID),
		slog.Time("timestamp", event.Timestamp),
		slog.Any("data", event.Data),
	)
}
