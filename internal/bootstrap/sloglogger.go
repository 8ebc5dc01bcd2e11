package bootstrap

import "log/slog"

// SlogLogger adapts a *slog.Logger to the engine's minimal Logger
// interface, matching the structured logging already set up by
// internal/logging.Setup.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger. A nil logger falls back to slog's
// process-wide default.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogLogger{logger: logger}
}

// Info logs msg at info level with the "bootstrap" component tag.
func (l SlogLogger) Info(msg string) {
	l.logger.Info(msg, slog.String("component", "bootstrap"))
}
