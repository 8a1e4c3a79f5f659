package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Logger is the request logging middleware.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware logs method, path, status and duration of every request.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		duration := time.Since(start)
		status := ctx.Status()

		l.log.Info("HTTP request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("remote_addr", remoteAddr),
		)
	}
}
