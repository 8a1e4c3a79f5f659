package logger

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"qure/internal/app/server/config"
)

// New returns a slog.Logger tuned for the given environment: pretty
// colorized text for local runs, JSON at debug level for dev, JSON at info
// level for prod. Unknown environments behave like prod.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}))
}

type prettyHandler struct {
	opts  *slog.HandlerOptions
	l     *stdlog.Logger
	attrs []slog.Attr
}

func newPrettyHandler(opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: opts,
		l:    stdlog.New(os.Stdout, "", 0),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts != nil && h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	var suffix string
	if len(fields) > 0 {
		b, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
		suffix = " " + color.WhiteString(string(b))
	}

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		color.CyanString(r.Message)+suffix,
	)

	return nil
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{
		opts:  h.opts,
		l:     h.l,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	_ = name
	return h
}

// Err wraps an error as a slog attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(fmt.Sprint(err)),
	}
}
