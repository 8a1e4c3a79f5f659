// Package client wires the local Qure application: sqlite-backed key-value
// store, history service and premium gate, behind one App handle the CLI
// commands share.
package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"qure/internal/app/client/config"
	"qure/internal/domain/history"
	"qure/internal/domain/premium"
	"qure/internal/infrastructure/storage/sqlite"
)

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *sqlite.Storage
	History *history.Service
	Gate    premium.Gate
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	return &App{
		cfg:     cfg,
		log:     log,
		store:   store,
		History: history.NewService(store, log),
		Gate:    premium.NewGate(cfg.Premium),
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

type contextKey struct{}

// NewContext returns ctx carrying the app, for cobra subcommand packages.
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext extracts the App stored by NewContext, or nil.
func FromContext(ctx context.Context) *App {
	a, _ := ctx.Value(contextKey{}).(*App)
	return a
}
