// Package postgres backs the key-value store with Postgres for hosted
// deployments of the API server.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qure/internal/app/server/config"
	"qure/internal/infrastructure/migration"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(cfg *config.Config) (*Storage, error) {
	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, "DELETE FROM kv WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
