package main

import (
	"net/http"
	"os"

	"qure/internal/app/server/api"
	"qure/internal/app/server/config"
	"qure/internal/domain/premium"
	"qure/internal/infrastructure/storage/postgres"
	"qure/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	store, err := postgres.New(cfg)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	mux := api.New(store, premium.NewGate(cfg.Premium), log)

	log.Info("starting qure api", "address", cfg.Server.RunAddress, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
