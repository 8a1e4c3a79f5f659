// Qure HTTP API.
//
// GET  /health                 # Liveness
// GET  /api/history            # Full history blob
// POST /api/codes              # Generic upsert
// POST /api/codes/{type}       # Typed create (link, email, phone, sms, whatsapp, vcard, text)
// GET  /api/codes/{id}         # Point lookup
// GET  /api/codes/{id}/payload # Scannable payload string
// DELETE /api/codes/{id}       # Delete with slot cleanup
// PUT  /api/slots/{slot}       # Assign or clear primary/secondary slot

package api

import (
	codesAPI "qure/internal/app/server/api/http/codes"
	healthAPI "qure/internal/app/server/api/http/health"
	historyAPI "qure/internal/app/server/api/http/historyapi"
	"qure/internal/app/server/api/http/middleware"
	"qure/internal/app/server/api/http/middleware/logger"
	"qure/internal/domain/history"
	"qure/internal/domain/premium"
	"qure/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Codes   *codesAPI.Handler
	History *historyAPI.Handler
}

// New builds a *chi.Mux with every operation registered through
// huma.Register.
func New(kv storage.KV, gate premium.Gate, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Qure API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(kv, gate, log)
	h.Health.SetupRoutes(API)
	h.Codes.SetupRoutes(API)
	h.History.SetupRoutes(API)

	return mux
}

func handlers(kv storage.KV, gate premium.Gate, log *slog.Logger) *Handlers {
	historyService := history.NewService(kv, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	codesHandler := codesAPI.NewHandler(historyService, gate, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	historyHandler := historyAPI.NewHandler(historyService, gate, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Codes:   codesHandler,
		History: historyHandler,
	}
}
