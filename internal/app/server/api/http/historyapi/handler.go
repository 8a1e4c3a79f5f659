package historyapi

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"qure/internal/domain/history"
	"qure/internal/domain/premium"
)

type Handler struct {
	service    *history.Service
	gate       premium.Gate
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service *history.Service, gate premium.Gate, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		gate:       gate,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.assignSlotOp(), h.assignSlot)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*historyOutput, error) {
	hist, err := h.service.History(ctx)
	if err != nil {
		return nil, err
	}

	return &historyOutput{Body: hist}, nil
}

func (h *Handler) assignSlot(ctx context.Context, input *assignSlotInput) (*historyOutput, error) {
	slot := history.Slot(input.Slot)

	if slot == history.SlotSecondary && input.Body.ID != nil {
		if !h.gate.Allow(premium.FeatureSecondarySlot) {
			return nil, huma.Error403Forbidden("secondary slot requires premium")
		}
	}

	hist, err := h.service.AssignSlot(ctx, slot, input.Body.ID)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrNotFound):
			return nil, huma.Error404NotFound(err.Error())
		case errors.Is(err, history.ErrInvalidSlot):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &historyOutput{Body: hist}, nil
}
