package codes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"qure/internal/domain/history"
	"qure/internal/domain/premium"
	"qure/internal/domain/qr"
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
	// Generic CRUD
	huma.Register(api, h.upsertOp(), h.upsert)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.payloadOp(), h.payload)

	// Typed create handlers
	huma.Register(api, h.createLinkOp(), h.createLink)
	huma.Register(api, h.createEmailOp(), h.createEmail)
	huma.Register(api, h.createPhoneOp(), h.createPhone)
	huma.Register(api, h.createSMSOp(), h.createSMS)
	huma.Register(api, h.createWhatsAppOp(), h.createWhatsApp)
	huma.Register(api, h.createVCardOp(), h.createVCard)
	huma.Register(api, h.createTextOp(), h.createText)
}

func (h *Handler) upsert(ctx context.Context, input *upsertInput) (*codeOutput, error) {
	code := input.Body

	// A record without an id is a brand new one.
	if code.ID == "" {
		fresh := qr.NewText(qr.TextInput{})
		code.ID = fresh.ID
		code.CreatedAt = fresh.CreatedAt
		code.UpdatedAt = fresh.UpdatedAt
	}
	if code.Design == (qr.DesignOptions{}) {
		code.Design = qr.DefaultDesign()
	}
	if err := h.checkDesign(code.Design); err != nil {
		return nil, err
	}

	return h.store(ctx, code)
}

func (h *Handler) find(ctx context.Context, input *idInput) (*codeOutput, error) {
	code, err := h.service.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, huma.Error404NotFound("qr code not found")
	}

	return &codeOutput{Body: *code}, nil
}

func (h *Handler) payload(ctx context.Context, input *idInput) (*payloadOutput, error) {
	code, err := h.service.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, huma.Error404NotFound("qr code not found")
	}

	return &payloadOutput{
		Body: payloadResponse{
			ID:      code.ID,
			Payload: qr.Payload(*code),
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*historyOutput, error) {
	hist, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &historyOutput{Body: hist}, nil
}

func (h *Handler) createLink(ctx context.Context, input *createLinkInput) (*codeOutput, error) {
	code := qr.NewLink(qr.LinkInput{
		URL:    input.Body.URL,
		Label:  input.Body.Label,
		Design: input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) createEmail(ctx context.Context, input *createEmailInput) (*codeOutput, error) {
	code := qr.NewEmail(qr.EmailInput{
		Email:   input.Body.Email,
		Subject: input.Body.Subject,
		Body:    input.Body.Body,
		Label:   input.Body.Label,
		Design:  input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) createPhone(ctx context.Context, input *createPhoneInput) (*codeOutput, error) {
	code := qr.NewPhone(qr.PhoneInput{
		CountryCode: input.Body.CountryCode,
		PhoneNumber: input.Body.PhoneNumber,
		Label:       input.Body.Label,
		Design:      input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) createSMS(ctx context.Context, input *createSMSInput) (*codeOutput, error) {
	code := qr.NewSMS(qr.SMSInput{
		CountryCode: input.Body.CountryCode,
		PhoneNumber: input.Body.PhoneNumber,
		Message:     input.Body.Message,
		Label:       input.Body.Label,
		Design:      input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) createWhatsApp(ctx context.Context, input *createWhatsAppInput) (*codeOutput, error) {
	code := qr.NewWhatsApp(qr.WhatsAppInput{
		CountryCode: input.Body.CountryCode,
		PhoneNumber: input.Body.PhoneNumber,
		Message:     input.Body.Message,
		Label:       input.Body.Label,
		Design:      input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) createVCard(ctx context.Context, input *createVCardInput) (*codeOutput, error) {
	code := qr.NewVCard(qr.VCardInput{
		FirstName:    input.Body.FirstName,
		LastName:     input.Body.LastName,
		PhoneNumber:  input.Body.PhoneNumber,
		MobileNumber: input.Body.MobileNumber,
		Email:        input.Body.Email,
		Website:      input.Body.Website,
		Company:      input.Body.Company,
		JobTitle:     input.Body.JobTitle,
		Fax:          input.Body.Fax,
		Address:      input.Body.Address,
		City:         input.Body.City,
		PostCode:     input.Body.PostCode,
		Country:      input.Body.Country,
		Label:        input.Body.Label,
		Design:       input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) createText(ctx context.Context, input *createTextInput) (*codeOutput, error) {
	code := qr.NewText(qr.TextInput{
		Content: input.Body.Content,
		Label:   input.Body.Label,
		Design:  input.Body.Design,
	})
	return h.create(ctx, code)
}

func (h *Handler) create(ctx context.Context, code qr.Code) (*codeOutput, error) {
	if err := h.checkDesign(code.Design); err != nil {
		return nil, err
	}
	return h.store(ctx, code)
}

func (h *Handler) store(ctx context.Context, code qr.Code) (*codeOutput, error) {
	if _, err := h.service.Upsert(ctx, code); err != nil {
		h.log.Error("upsert failed", "id", code.ID, "error", err)
		return nil, err
	}

	stored, err := h.service.GetByID(ctx, code.ID)
	if err != nil || stored == nil {
		return &codeOutput{Body: code}, nil
	}
	return &codeOutput{Body: *stored}, nil
}

func (h *Handler) checkDesign(d qr.DesignOptions) error {
	if d.Gradient && !h.gate.Allow(premium.FeatureGradientDesigns) {
		return huma.Error403Forbidden("gradient designs require premium")
	}
	return nil
}
