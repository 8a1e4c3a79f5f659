package codes

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) upsertOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-upsert",
		Method:      http.MethodPost,
		Path:        "/api/codes",
		Summary:     "Upsert a QR code (generic)",
		Description: "Stores a full record as-is. For typed creation use the specialized endpoints.",
		Tags:        []string{"codes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-find",
		Method:      http.MethodGet,
		Path:        "/api/codes/{id}",
		Summary:     "Get a QR code",
		Tags:        []string{"codes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/codes/{id}",
		Summary:     "Delete a QR code",
		Description: "Removes the record and clears any home-screen slot pointing at it.",
		Tags:        []string{"codes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) payloadOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-payload",
		Method:      http.MethodGet,
		Path:        "/api/codes/{id}/payload",
		Summary:     "Get the scannable payload",
		Description: "Returns the exact string a QR renderer must encode for this record.",
		Tags:        []string{"codes"},
		Middlewares: h.middleware,
	}
}

// ==================== Typed Create Operations ====================

func (h *Handler) createLinkOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-link",
		Method:      http.MethodPost,
		Path:        "/api/codes/link",
		Summary:     "Create a link QR code",
		Tags:        []string{"codes", "link"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createEmailOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-email",
		Method:      http.MethodPost,
		Path:        "/api/codes/email",
		Summary:     "Create an email QR code",
		Tags:        []string{"codes", "email"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createPhoneOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-phone",
		Method:      http.MethodPost,
		Path:        "/api/codes/phone",
		Summary:     "Create a phone QR code",
		Tags:        []string{"codes", "phone"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createSMSOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-sms",
		Method:      http.MethodPost,
		Path:        "/api/codes/sms",
		Summary:     "Create an SMS QR code",
		Tags:        []string{"codes", "sms"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createWhatsAppOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-whatsapp",
		Method:      http.MethodPost,
		Path:        "/api/codes/whatsapp",
		Summary:     "Create a WhatsApp QR code",
		Tags:        []string{"codes", "whatsapp"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createVCardOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-vcard",
		Method:      http.MethodPost,
		Path:        "/api/codes/vcard",
		Summary:     "Create a contact (vCard) QR code",
		Tags:        []string{"codes", "vcard"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createTextOp() huma.Operation {
	return huma.Operation{
		OperationID: "codes-create-text",
		Method:      http.MethodPost,
		Path:        "/api/codes/text",
		Summary:     "Create a text QR code",
		Tags:        []string{"codes", "text"},
		Middlewares: h.middleware,
	}
}
