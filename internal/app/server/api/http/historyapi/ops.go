package historyapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "history-get",
		Method:      http.MethodGet,
		Path:        "/api/history",
		Summary:     "Get the full QR code history",
		Description: "Returns every stored code, newest first, plus the two slot pointers.",
		Tags:        []string{"history"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) assignSlotOp() huma.Operation {
	return huma.Operation{
		OperationID: "history-assign-slot",
		Method:      http.MethodPut,
		Path:        "/api/slots/{slot}",
		Summary:     "Assign or clear a home-screen slot",
		Description: "Points the slot at an existing code, or clears it when id is null. Unknown ids are rejected.",
		Tags:        []string{"history"},
		Middlewares: h.middleware,
	}
}
