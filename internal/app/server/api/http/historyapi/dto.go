package historyapi

import (
	"qure/internal/domain/qr"
)

type historyOutput struct {
	Body qr.History
}

type assignSlotInput struct {
	Slot string `path:"slot" enum:"primary,secondary" doc:"Home-screen slot name"`
	Body assignSlotRequest
}

type assignSlotRequest struct {
	ID *string `json:"id" doc:"Id of the code to pin, or null to clear the slot"`
}
