package history

import (
	"github.com/danielgtaylor/huma/v2"
)

// Slot names one of the two home-screen designations.
type Slot string

const (
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
)

func (Slot) Schema() huma.Schema {
	return huma.Schema{
		Type:        "string",
		Enum:        []any{string(SlotPrimary), string(SlotSecondary)},
		Description: "Home-screen slot",
	}
}

func (s Slot) Validate() error {
	switch s {
	case SlotPrimary, SlotSecondary:
		return nil
	}
	return ErrInvalidSlot
}

func (s Slot) String() string {
	return string(s)
}
