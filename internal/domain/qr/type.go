package qr

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Type discriminates the QR code variants. Every stored code carries
// exactly one type and only the payload fields belonging to it.
type Type string

const (
	TypeLink     Type = "link"
	TypeEmail    Type = "email"
	TypePhone    Type = "phone"
	TypeSMS      Type = "sms"
	TypeVCard    Type = "vcard"
	TypeWhatsApp Type = "whatsapp"
	TypeText     Type = "text"
)

func (Type) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(TypeLink),
			string(TypeEmail),
			string(TypePhone),
			string(TypeSMS),
			string(TypeVCard),
			string(TypeWhatsApp),
			string(TypeText),
		},
		Description: "QR code variant",
		Examples:    []any{TypeLink},
	}
}

// Validate implements huma.Validatable for typed API inputs.
func (t Type) Validate() error {
	switch t {
	case TypeLink, TypeEmail, TypePhone, TypeSMS, TypeVCard, TypeWhatsApp, TypeText:
		return nil
	}
	return fmt.Errorf("unknown qr code type: %s", t)
}

func (t Type) String() string {
	return string(t)
}

// DisplayName returns the human readable name of the variant.
func (t Type) DisplayName() string {
	switch t {
	case TypeLink:
		return "Link"
	case TypeEmail:
		return "Email"
	case TypePhone:
		return "Phone"
	case TypeSMS:
		return "SMS"
	case TypeVCard:
		return "Contact (vCard)"
	case TypeWhatsApp:
		return "WhatsApp"
	case TypeText:
		return "Text"
	default:
		return "Unknown"
	}
}
