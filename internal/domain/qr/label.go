package qr

import "qure/internal/utils/format"

const maxTextLabelLen = 20

// DefaultLabel derives the display label used when the user left the label
// field empty. Pure; UI layers call it for live placeholders, the
// factories call it once at creation time.
func DefaultLabel(c Code) string {
	switch c.Type {
	case TypeLink:
		return format.ExtractDomain(c.URL)
	case TypeEmail:
		return c.Email
	case TypePhone, TypeSMS, TypeWhatsApp:
		return format.Phone(c.CountryCode, c.PhoneNumber)
	case TypeVCard:
		return c.FirstName + " " + c.LastName
	case TypeText:
		return truncate(c.Content, maxTextLabelLen)
	default:
		return string(c.Type)
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
