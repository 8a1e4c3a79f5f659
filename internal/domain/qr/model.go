package qr

// ErrorCorrectionLevel is the QR redundancy tier. The actual symbol
// encoding is the renderer's job; we only carry the chosen level.
type ErrorCorrectionLevel string

const (
	ECLevelL ErrorCorrectionLevel = "L"
	ECLevelM ErrorCorrectionLevel = "M"
	ECLevelQ ErrorCorrectionLevel = "Q"
	ECLevelH ErrorCorrectionLevel = "H"
)

// DesignOptions describes how a code is drawn. Field names and JSON keys
// match the persisted mobile blob.
type DesignOptions struct {
	Color                string               `json:"color"`
	BackgroundColor      string               `json:"backgroundColor"`
	Gradient             bool                 `json:"gradient"`
	GradientStartColor   string               `json:"gradientStartColor,omitempty"`
	GradientEndColor     string               `json:"gradientEndColor,omitempty"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel"`
	QuietZone            int                  `json:"quietZone"`
}

// DefaultDesign returns the design every new code starts with: black on
// white, no gradient, medium error correction, quiet zone 4.
func DefaultDesign() DesignOptions {
	return DesignOptions{
		Color:                "#000000",
		BackgroundColor:      "#FFFFFF",
		Gradient:             false,
		ErrorCorrectionLevel: ECLevelM,
		QuietZone:            4,
	}
}

// Code is the stored QR record. It is a tagged union over Type: only the
// payload fields of the tagged variant are populated, the rest stay zero
// and are omitted from JSON.
type Code struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	Label     string        `json:"label"`
	CreatedAt int64         `json:"createdAt"` // epoch milliseconds
	UpdatedAt int64         `json:"updatedAt"` // epoch milliseconds
	Design    DesignOptions `json:"design"`

	// link
	URL string `json:"url,omitempty"`

	// email
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`

	// phone / sms / whatsapp
	CountryCode string `json:"countryCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Message     string `json:"message,omitempty"`

	// vcard
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Website      string `json:"website,omitempty"`
	Company      string `json:"company,omitempty"`
	JobTitle     string `json:"jobTitle,omitempty"`
	Fax          string `json:"fax,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	PostCode     string `json:"postCode,omitempty"`
	Country      string `json:"country,omitempty"`

	// text
	Content string `json:"content,omitempty"`
}

// History is the full persisted collection plus the two home-screen slot
// pointers. Codes are kept newest-first.
type History struct {
	Codes         []Code  `json:"codes"`
	PrimarySlot   *string `json:"primarySlot"`
	SecondarySlot *string `json:"secondarySlot"`
}

// EmptyHistory is the state a fresh (or unreadable) store resolves to.
func EmptyHistory() History {
	return History{Codes: []Code{}}
}
