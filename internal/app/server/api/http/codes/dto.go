package codes

import (
	"qure/internal/domain/qr"
)

type idInput struct {
	ID string `path:"id" example:"lx2c9a-4f8b12aa" doc:"QR code id"`
}

type upsertInput struct {
	Body qr.Code
}

type codeOutput struct {
	Body qr.Code
}

type historyOutput struct {
	Body qr.History
}

type payloadOutput struct {
	Body payloadResponse
}

type payloadResponse struct {
	ID      string `json:"id"`
	Payload string `json:"payload" doc:"Exact string to encode into the QR image"`
}

// ==================== Link ====================

type createLinkInput struct {
	Body createLinkRequest
}

type createLinkRequest struct {
	URL    string            `json:"url" doc:"Target URL; https:// is prepended when no scheme is given" minLength:"1"`
	Label  string            `json:"label,omitempty" doc:"Display label; derived from the domain when empty"`
	Design *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}

// ==================== Email ====================

type createEmailInput struct {
	Body createEmailRequest
}

type createEmailRequest struct {
	Email   string            `json:"email" doc:"Recipient address" minLength:"1"`
	Subject string            `json:"subject,omitempty" doc:"Prefilled subject"`
	Body    string            `json:"body,omitempty" doc:"Prefilled body"`
	Label   string            `json:"label,omitempty" doc:"Display label; the address when empty"`
	Design  *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}

// ==================== Phone ====================

type createPhoneInput struct {
	Body createPhoneRequest
}

type createPhoneRequest struct {
	CountryCode string            `json:"countryCode" doc:"Dial code without the plus sign" minLength:"1"`
	PhoneNumber string            `json:"phoneNumber" doc:"Local number" minLength:"1"`
	Label       string            `json:"label,omitempty" doc:"Display label; formatted number when empty"`
	Design      *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}

// ==================== SMS ====================

type createSMSInput struct {
	Body createSMSRequest
}

type createSMSRequest struct {
	CountryCode string            `json:"countryCode" doc:"Dial code without the plus sign" minLength:"1"`
	PhoneNumber string            `json:"phoneNumber" doc:"Local number" minLength:"1"`
	Message     string            `json:"message,omitempty" doc:"Prefilled message text"`
	Label       string            `json:"label,omitempty" doc:"Display label; formatted number when empty"`
	Design      *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}

// ==================== WhatsApp ====================

type createWhatsAppInput struct {
	Body createWhatsAppRequest
}

type createWhatsAppRequest struct {
	CountryCode string            `json:"countryCode" doc:"Dial code without the plus sign" minLength:"1"`
	PhoneNumber string            `json:"phoneNumber" doc:"Local number" minLength:"1"`
	Message     string            `json:"message,omitempty" doc:"Prefilled chat message"`
	Label       string            `json:"label,omitempty" doc:"Display label; formatted number when empty"`
	Design      *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}

// ==================== VCard ====================

type createVCardInput struct {
	Body createVCardRequest
}

type createVCardRequest struct {
	FirstName    string            `json:"firstName" doc:"Given name" minLength:"1"`
	LastName     string            `json:"lastName" doc:"Family name" minLength:"1"`
	PhoneNumber  string            `json:"phoneNumber,omitempty" doc:"Work phone"`
	MobileNumber string            `json:"mobileNumber,omitempty" doc:"Mobile phone"`
	Email        string            `json:"email,omitempty" doc:"Email address"`
	Website      string            `json:"website,omitempty" doc:"Website URL"`
	Company      string            `json:"company,omitempty" doc:"Organization"`
	JobTitle     string            `json:"jobTitle,omitempty" doc:"Job title"`
	Fax          string            `json:"fax,omitempty" doc:"Fax number"`
	Address      string            `json:"address,omitempty" doc:"Street address"`
	City         string            `json:"city,omitempty" doc:"City"`
	PostCode     string            `json:"postCode,omitempty" doc:"Postal code"`
	Country      string            `json:"country,omitempty" doc:"Country"`
	Label        string            `json:"label,omitempty" doc:"Display label; full name when empty"`
	Design       *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}

// ==================== Text ====================

type createTextInput struct {
	Body createTextRequest
}

type createTextRequest struct {
	Content string            `json:"content" doc:"Arbitrary text to encode verbatim" minLength:"1"`
	Label   string            `json:"label,omitempty" doc:"Display label; truncated content when empty"`
	Design  *qr.DesignOptions `json:"design,omitempty" doc:"Design overrides"`
}
