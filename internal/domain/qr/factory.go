package qr

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"qure/internal/utils/format"
)

// Factory inputs. Required fields are the minimum a form must collect;
// everything optional may stay zero. Validation is the caller's concern;
// the constructors never fail and simply carry what they were given.

type LinkInput struct {
	URL    string
	Label  string
	Design *DesignOptions
}

type EmailInput struct {
	Email   string
	Subject string
	Body    string
	Label   string
	Design  *DesignOptions
}

type PhoneInput struct {
	CountryCode string
	PhoneNumber string
	Label       string
	Design      *DesignOptions
}

type SMSInput struct {
	CountryCode string
	PhoneNumber string
	Message     string
	Label       string
	Design      *DesignOptions
}

type WhatsAppInput struct {
	CountryCode string
	PhoneNumber string
	Message     string
	Label       string
	Design      *DesignOptions
}

type VCardInput struct {
	FirstName    string
	LastName     string
	PhoneNumber  string
	MobileNumber string
	Email        string
	Website      string
	Company      string
	JobTitle     string
	Fax          string
	Address      string
	City         string
	PostCode     string
	Country      string
	Label        string
	Design       *DesignOptions
}

type TextInput struct {
	Content string
	Label   string
	Design  *DesignOptions
}

// NewLink builds a link code. The URL is normalized to carry a scheme at
// creation time, so the stored record is always encodable verbatim.
func NewLink(in LinkInput) Code {
	c := newCode(TypeLink, in.Label, in.Design)
	c.URL = format.EnsureHTTPS(in.URL)
	return withDefaultLabel(c)
}

func NewEmail(in EmailInput) Code {
	c := newCode(TypeEmail, in.Label, in.Design)
	c.Email = in.Email
	c.Subject = in.Subject
	c.Body = in.Body
	return withDefaultLabel(c)
}

// NewPhone stores country code and local number raw; display and payload
// formatting happen at read time.
func NewPhone(in PhoneInput) Code {
	c := newCode(TypePhone, in.Label, in.Design)
	c.CountryCode = in.CountryCode
	c.PhoneNumber = in.PhoneNumber
	return withDefaultLabel(c)
}

func NewSMS(in SMSInput) Code {
	c := newCode(TypeSMS, in.Label, in.Design)
	c.CountryCode = in.CountryCode
	c.PhoneNumber = in.PhoneNumber
	c.Message = in.Message
	return withDefaultLabel(c)
}

func NewWhatsApp(in WhatsAppInput) Code {
	c := newCode(TypeWhatsApp, in.Label, in.Design)
	c.CountryCode = in.CountryCode
	c.PhoneNumber = in.PhoneNumber
	c.Message = in.Message
	return withDefaultLabel(c)
}

func NewVCard(in VCardInput) Code {
	c := newCode(TypeVCard, in.Label, in.Design)
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.PhoneNumber = in.PhoneNumber
	c.MobileNumber = in.MobileNumber
	c.Email = in.Email
	c.Website = in.Website
	c.Company = in.Company
	c.JobTitle = in.JobTitle
	c.Fax = in.Fax
	c.Address = in.Address
	c.City = in.City
	c.PostCode = in.PostCode
	c.Country = in.Country
	return withDefaultLabel(c)
}

func NewText(in TextInput) Code {
	c := newCode(TypeText, in.Label, in.Design)
	c.Content = in.Content
	return withDefaultLabel(c)
}

func newCode(t Type, label string, design *DesignOptions) Code {
	now := time.Now().UnixMilli()
	d := DefaultDesign()
	if design != nil {
		d = *design
	}
	return Code{
		ID:        NewID(),
		Type:      t,
		Label:     label,
		CreatedAt: now,
		UpdatedAt: now,
		Design:    d,
	}
}

func withDefaultLabel(c Code) Code {
	if c.Label == "" {
		c.Label = DefaultLabel(c)
	}
	return c
}

// NewID returns a fresh record id: millisecond timestamp prefix plus a
// random suffix. Unique enough for a single user's history.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + uuid.NewString()[:8]
}
