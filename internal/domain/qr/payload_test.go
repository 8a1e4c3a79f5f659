package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected string
	}{
		{
			name:     "link is verbatim",
			code:     Code{Type: TypeLink, URL: "https://example.com"},
			expected: "https://example.com",
		},
		{
			name:     "email bare address",
			code:     Code{Type: TypeEmail, Email: "a@b.com"},
			expected: "mailto:a@b.com",
		},
		{
			name:     "email with subject and body",
			code:     Code{Type: TypeEmail, Email: "a@b.com", Subject: "S", Body: "M"},
			expected: "mailto:a@b.com?subject=S&body=M",
		},
		{
			name:     "email with body only uses question mark",
			code:     Code{Type: TypeEmail, Email: "a@b.com", Body: "Hi there"},
			expected: "mailto:a@b.com?body=Hi%20there",
		},
		{
			name:     "email subject is percent encoded",
			code:     Code{Type: TypeEmail, Email: "a@b.com", Subject: "Hello & bye"},
			expected: "mailto:a@b.com?subject=Hello%20%26%20bye",
		},
		{
			name:     "phone concatenates digits",
			code:     Code{Type: TypePhone, CountryCode: "1", PhoneNumber: "5551234567"},
			expected: "tel:15551234567",
		},
		{
			name:     "sms without message",
			code:     Code{Type: TypeSMS, CountryCode: "1", PhoneNumber: "5551234567"},
			expected: "sms:15551234567",
		},
		{
			name:     "sms with message",
			code:     Code{Type: TypeSMS, CountryCode: "1", PhoneNumber: "5551234567", Message: "Hello World"},
			expected: "sms:15551234567?body=Hello%20World",
		},
		{
			name:     "whatsapp without message",
			code:     Code{Type: TypeWhatsApp, CountryCode: "49", PhoneNumber: "15112345678"},
			expected: "https://wa.me/4915112345678",
		},
		{
			name:     "whatsapp with message",
			code:     Code{Type: TypeWhatsApp, CountryCode: "49", PhoneNumber: "15112345678", Message: "Hi!"},
			expected: "https://wa.me/4915112345678?text=Hi%21",
		},
		{
			name:     "text is verbatim",
			code:     Code{Type: TypeText, Content: "plain text, unescaped & raw"},
			expected: "plain text, unescaped & raw",
		},
		{
			name:     "unknown type yields empty payload",
			code:     Code{Type: Type("wifi")},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Payload(tt.code))
		})
	}
}

func TestPayloadVCardMinimal(t *testing.T) {
	got := Payload(Code{Type: TypeVCard, FirstName: "John", LastName: "Doe"})

	assert.True(t, strings.HasPrefix(got, "BEGIN:VCARD"))
	assert.True(t, strings.HasSuffix(got, "END:VCARD"))
	assert.Contains(t, got, "N:Doe;John;;;")
	assert.Contains(t, got, "FN:John Doe")
	assert.NotContains(t, got, "TEL")
	assert.NotContains(t, got, "ADR")
}

func TestPayloadVCardFull(t *testing.T) {
	code := Code{
		Type:         TypeVCard,
		FirstName:    "John",
		LastName:     "Doe",
		PhoneNumber:  "+15551234567",
		MobileNumber: "+15557654321",
		Email:        "john@doe.com",
		Website:      "https://doe.com",
		Company:      "Doe Inc",
		JobTitle:     "CEO",
		Fax:          "+15550000000",
		Address:      "1 Main St",
		City:         "Springfield",
		PostCode:     "12345",
		Country:      "USA",
	}

	expected := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Doe;John;;;",
		"FN:John Doe",
		"TEL;TYPE=WORK,VOICE:+15551234567",
		"TEL;TYPE=CELL,VOICE:+15557654321",
		"EMAIL;TYPE=INTERNET:john@doe.com",
		"URL:https://doe.com",
		"ORG:Doe Inc",
		"TITLE:CEO",
		"TEL;TYPE=FAX:+15550000000",
		"ADR;TYPE=WORK:;;1 Main St;Springfield;;12345;USA",
		"END:VCARD",
	}, "\n")

	assert.Equal(t, expected, Payload(code))
}

func TestPayloadVCardPartialAddress(t *testing.T) {
	// A single address component still emits the ADR line, empty positions
	// preserved.
	got := Payload(Code{Type: TypeVCard, FirstName: "A", LastName: "B", City: "Berlin"})
	assert.Contains(t, got, "ADR;TYPE=WORK:;;;Berlin;;;")
}

func TestPayloadRoundTripFromFactories(t *testing.T) {
	// Records built by the factories must encode to the documented formats.
	tests := []struct {
		name     string
		code     Code
		expected string
	}{
		{
			name:     "factory link",
			code:     NewLink(LinkInput{URL: "example.com"}),
			expected: "https://example.com",
		},
		{
			name:     "factory sms",
			code:     NewSMS(SMSInput{CountryCode: "1", PhoneNumber: "5551234567", Message: "Hello World"}),
			expected: "sms:15551234567?body=Hello%20World",
		},
		{
			name:     "factory whatsapp",
			code:     NewWhatsApp(WhatsAppInput{CountryCode: "44", PhoneNumber: "7911123456"}),
			expected: "https://wa.me/447911123456",
		},
		{
			name:     "factory text",
			code:     NewText(TextInput{Content: "hello"}),
			expected: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Payload(tt.code))
		})
	}
}
