package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	tests := []struct {
		name          string
		input         LinkInput
		expectedURL   string
		expectedLabel string
	}{
		{
			name:          "bare domain is normalized and labeled",
			input:         LinkInput{URL: "example.com"},
			expectedURL:   "https://example.com",
			expectedLabel: "example.com",
		},
		{
			name:          "www is stripped from derived label",
			input:         LinkInput{URL: "https://www.example.com/deep/path"},
			expectedURL:   "https://www.example.com/deep/path",
			expectedLabel: "example.com",
		},
		{
			name:          "explicit label wins",
			input:         LinkInput{URL: "example.com", Label: "My site"},
			expectedURL:   "https://example.com",
			expectedLabel: "My site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := NewLink(tt.input)

			assert.Equal(t, TypeLink, code.Type)
			assert.Equal(t, tt.expectedURL, code.URL)
			assert.Equal(t, tt.expectedLabel, code.Label)
		})
	}
}

func TestFactoryCommonFields(t *testing.T) {
	code := NewText(TextInput{Content: "hello"})

	require.NotEmpty(t, code.ID)
	assert.Positive(t, code.CreatedAt)
	assert.Equal(t, code.CreatedAt, code.UpdatedAt)
	assert.Equal(t, DefaultDesign(), code.Design)
}

func TestFactoryCustomDesign(t *testing.T) {
	design := DesignOptions{
		Color:                "#FF0000",
		BackgroundColor:      "#00FF00",
		Gradient:             true,
		GradientStartColor:   "#FF0000",
		GradientEndColor:     "#0000FF",
		ErrorCorrectionLevel: ECLevelH,
		QuietZone:            8,
	}

	code := NewLink(LinkInput{URL: "example.com", Design: &design})
	assert.Equal(t, design, code.Design)
}

func TestDefaultLabels(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected string
	}{
		{
			name:     "email label is the address",
			code:     NewEmail(EmailInput{Email: "a@b.com", Subject: "S"}),
			expected: "a@b.com",
		},
		{
			name:     "phone label is the formatted number",
			code:     NewPhone(PhoneInput{CountryCode: "1", PhoneNumber: "555-123-4567"}),
			expected: "+15551234567",
		},
		{
			name:     "sms label is the formatted number",
			code:     NewSMS(SMSInput{CountryCode: "44", PhoneNumber: "7911 123456"}),
			expected: "+447911123456",
		},
		{
			name:     "whatsapp label is the formatted number",
			code:     NewWhatsApp(WhatsAppInput{CountryCode: "49", PhoneNumber: "1511", Message: "hi"}),
			expected: "+491511",
		},
		{
			name:     "vcard label is the full name",
			code:     NewVCard(VCardInput{FirstName: "John", LastName: "Doe"}),
			expected: "John Doe",
		},
		{
			name:     "short text label is verbatim",
			code:     NewText(TextInput{Content: "short note"}),
			expected: "short note",
		},
		{
			name:     "long text label is truncated",
			code:     NewText(TextInput{Content: "0123456789012345678901234"}),
			expected: "01234567890123456789...",
		},
		{
			name:     "text label at exactly twenty runes stays verbatim",
			code:     NewText(TextInput{Content: "01234567890123456789"}),
			expected: "01234567890123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.Label)
		})
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestTypeValidate(t *testing.T) {
	for _, typ := range []Type{TypeLink, TypeEmail, TypePhone, TypeSMS, TypeVCard, TypeWhatsApp, TypeText} {
		assert.NoError(t, typ.Validate())
	}
	assert.Error(t, Type("wifi").Validate())
}
