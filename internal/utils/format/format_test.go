package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name        string
		countryCode string
		number      string
		expected    string
	}{
		{
			name:        "plain digits",
			countryCode: "1",
			number:      "5551234567",
			expected:    "+15551234567",
		},
		{
			name:        "strips separators",
			countryCode: "44",
			number:      "(0) 7911-123 456",
			expected:    "+4407911123456",
		},
		{
			name:        "empty number keeps country code",
			countryCode: "49",
			number:      "",
			expected:    "+49",
		},
		{
			name:        "letters are stripped",
			countryCode: "1",
			number:      "555-CALL",
			expected:    "+1555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.countryCode, tt.number)
			assert.Equal(t, tt.expected, got)
			assert.True(t, strings.HasPrefix(got, "+"))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"international with plus", "+15551234567", true},
		{"digits only", "15551234567", true},
		{"minimum length", "123456", true},
		{"too short", "12345", false},
		{"too long", "1234567890123456", false},
		{"contains spaces", "+1 555 123", false},
		{"contains dashes", "555-123-4567", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple address", "a@b.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"missing at", "example.com", false},
		{"missing tld dot", "a@localhost", false},
		{"whitespace in local part", "a b@c.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.input))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"https url", "https://example.com", true},
		{"http url", "http://example.com/path?q=1", true},
		{"bare domain is not absolute", "example.com", false},
		{"scheme without host", "https://", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidURL(tt.input))
		})
	}
}

func TestEnsureHTTPS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare domain", "example.com", "https://example.com"},
		{"already https", "https://example.com", "https://example.com"},
		{"http is preserved", "http://example.com", "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnsureHTTPS(tt.input))
		})
	}
}

func TestEnsureHTTPSIdempotent(t *testing.T) {
	inputs := []string{"example.com", "https://example.com", "http://x.org", ""}
	for _, in := range inputs {
		once := EnsureHTTPS(in)
		assert.Equal(t, once, EnsureHTTPS(once))
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full url", "https://www.example.com/path", "example.com"},
		{"bare domain", "example.com", "example.com"},
		{"www stripped", "www.example.com", "example.com"},
		{"garbage returned unchanged", "not a url at all", "not a url at all"},
		{"empty returned unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, ExtractDomain(tt.input))
			})
		})
	}
}

func TestDateTime(t *testing.T) {
	got := DateTime(1700000000000) // 2023-11-14 UTC
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "2023")
}
