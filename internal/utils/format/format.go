// Package format contains the pure string helpers shared by the QR
// factories, encoders and UI layers. Every function is total: no I/O,
// no panics, defined output for any input.
package format

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	phoneRe    = regexp.MustCompile(`^\+?\d{6,15}$`)
	emailRe    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Phone builds the international display form "+{countryCode}{digits}",
// stripping every non-digit character from number first. Empty number
// yields "+{countryCode}".
func Phone(countryCode, number string) string {
	return "+" + countryCode + nonDigitRe.ReplaceAllString(number, "")
}

// IsValidPhone reports whether s looks like an international phone number:
// optional leading "+", 6 to 15 digits, nothing else.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsValidEmail reports whether s has the local@domain.tld shape. The domain
// must contain at least one dot.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidURL reports whether s parses as an absolute URL with a scheme.
// Bare domains such as "example.com" are not valid.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// EnsureHTTPS prepends "https://" unless s already carries an http or https
// scheme. Idempotent.
func EnsureHTTPS(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// ExtractDomain returns the hostname of s (normalized via EnsureHTTPS) with
// a leading "www." stripped. On parse failure the input is returned
// unchanged.
func ExtractDomain(s string) string {
	u, err := url.Parse(EnsureHTTPS(s))
	if err != nil || u.Hostname() == "" {
		return s
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// DateTime renders an epoch-millisecond timestamp for display.
func DateTime(epochMillis int64) string {
	return time.UnixMilli(epochMillis).Format("Jan 2, 2006 15:04")
}
