package qr

import (
	"net/url"
	"strings"
)

// Payload produces the exact string a scanner must see for the given code.
// It is total: an unrecognized type yields an empty payload, never an
// error. Formats must stay bit-for-bit stable, scanning apps depend on
// them.
func Payload(c Code) string {
	switch c.Type {
	case TypeLink:
		return c.URL
	case TypeEmail:
		return emailPayload(c)
	case TypePhone:
		return "tel:" + c.CountryCode + c.PhoneNumber
	case TypeSMS:
		p := "sms:" + c.CountryCode + c.PhoneNumber
		if c.Message != "" {
			p += "?body=" + escape(c.Message)
		}
		return p
	case TypeWhatsApp:
		p := "https://wa.me/" + c.CountryCode + c.PhoneNumber
		if c.Message != "" {
			p += "?text=" + escape(c.Message)
		}
		return p
	case TypeVCard:
		return vcardPayload(c)
	case TypeText:
		return c.Content
	default:
		return ""
	}
}

func emailPayload(c Code) string {
	p := "mailto:" + c.Email
	if c.Subject != "" {
		p += "?subject=" + escape(c.Subject)
	}
	if c.Body != "" {
		if c.Subject != "" {
			p += "&body=" + escape(c.Body)
		} else {
			p += "?body=" + escape(c.Body)
		}
	}
	return p
}

// vcardPayload serializes a vCard 3.0 block. Line order is fixed; lines
// whose field is absent are omitted entirely.
func vcardPayload(c Code) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + c.LastName + ";" + c.FirstName + ";;;",
		"FN:" + c.FirstName + " " + c.LastName,
	}
	if c.PhoneNumber != "" {
		lines = append(lines, "TEL;TYPE=WORK,VOICE:"+c.PhoneNumber)
	}
	if c.MobileNumber != "" {
		lines = append(lines, "TEL;TYPE=CELL,VOICE:"+c.MobileNumber)
	}
	if c.Email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+c.Email)
	}
	if c.Website != "" {
		lines = append(lines, "URL:"+c.Website)
	}
	if c.Company != "" {
		lines = append(lines, "ORG:"+c.Company)
	}
	if c.JobTitle != "" {
		lines = append(lines, "TITLE:"+c.JobTitle)
	}
	if c.Fax != "" {
		lines = append(lines, "TEL;TYPE=FAX:"+c.Fax)
	}
	if c.Address != "" || c.City != "" || c.PostCode != "" || c.Country != "" {
		lines = append(lines, "ADR;TYPE=WORK:;;"+c.Address+";"+c.City+";;"+c.PostCode+";"+c.Country)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

// escape percent-encodes with %20 for spaces, matching what mobile scanner
// apps expect in mailto/sms/wa.me query parts.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
