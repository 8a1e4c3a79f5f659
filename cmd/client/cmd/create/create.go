// cmd/client/cmd/create/create.go
package create

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qure/internal/app/client"
	"qure/internal/domain/premium"
	"qure/internal/domain/qr"
)

var (
	label string

	// design flags
	fgColor       string
	bgColor       string
	gradient      bool
	gradientStart string
	gradientEnd   string
	ecLevel       string
	quietZone     int

	// type-specific flags
	urlFlag     string
	email       string
	subject     string
	body        string
	countryCode string
	phoneNumber string
	message     string
	firstName   string
	lastName    string
	mobile      string
	website     string
	company     string
	jobTitle    string
	fax         string
	address     string
	city        string
	postCode    string
	country     string
	content     string
)

// CreateCmd is the parent command for the typed create subcommands.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a QR code",
	Long: `Create and store a QR code of a specific type.

Supported types:
- link     - a web address
- email    - a prefilled email
- phone    - a phone number to dial
- sms      - a prefilled text message
- whatsapp - a WhatsApp chat link
- vcard    - a contact card (vCard 3.0)
- text     - arbitrary text`,
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Create a link QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if urlFlag == "" {
			return fmt.Errorf("--url is required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewLink(qr.LinkInput{URL: urlFlag, Label: label, Design: d})
		})
	},
}

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Create an email QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewEmail(qr.EmailInput{Email: email, Subject: subject, Body: body, Label: label, Design: d})
		})
	},
}

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Create a phone QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if countryCode == "" || phoneNumber == "" {
			return fmt.Errorf("--country-code and --number are required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewPhone(qr.PhoneInput{CountryCode: countryCode, PhoneNumber: phoneNumber, Label: label, Design: d})
		})
	},
}

var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Create an SMS QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if countryCode == "" || phoneNumber == "" {
			return fmt.Errorf("--country-code and --number are required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewSMS(qr.SMSInput{CountryCode: countryCode, PhoneNumber: phoneNumber, Message: message, Label: label, Design: d})
		})
	},
}

var whatsappCmd = &cobra.Command{
	Use:   "whatsapp",
	Short: "Create a WhatsApp QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if countryCode == "" || phoneNumber == "" {
			return fmt.Errorf("--country-code and --number are required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewWhatsApp(qr.WhatsAppInput{CountryCode: countryCode, PhoneNumber: phoneNumber, Message: message, Label: label, Design: d})
		})
	},
}

var vcardCmd = &cobra.Command{
	Use:   "vcard",
	Short: "Create a contact (vCard) QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if firstName == "" || lastName == "" {
			return fmt.Errorf("--first-name and --last-name are required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewVCard(qr.VCardInput{
				FirstName:    firstName,
				LastName:     lastName,
				PhoneNumber:  phoneNumber,
				MobileNumber: mobile,
				Email:        email,
				Website:      website,
				Company:      company,
				JobTitle:     jobTitle,
				Fax:          fax,
				Address:      address,
				City:         city,
				PostCode:     postCode,
				Country:      country,
				Label:        label,
				Design:       d,
			})
		})
	},
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Create a text QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if content == "" {
			return fmt.Errorf("--content is required")
		}
		return store(cmd, func(d *qr.DesignOptions) qr.Code {
			return qr.NewText(qr.TextInput{Content: content, Label: label, Design: d})
		})
	},
}

func store(cmd *cobra.Command, build func(*qr.DesignOptions) qr.Code) error {
	app := client.FromContext(cmd.Context())
	if app == nil {
		return fmt.Errorf("application is not initialized")
	}

	design, err := designFromFlags(app)
	if err != nil {
		return err
	}

	code := build(design)
	if _, err := app.History.Upsert(cmd.Context(), code); err != nil {
		return fmt.Errorf("failed to save qr code: %w", err)
	}

	color.Green("Created %s QR code %q", code.Type, code.Label)
	fmt.Printf("id:      %s\n", code.ID)
	fmt.Printf("payload: %s\n", qr.Payload(code))
	return nil
}

// designFromFlags turns the design flags into overrides; nil means "use
// defaults". Gradients are a premium feature.
func designFromFlags(app *client.App) (*qr.DesignOptions, error) {
	d := qr.DefaultDesign()
	custom := false

	if fgColor != "" {
		d.Color = fgColor
		custom = true
	}
	if bgColor != "" {
		d.BackgroundColor = bgColor
		custom = true
	}
	if ecLevel != "" {
		switch qr.ErrorCorrectionLevel(ecLevel) {
		case qr.ECLevelL, qr.ECLevelM, qr.ECLevelQ, qr.ECLevelH:
			d.ErrorCorrectionLevel = qr.ErrorCorrectionLevel(ecLevel)
		default:
			return nil, fmt.Errorf("invalid error correction level %q, want L, M, Q or H", ecLevel)
		}
		custom = true
	}
	if quietZone >= 0 {
		d.QuietZone = quietZone
		custom = true
	}
	if gradient {
		if err := app.Gate.Check(premium.FeatureGradientDesigns); err != nil {
			return nil, fmt.Errorf("gradient designs: %w", err)
		}
		d.Gradient = true
		d.GradientStartColor = gradientStart
		d.GradientEndColor = gradientEnd
		custom = true
	}

	if !custom {
		return nil, nil
	}
	return &d, nil
}

func init() {
	for _, c := range []*cobra.Command{linkCmd, emailCmd, phoneCmd, smsCmd, whatsappCmd, vcardCmd, textCmd} {
		c.Flags().StringVar(&label, "label", "", "display label (derived from the content when empty)")
		c.Flags().StringVar(&fgColor, "color", "", "foreground color, hex")
		c.Flags().StringVar(&bgColor, "background", "", "background color, hex")
		c.Flags().BoolVar(&gradient, "gradient", false, "use a gradient foreground (premium)")
		c.Flags().StringVar(&gradientStart, "gradient-start", "", "gradient start color, hex")
		c.Flags().StringVar(&gradientEnd, "gradient-end", "", "gradient end color, hex")
		c.Flags().StringVar(&ecLevel, "ec-level", "", "error correction level: L, M, Q or H")
		c.Flags().IntVar(&quietZone, "quiet-zone", -1, "quiet zone margin in pixels")
		CreateCmd.AddCommand(c)
	}

	linkCmd.Flags().StringVar(&urlFlag, "url", "", "target URL")

	emailCmd.Flags().StringVar(&email, "email", "", "recipient address")
	emailCmd.Flags().StringVar(&subject, "subject", "", "prefilled subject")
	emailCmd.Flags().StringVar(&body, "body", "", "prefilled body")

	for _, c := range []*cobra.Command{phoneCmd, smsCmd, whatsappCmd} {
		c.Flags().StringVar(&countryCode, "country-code", "", "dial code without +")
		c.Flags().StringVar(&phoneNumber, "number", "", "local phone number")
	}
	smsCmd.Flags().StringVar(&message, "message", "", "prefilled message")
	whatsappCmd.Flags().StringVar(&message, "message", "", "prefilled message")

	vcardCmd.Flags().StringVar(&firstName, "first-name", "", "given name")
	vcardCmd.Flags().StringVar(&lastName, "last-name", "", "family name")
	vcardCmd.Flags().StringVar(&phoneNumber, "phone", "", "work phone")
	vcardCmd.Flags().StringVar(&mobile, "mobile", "", "mobile phone")
	vcardCmd.Flags().StringVar(&email, "email", "", "email address")
	vcardCmd.Flags().StringVar(&website, "website", "", "website URL")
	vcardCmd.Flags().StringVar(&company, "company", "", "organization")
	vcardCmd.Flags().StringVar(&jobTitle, "job-title", "", "job title")
	vcardCmd.Flags().StringVar(&fax, "fax", "", "fax number")
	vcardCmd.Flags().StringVar(&address, "address", "", "street address")
	vcardCmd.Flags().StringVar(&city, "city", "", "city")
	vcardCmd.Flags().StringVar(&postCode, "post-code", "", "postal code")
	vcardCmd.Flags().StringVar(&country, "country", "", "country")

	textCmd.Flags().StringVar(&content, "content", "", "text to encode verbatim")
}
