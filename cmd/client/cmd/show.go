// cmd/client/cmd/show.go
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qure/internal/domain/qr"
	"qure/internal/utils/format"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one QR code with its payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := app.History.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if code == nil {
			return fmt.Errorf("qr code %q not found", args[0])
		}

		if jsonOutput {
			raw, err := json.MarshalIndent(code, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		}

		color.Cyan("%s (%s)", code.Label, code.Type.DisplayName())
		fmt.Printf("id:      %s\n", code.ID)
		fmt.Printf("created: %s\n", format.DateTime(code.CreatedAt))
		fmt.Printf("updated: %s\n", format.DateTime(code.UpdatedAt))
		fmt.Printf("payload: %s\n", qr.Payload(*code))
		return nil
	},
}

var payloadCmd = &cobra.Command{
	Use:   "payload <id>",
	Short: "Print only the scannable payload string",
	Long: `Prints the exact string a QR renderer must encode for this record,
with no decoration, so it can be piped into an image generator.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := app.History.GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if code == nil {
			return fmt.Errorf("qr code %q not found", args[0])
		}

		fmt.Println(qr.Payload(*code))
		return nil
	},
}
