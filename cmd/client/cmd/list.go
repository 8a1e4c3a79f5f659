// cmd/client/cmd/list.go
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qure/internal/utils/format"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored QR codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.History.History(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			raw, err := json.MarshalIndent(h, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		}

		if len(h.Codes) == 0 {
			fmt.Println("No QR codes yet. Create one with: qure create")
			return nil
		}

		for _, c := range h.Codes {
			marker := "  "
			if h.PrimarySlot != nil && *h.PrimarySlot == c.ID {
				marker = color.YellowString("1>")
			} else if h.SecondarySlot != nil && *h.SecondarySlot == c.ID {
				marker = color.YellowString("2>")
			}

			fmt.Printf("%s %s  %s  %s  %s\n",
				marker,
				color.CyanString("%-10s", c.Type),
				color.WhiteString("%-24s", c.Label),
				c.ID,
				format.DateTime(c.UpdatedAt),
			)
		}

		return nil
	},
}
