// cmd/client/cmd/delete.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a QR code",
	Long: `Removes the code from the history. If it was pinned to the primary
or secondary slot, the slot is cleared as well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := app.History.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete qr code: %w", err)
		}

		color.Green("Deleted %s", args[0])
		return nil
	},
}
