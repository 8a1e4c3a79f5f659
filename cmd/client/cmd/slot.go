// cmd/client/cmd/slot.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qure/internal/domain/history"
	"qure/internal/domain/premium"
)

var slotCmd = &cobra.Command{
	Use:   "slot <primary|secondary> <id|none>",
	Short: "Pin a QR code to a home-screen slot",
	Long: `Points the primary or secondary home-screen slot at a stored code.
Use "none" to clear the slot. The secondary slot is a premium feature.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot := history.Slot(args[0])
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: %s", err, args[0])
		}

		var id *string
		if args[1] != "none" {
			id = &args[1]
		}

		if slot == history.SlotSecondary && id != nil {
			if err := app.Gate.Check(premium.FeatureSecondarySlot); err != nil {
				return fmt.Errorf("secondary slot: %w", err)
			}
		}

		if _, err := app.History.AssignSlot(cmd.Context(), slot, id); err != nil {
			return err
		}

		if id == nil {
			color.Green("Cleared %s slot", slot)
		} else {
			color.Green("Pinned %s to %s slot", *id, slot)
		}
		return nil
	},
}
