// cmd/client/cmd/init.go
package cmd

import (
	"qure/cmd/client/cmd/create"
)

func init() {
	rootCmd.AddCommand(create.CreateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(slotCmd)
}
