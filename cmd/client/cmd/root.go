// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"qure/internal/app/client"
	"qure/internal/app/client/config"
	"qure/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "qure",
	Short: "Qure - create, store and render QR codes",
	Long: `Qure manages a local history of QR codes: links, emails, phone
numbers, SMS, WhatsApp chats, contacts (vCard) and plain text.

Codes are stored on this device. Two of them can be pinned to the
primary and secondary home-screen slots for quick access.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	defer func() {
		if app != nil {
			_ = app.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	cmd.SetContext(client.NewContext(cmd.Context(), app))
	return nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
}
